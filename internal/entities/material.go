package entities

// Material is a master-data record for a gatherable material
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseQuality Quality `json:"base_quality"`
	Category    string  `json:"category,omitempty"`
}

// MaterialOption is one of the choices presented in a draft round.
// Options are discarded at the end of each round.
type MaterialOption struct {
	MaterialID string  `json:"material_id"`
	Quality    Quality `json:"quality"`
	Quantity   int     `json:"quantity"`
}

// MaterialInstance is a concrete material owned by the player. Instances are
// values and never change once created.
type MaterialInstance struct {
	InstanceID string  `json:"instance_id"`
	MaterialID string  `json:"material_id"`
	Quality    Quality `json:"quality"`
}
