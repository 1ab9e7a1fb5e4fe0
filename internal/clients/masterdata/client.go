// Package masterdata serves the static card and material catalog
package masterdata

//go:generate mockgen -destination=mock/mock_client.go -package=masterdatamock github.com/KirkDiggler/guildcraft/internal/clients/masterdata Client

import (
	"github.com/KirkDiggler/guildcraft/internal/entities"
)

// Client is the read-only master data surface consumed by the engines
type Client interface {
	// GetCard returns the card master record with the given ID
	GetCard(cardID string) (entities.Card, error)

	// GetMaterial returns the material master record with the given ID
	GetMaterial(materialID string) (*entities.Material, error)

	// IsLoaded reports whether the catalog has been loaded
	IsLoaded() bool
}
