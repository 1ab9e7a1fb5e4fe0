// Package quality implements material quality generation and averaging
package quality

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/guildcraft/internal/clients/masterdata"
	"github.com/KirkDiggler/guildcraft/internal/entities"
	"github.com/KirkDiggler/guildcraft/internal/errors"
	"github.com/KirkDiggler/guildcraft/internal/pkg/idgen"
)

// Engine creates material instances and does quality arithmetic
type Engine interface {
	// CreateInstance creates a new immutable instance of a known material
	CreateInstance(materialID string, quality entities.Quality) (*entities.MaterialInstance, error)

	// GenerateRandomQuality returns base-1, base or base+1 with equal odds, clamped to D..S
	GenerateRandomQuality(base entities.Quality) (entities.Quality, error)

	// CalculateAverageQuality returns the rounded mean grade of the instances
	CalculateAverageQuality(instances []entities.MaterialInstance) (entities.Quality, error)
}

// Config holds the dependencies for the quality engine
type Config struct {
	MasterData  masterdata.Client
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MasterData == nil {
		vb.RequiredField("MasterData")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type engine struct {
	masterData masterdata.Client
	roller     dice.Roller
	idGen      idgen.Generator
}

// NewEngine creates a quality engine with the provided dependencies
func NewEngine(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		masterData: cfg.MasterData,
		roller:     cfg.DiceRoller,
		idGen:      cfg.IDGenerator,
	}, nil
}

func (e *engine) CreateInstance(materialID string, quality entities.Quality) (*entities.MaterialInstance, error) {
	if _, err := e.masterData.GetMaterial(materialID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("material %s not found", materialID).
				WithReason(errors.ReasonMaterialNotFound).
				WithMeta("material_id", materialID)
		}
		return nil, errors.Wrapf(err, "failed to look up material %s", materialID)
	}
	if !quality.IsValid() {
		return nil, errors.InvalidArgumentf("invalid quality %d", int(quality))
	}

	return &entities.MaterialInstance{
		InstanceID: e.idGen.Generate(),
		MaterialID: materialID,
		Quality:    quality,
	}, nil
}

func (e *engine) GenerateRandomQuality(base entities.Quality) (entities.Quality, error) {
	if !base.IsValid() {
		return 0, errors.InvalidArgumentf("invalid base quality %d", int(base))
	}

	// d3 maps onto -1, 0, +1
	roll, err := e.roller.Roll(3)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll quality")
	}

	return entities.ClampQuality(int(base) + roll - 2), nil
}

func (e *engine) CalculateAverageQuality(instances []entities.MaterialInstance) (entities.Quality, error) {
	return AverageQuality(instances)
}

// AverageQuality rounds the mean grade half away from zero and clamps it to
// D..S. An empty input is an error.
func AverageQuality(instances []entities.MaterialInstance) (entities.Quality, error) {
	if len(instances) == 0 {
		return 0, errors.InvalidArgument("cannot average an empty set of materials").
			WithReason(errors.ReasonEmptyQualityInput)
	}

	sum := 0
	for _, instance := range instances {
		sum += int(instance.Quality)
	}
	mean := float64(sum) / float64(len(instances))

	return entities.ClampQuality(int(math.Round(mean))), nil
}
