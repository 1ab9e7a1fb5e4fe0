package gathering

import "github.com/KirkDiggler/guildcraft/internal/entities"

// CalculateGatheringCost prices a finished draft. Picking more materials
// costs extra action points in steps, and seven or more picks also cost a
// carry-over day.
func CalculateGatheringCost(baseCost, selectedCount int) entities.GatheringCost {
	var additional, extraDays int
	switch {
	case selectedCount <= 0:
	case selectedCount <= 2:
		additional = 1
	case selectedCount <= 4:
		additional = 2
	case selectedCount <= 6:
		additional = 3
	default:
		additional = 3
		extraDays = 1
	}

	return entities.GatheringCost{
		ActionPointCost: baseCost + additional,
		ExtraDays:       extraDays,
	}
}
