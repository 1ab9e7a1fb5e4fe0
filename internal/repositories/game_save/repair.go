package gamesave

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/guildcraft/internal/errors"
)

// RepairInput defines the request for scanning save slots
type RepairInput struct {
	// Fix deletes unreadable slots instead of only reporting them
	Fix bool
}

// RepairOutput lists what the scan found
type RepairOutput struct {
	Checked   int
	Corrupted []string
	Deleted   []string
}

// Repair loads every listed slot and reports the ones that no longer decode.
// Slots indexed without a payload count as corrupted too.
func Repair(ctx context.Context, repo Repository, input RepairInput) (*RepairOutput, error) {
	if repo == nil {
		return nil, errors.InvalidArgument("repository is required")
	}

	slots, err := repo.ListSlots(ctx)
	if err != nil {
		return nil, err
	}

	out := &RepairOutput{Corrupted: []string{}, Deleted: []string{}}
	for _, slotID := range slots.SlotIDs {
		out.Checked++

		_, err := repo.Load(ctx, LoadInput{SlotID: slotID})
		switch {
		case err == nil:
			continue
		case errors.HasReason(err, errors.ReasonInvalidSaveData), errors.IsNotFound(err):
			out.Corrupted = append(out.Corrupted, slotID)
		default:
			return nil, errors.Wrapf(err, "failed to check slot %s", slotID)
		}

		slog.Warn("Unreadable save slot", "slot_id", slotID, "error", err)

		if !input.Fix {
			continue
		}
		if _, err := repo.Delete(ctx, DeleteInput{SlotID: slotID}); err != nil && !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to delete slot %s", slotID)
		}
		out.Deleted = append(out.Deleted, slotID)
	}

	return out, nil
}
