// Package errors provides the structured error type used across guildcraft.
//
// Every error carries a Code describing its broad category and, for game
// rules, a Reason naming the exact rule that was violated:
//
//	err := errors.NotFoundf("material %s not found", id).
//	    WithReason(errors.ReasonMaterialNotFound).
//	    WithMeta("material_id", id)
//
// Callers branch on the reason rather than parsing messages:
//
//	if errors.HasReason(err, errors.ReasonCardNotInHand) {
//	    // ask the player to pick another card
//	}
//
// Wrapping preserves both the code and the metadata of the wrapped error:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load draft session")
//	}
//
// Configuration structs validate themselves with a ValidationBuilder, which
// collects field errors and returns a single InvalidArgument error.
package errors
