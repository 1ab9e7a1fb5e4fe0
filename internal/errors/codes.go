package errors

// Code classifies an error by how the caller should react to it. The rule
// that produced the error, if any, is carried separately as a Reason.
type Code string

const (
	// CodeOK is reported for a nil error.
	CodeOK Code = "OK"

	// CodeInvalidArgument marks input the caller can fix: unknown IDs in a
	// request, malformed config, an out of bounds draft selection.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	// CodeNotFound marks a missing session, save slot, card or material.
	CodeNotFound Code = "NOT_FOUND"
	// CodeAlreadyExists marks an ID collision in a store.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeFailedPrecondition marks a request that is valid but not allowed
	// in the current game state, e.g. gathering after the game has ended.
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	// CodeAborted marks work cut short by cancellation or a rejected abort.
	CodeAborted Code = "ABORTED"
	// CodeOutOfRange marks a value past a game limit such as action points.
	CodeOutOfRange Code = "OUT_OF_RANGE"

	// CodeInternal is the default for errors that did not come from here.
	CodeInternal Code = "INTERNAL"
	// CodeUnavailable marks a backing store that cannot be reached.
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeDataLoss marks stored data that no longer decodes.
	CodeDataLoss Code = "DATA_LOSS"
)

// String returns the code as text
func (c Code) String() string {
	return string(c)
}
