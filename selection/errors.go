package selection

import "errors"

// Sentinel errors used by Transport implementations. The first three are the
// empty-like conditions: they mean "no content", never a failed operation,
// and the read path absorbs them instead of surfacing them to the caller.
var (
	// ErrNoSeats means the session has no input seats to serve.
	ErrNoSeats = errors.New("no seats available")

	// ErrEmpty means the requested buffer holds nothing.
	ErrEmpty = errors.New("selection buffer is empty")

	// ErrNoTextType means the buffer has content, but none of it is
	// offered as text.
	ErrNoTextType = errors.New("no text type offered")

	// ErrNotUTF8 means a buffer served bytes that do not decode as UTF-8
	// text. Unlike the empty-like conditions it is always surfaced.
	ErrNotUTF8 = errors.New("selection contents are not valid UTF-8")
)

// emptyLike reports whether err is one of the three no-content conditions.
func emptyLike(err error) bool {
	return errors.Is(err, ErrNoSeats) ||
		errors.Is(err, ErrEmpty) ||
		errors.Is(err, ErrNoTextType)
}
