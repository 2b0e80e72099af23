package selection

import "io"

// Kind is a bitmask of selection buffers. The regular clipboard is the
// conventional copy/paste buffer; the primary selection is the
// highlight-and-middle-click buffer that only some compositors offer.
type Kind uint8

const (
	Regular Kind = 1 << iota
	Primary

	Both = Regular | Primary
)

// Has reports whether k includes the given buffer.
func (k Kind) Has(b Kind) bool { return k&b != 0 }

func (k Kind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Primary:
		return "primary"
	case Both:
		return "regular+primary"
	}
	return "none"
}

// SeatUnspecified targets no particular seat: reads take whichever seat has
// content, writes and clears apply to all seats. The Context only ever uses
// this value; seat-scoped operations are a transport-level capability.
const SeatUnspecified = ""

// Transport speaks the windowing system's selection-transfer protocol on
// behalf of a Context. Implementations serve and retrieve byte streams
// tagged with a MIME type; wayclip only ever asks for plain text.
type Transport interface {
	// PrimarySupported reports whether the session offers a primary
	// selection. ErrNoSeats is a distinguished non-fatal result; any other
	// error means the environment is unusable.
	PrimarySupported() (bool, error)

	// Paste requests the text contents of a single buffer. The three
	// empty-like conditions are reported as ErrNoSeats, ErrEmpty and
	// ErrNoTextType. The returned stream is owned by the caller.
	Paste(kind Kind, seat string) (io.ReadCloser, error)

	// Copy publishes data as text to every buffer in kinds. The payload
	// must be preserved byte for byte (no newline trimming), and the
	// transport keeps answering paste requests in the background until the
	// contents are superseded or cleared. A Both request is atomic from
	// the caller's point of view.
	Copy(kinds Kind, seat string, data []byte) error

	// Clear removes the contents of every buffer in kinds.
	Clear(kinds Kind, seat string) error
}
