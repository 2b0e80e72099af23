// Package selection exposes the compositor's clipboard through one uniform
// read/write/clear surface covering two buffers: the regular clipboard and,
// where the session supports it, the primary selection.
//
// Other applications only see copied contents for as long as the process
// that copied them is alive (the transport keeps a background responder
// serving paste requests). If contents should outlive the caller, hand the
// Context to a long-running process — that is what "wayclip serve" does.
package selection

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Context is a capability-aware adapter over a selection Transport.
//
// Whether the primary selection is available is detected once, in New, and
// never re-checked. A Context is immutable after construction and carries no
// other state, but it does not serialize concurrent calls: callers that need
// deterministic ordering across goroutines must provide their own mutual
// exclusion.
type Context struct {
	transport       Transport
	supportsPrimary bool
}

// New constructs a Context over t, detecting primary-selection support.
//
// A transport reporting ErrNoSeats from the capability check yields a
// working Context without primary support — headless and CLI sessions
// commonly have no seats, and that must not be a hard failure. Any other
// check error (no compositor, protocol failure) fails construction.
func New(t Transport) (*Context, error) {
	supported, err := t.PrimarySupported()
	if err != nil {
		if !errors.Is(err, ErrNoSeats) {
			return nil, fmt.Errorf("primary selection check: %w", err)
		}
		supported = false
	}
	return &Context{transport: t, supportsPrimary: supported}, nil
}

// SupportsPrimary reports the capability detected at construction.
func (c *Context) SupportsPrimary() bool { return c.supportsPrimary }

// Contents returns the current text contents.
//
// When the session supports the primary selection it is consulted first; if
// it turns out empty-like (no seats, empty buffer, no text type) the regular
// clipboard is tried next, since the primary selection is often transiently
// empty while the regular clipboard holds the real payload. Any other
// primary failure — transport errors, invalid UTF-8, a failed drain —
// propagates immediately without falling back.
//
// An absent or empty clipboard is not an error: the result is "".
func (c *Context) Contents() (string, error) {
	if c.supportsPrimary {
		rc, err := c.transport.Paste(Primary, SeatUnspecified)
		switch {
		case err == nil:
			return readText(rc)
		case emptyLike(err):
			// Try the regular clipboard instead.
		default:
			return "", fmt.Errorf("paste primary: %w", err)
		}
	}

	rc, err := c.transport.Paste(Regular, SeatUnspecified)
	if err != nil {
		if emptyLike(err) {
			return "", nil
		}
		return "", fmt.Errorf("paste: %w", err)
	}
	return readText(rc)
}

// SetContents publishes text to the clipboard. With primary-selection
// support both buffers receive the same bytes in a single transport call;
// otherwise only the regular clipboard is written. The payload is preserved
// exactly, trailing newline included.
//
// The call returns once the transport has accepted the publish; serving the
// bytes to future paste requests happens out of band and is the transport's
// business for as long as this process lives.
func (c *Context) SetContents(text string) error {
	kinds := Regular
	if c.supportsPrimary {
		kinds = Both
	}
	if err := c.transport.Copy(kinds, SeatUnspecified, []byte(text)); err != nil {
		return fmt.Errorf("copy %s: %w", kinds, err)
	}
	return nil
}

// Clear removes this context's influence over the buffers it manages, for
// all seats. Clearing an already-empty clipboard is safe.
func (c *Context) Clear() error {
	kinds := Regular
	if c.supportsPrimary {
		kinds = Both
	}
	if err := c.transport.Clear(kinds, SeatUnspecified); err != nil {
		return fmt.Errorf("clear %s: %w", kinds, err)
	}
	return nil
}

// readText drains rc and validates the bytes as UTF-8. Drain and decode
// failures are final; they never trigger a fallback read.
func readText(rc io.ReadCloser) (string, error) {
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("drain selection: %w", err)
	}
	if !utf8.Valid(b) {
		return "", ErrNotUTF8
	}
	return string(b), nil
}
