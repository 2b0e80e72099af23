package wlcmd

import (
	"errors"
	"strings"

	"go.klb.dev/wayclip/selection"
)

// errPrimaryUnsupported marks a compositor that does not offer the primary
// selection at all. It never leaves this package: PrimarySupported turns it
// into a false capability, and Paste treats it as an ordinary failure.
var errPrimaryUnsupported = errors.New("primary selection not supported by the compositor")

// classifyStderr maps wl-clipboard's diagnostics onto the selection
// sentinels. Returns nil for anything unrecognised, which callers treat as
// a plain transport failure. Matching is on lowercase substrings because
// the exact wording varies between wl-clipboard releases.
func classifyStderr(stderr string) error {
	s := strings.ToLower(stderr)
	switch {
	case strings.Contains(s, "no seats"),
		strings.Contains(s, "no seat named"),
		strings.Contains(s, "missing a seat"):
		return selection.ErrNoSeats
	case strings.Contains(s, "nothing is copied"),
		strings.Contains(s, "no selection"),
		strings.Contains(s, "clipboard is empty"):
		return selection.ErrEmpty
	case strings.Contains(s, "no suitable type"),
		strings.Contains(s, "cannot be represented"),
		strings.Contains(s, "offered types"):
		return selection.ErrNoTextType
	case strings.Contains(s, "primary selection"):
		return errPrimaryUnsupported
	}
	return nil
}
