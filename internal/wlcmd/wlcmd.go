// Package wlcmd implements selection.Transport on top of the wl-clipboard
// binaries (wl-copy and wl-paste), which speak the data-control protocol to
// the compositor on our behalf.
//
// wl-copy forks a child that keeps serving paste requests until the
// selection is superseded or cleared, which is exactly the background
// responder the Transport contract asks for. wl-paste and the capability
// probe run to completion, so their stderr can be captured and classified
// into the selection sentinels.
package wlcmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"go.klb.dev/wayclip/selection"
)

const (
	copyBin  = "wl-copy"
	pasteBin = "wl-paste"

	// "text" makes wl-paste accept any text/* offer; wl-copy gets the
	// concrete type it should advertise.
	pasteType = "text"
	copyType  = "text/plain"
)

// Transport shells out to wl-copy/wl-paste. The zero value is not usable;
// call New.
type Transport struct {
	copyPath  string
	pastePath string
}

// New resolves the wl-clipboard binaries. A missing binary means the
// environment cannot be used at all, so it fails here rather than on first
// use.
func New() (*Transport, error) {
	cp, err := exec.LookPath(copyBin)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", copyBin, err)
	}
	pp, err := exec.LookPath(pasteBin)
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", pasteBin, err)
	}
	return &Transport{copyPath: cp, pastePath: pp}, nil
}

// Available reports whether the wl-clipboard binaries are installed.
func Available() bool {
	_, err := exec.LookPath(copyBin)
	if err != nil {
		return false
	}
	_, err = exec.LookPath(pasteBin)
	return err == nil
}

// PrimarySupported probes the compositor by listing primary-selection
// offers. The probe succeeding, or failing with an empty-like complaint,
// both mean the primary selection works; a primary-selection complaint
// means it does not. Seat complaints surface as selection.ErrNoSeats and
// anything else (typically a failure to reach a Wayland server) is fatal.
func (t *Transport) PrimarySupported() (bool, error) {
	_, stderr, err := t.capture(t.pastePath, "--primary", "--list-types")
	if err == nil {
		return true, nil
	}
	switch cls := classifyStderr(stderr); {
	case cls == nil:
		return false, fmt.Errorf("%s: %w: %s", pasteBin, err, strings.TrimSpace(stderr))
	case errors.Is(cls, errPrimaryUnsupported):
		return false, nil
	case errors.Is(cls, selection.ErrNoSeats):
		return false, selection.ErrNoSeats
	default:
		// Empty-like: the buffer answered, so the protocol is there.
		return true, nil
	}
}

// Paste retrieves the text contents of a single buffer. kind must be
// Regular or Primary, never Both.
func (t *Transport) Paste(kind selection.Kind, seat string) (io.ReadCloser, error) {
	if kind != selection.Regular && kind != selection.Primary {
		return nil, fmt.Errorf("paste targets one buffer, got %s", kind)
	}
	args := []string{"--no-newline", "--type", pasteType}
	if kind == selection.Primary {
		args = append(args, "--primary")
	}
	if seat != selection.SeatUnspecified {
		args = append(args, "--seat", seat)
	}

	out, stderr, err := t.capture(t.pastePath, args...)
	if err != nil {
		if cls := classifyStderr(stderr); cls != nil && !errors.Is(cls, errPrimaryUnsupported) {
			return nil, cls
		}
		return nil, fmt.Errorf("%s: %w: %s", pasteBin, err, strings.TrimSpace(stderr))
	}
	return io.NopCloser(bytes.NewReader(out)), nil
}

// Copy publishes data to every buffer in kinds. wl-copy cannot write both
// buffers from one process, so a Both request fans out to two invocations;
// the fan-out stays inside this one Transport call.
func (t *Transport) Copy(kinds selection.Kind, seat string, data []byte) error {
	if kinds.Has(selection.Regular) {
		if err := t.copyOne(false, seat, data); err != nil {
			return err
		}
	}
	if kinds.Has(selection.Primary) {
		if err := t.copyOne(true, seat, data); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transport) copyOne(primary bool, seat string, data []byte) error {
	// No --trim-newline: the payload is preserved byte for byte. No
	// --foreground either, so wl-copy forks its serving child and the
	// call returns once the publish is accepted.
	args := []string{"--type", copyType}
	if primary {
		args = append(args, "--primary")
	}
	if seat != selection.SeatUnspecified {
		args = append(args, "--seat", seat)
	}

	cmd := exec.Command(t.copyPath, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%s stdin: %w", copyBin, err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return fmt.Errorf("%s: %w", copyBin, err)
	}
	_, writeErr := stdin.Write(data)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if writeErr != nil {
		return fmt.Errorf("%s stdin: %w", copyBin, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%s stdin: %w", copyBin, closeErr)
	}
	if waitErr != nil {
		return fmt.Errorf("%s: %w", copyBin, waitErr)
	}
	return nil
}

// Clear removes the contents of every buffer in kinds, fanning out like Copy.
func (t *Transport) Clear(kinds selection.Kind, seat string) error {
	if kinds.Has(selection.Regular) {
		if err := t.clearOne(false, seat); err != nil {
			return err
		}
	}
	if kinds.Has(selection.Primary) {
		if err := t.clearOne(true, seat); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transport) clearOne(primary bool, seat string) error {
	args := []string{"--clear"}
	if primary {
		args = append(args, "--primary")
	}
	if seat != selection.SeatUnspecified {
		args = append(args, "--seat", seat)
	}
	if _, stderr, err := t.capture(t.copyPath, args...); err != nil {
		return fmt.Errorf("%s --clear: %w: %s", copyBin, err, strings.TrimSpace(stderr))
	}
	return nil
}

// capture runs a wl-clipboard invocation that terminates on its own
// (wl-paste, probes, --clear) and returns stdout plus stderr. Not suitable
// for a serving wl-copy, whose forked child would hold the pipes open.
func (t *Transport) capture(path string, args ...string) ([]byte, string, error) {
	cmd := exec.Command(path, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.Bytes(), errBuf.String(), err
}
