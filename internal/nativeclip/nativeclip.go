// Package nativeclip implements selection.Transport over
// golang.design/x/clipboard for sessions that are not running Wayland
// (X11, macOS, Windows). The library only exposes the regular clipboard,
// so the primary selection is reported as unsupported and the context never
// asks for it.
package nativeclip

import (
	"bytes"
	"fmt"
	"io"

	"golang.design/x/clipboard"

	"go.klb.dev/wayclip/selection"
)

// Transport is the non-Wayland clipboard backend.
type Transport struct{}

// New initialises the native clipboard. An Init failure means there is no
// usable display environment, which is fatal.
func New() (*Transport, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("native clipboard unavailable: %w", err)
	}
	return &Transport{}, nil
}

func (t *Transport) PrimarySupported() (bool, error) { return false, nil }

func (t *Transport) Paste(kind selection.Kind, _ string) (io.ReadCloser, error) {
	if kind != selection.Regular {
		return nil, fmt.Errorf("native clipboard has no %s buffer", kind)
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, selection.ErrEmpty
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (t *Transport) Copy(kinds selection.Kind, _ string, data []byte) error {
	if kinds.Has(selection.Primary) {
		return fmt.Errorf("native clipboard has no primary buffer")
	}
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func (t *Transport) Clear(kinds selection.Kind, _ string) error {
	if kinds.Has(selection.Primary) {
		return fmt.Errorf("native clipboard has no primary buffer")
	}
	clipboard.Write(clipboard.FmtText, nil)
	return nil
}
