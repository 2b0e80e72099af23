package main

import (
	"fmt"
	"os"

	"go.klb.dev/wayclip/internal/ipc"
	"go.klb.dev/wayclip/internal/message"
	"go.klb.dev/wayclip/internal/nativeclip"
	"go.klb.dev/wayclip/internal/wire"
	"go.klb.dev/wayclip/internal/wlcmd"
	"go.klb.dev/wayclip/selection"
)

// defaultSource returns a human-readable identifier for this host, used in
// serve-mode status output.
func defaultSource() string {
	if v := os.Getenv("WAYCLIP_SOURCE"); v != "" {
		return v
	}
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}

// newTransport builds the clipboard transport named by backend. "auto"
// picks wl-clipboard when the session is Wayland and the binaries exist,
// falling back to the native clipboard library otherwise.
func newTransport(backend string) (selection.Transport, string, error) {
	switch backend {
	case "wayland":
		t, err := wlcmd.New()
		return t, "wayland (wl-clipboard)", err
	case "native":
		t, err := nativeclip.New()
		return t, "native", err
	case "", "auto":
		if os.Getenv("WAYLAND_DISPLAY") != "" && wlcmd.Available() {
			t, err := wlcmd.New()
			return t, "wayland (wl-clipboard)", err
		}
		t, err := nativeclip.New()
		return t, "native", err
	default:
		return nil, "", fmt.Errorf("unknown backend %q (want auto, wayland or native)", backend)
	}
}

// newContext builds a clipboard context over the named backend.
func newContext(backend string) (*selection.Context, string, error) {
	t, name, err := newTransport(backend)
	if err != nil {
		return nil, "", err
	}
	clip, err := selection.New(t)
	if err != nil {
		return nil, "", fmt.Errorf("%s backend: %w", name, err)
	}
	return clip, name, nil
}

// ipcExchange performs one request/response round trip against the serve
// daemon. An ERROR response is surfaced as an error.
func ipcExchange(req *message.Message) (*message.Message, error) {
	conn, err := ipc.Dial()
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", ipc.SocketPath(), err)
	}
	defer conn.Close()

	wc := wire.New(conn)
	if err := wc.WriteMsg(req); err != nil {
		return nil, fmt.Errorf("ipc request: %w", err)
	}
	resp, err := wc.ReadMsg()
	if err != nil {
		return nil, fmt.Errorf("ipc response: %w", err)
	}
	if resp.Type == message.TypeError {
		return nil, fmt.Errorf("daemon: %s", resp.Error)
	}
	return resp, nil
}
