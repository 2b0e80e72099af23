// Package ipc locates and manages the local Unix socket that connects the
// wayclip CLI tools (copy/paste/clear/status) to a running serve daemon.
// CLI sub-commands probe for the socket and fall back to driving a
// clipboard transport directly when no daemon is around.
package ipc

import (
	"net"
	"os"
	"path/filepath"
)

const socketName = "wayclip.sock"

// SocketPath returns the path of the IPC socket.
//
// $WAYCLIP_SOCKET overrides everything. Otherwise the socket lives in
// $XDG_RUNTIME_DIR — the same per-session directory the Wayland display
// socket lives in — falling back to the system temp directory when the
// session has none.
func SocketPath() string {
	if s := os.Getenv("WAYCLIP_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	return filepath.Join(os.TempDir(), socketName)
}

// IsRunning reports whether a serve daemon appears to be listening on the
// IPC socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := net.Dial("unix", SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Dial connects to the daemon's IPC socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}

// Listen creates a net.Listener on the IPC socket path, removing any stale
// socket left behind by a crashed daemon first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	return net.Listen("unix", path)
}
