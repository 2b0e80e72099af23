// Package wire reads and writes newline-delimited JSON messages over a
// net.Conn. Every message is exactly one line: <json>\n. The IPC socket is
// local and owner-restricted, so there is no transport encryption layer.
package wire

import (
	"bufio"
	"fmt"
	"net"
	"time"

	"go.klb.dev/wayclip/internal/message"
)

const (
	// MaxMessageSize bounds a single message line (32 MiB). Clipboard
	// payloads are base64-encoded text, so this allows ~24 MiB of raw
	// content.
	MaxMessageSize = 32 * 1024 * 1024

	writeDeadline = 5 * time.Second
)

// Conn wraps a net.Conn with buffered newline-delimited JSON framing.
type Conn struct {
	conn net.Conn
	br   *bufio.Reader
}

// New wraps conn.
func New(conn net.Conn) *Conn {
	return &Conn{
		conn: conn,
		br:   bufio.NewReaderSize(conn, 64*1024),
	}
}

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.conn.Close() }

// SetReadDeadline sets the read deadline d from now; d == 0 clears it.
func (c *Conn) SetReadDeadline(d time.Duration) {
	if d == 0 {
		_ = c.conn.SetReadDeadline(time.Time{})
	} else {
		_ = c.conn.SetReadDeadline(time.Now().Add(d))
	}
}

// WriteMsg serialises msg and writes it followed by a newline.
func (c *Conn) WriteMsg(msg *message.Message) error {
	raw, err := msg.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	line := append(raw, '\n')

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	_, err = c.conn.Write(line)
	_ = c.conn.SetWriteDeadline(time.Time{})
	return err
}

// ReadMsg reads one newline-terminated line and deserialises it.
func (c *Conn) ReadMsg() (*message.Message, error) {
	line, err := c.br.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	if len(line) > MaxMessageSize {
		return nil, fmt.Errorf("message too large (%d bytes)", len(line))
	}
	return message.Decode(line[:len(line)-1])
}
