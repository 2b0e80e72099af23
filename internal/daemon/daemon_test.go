package daemon

import (
	"bytes"
	"context"
	"io"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/wayclip/internal/message"
	"go.klb.dev/wayclip/internal/wire"
	"go.klb.dev/wayclip/selection"
)

// memTransport is an in-memory selection.Transport with primary support.
type memTransport struct {
	regular []byte
	primary []byte
}

func (m *memTransport) PrimarySupported() (bool, error) { return true, nil }

func (m *memTransport) Paste(kind selection.Kind, _ string) (io.ReadCloser, error) {
	var data []byte
	if kind == selection.Primary {
		data = m.primary
	} else {
		data = m.regular
	}
	if data == nil {
		return nil, selection.ErrEmpty
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memTransport) Copy(kinds selection.Kind, _ string, data []byte) error {
	if kinds.Has(selection.Regular) {
		m.regular = append([]byte(nil), data...)
	}
	if kinds.Has(selection.Primary) {
		m.primary = append([]byte(nil), data...)
	}
	return nil
}

func (m *memTransport) Clear(kinds selection.Kind, _ string) error {
	if kinds.Has(selection.Regular) {
		m.regular = nil
	}
	if kinds.Has(selection.Primary) {
		m.primary = nil
	}
	return nil
}

func startServer(t *testing.T) string {
	t.Helper()
	clip, err := selection.New(&memTransport{})
	require.NoError(t, err)
	srv := New(clip, "memory")

	sock := filepath.Join(t.TempDir(), "wayclip.sock")
	ln, err := net.Listen("unix", sock)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = srv.Serve(ctx, ln) }()
	return sock
}

func roundTrip(t *testing.T, sock string, req *message.Message) *message.Message {
	t.Helper()
	conn, err := net.Dial("unix", sock)
	require.NoError(t, err)
	defer conn.Close()

	wc := wire.New(conn)
	require.NoError(t, wc.WriteMsg(req))
	resp, err := wc.ReadMsg()
	require.NoError(t, err)
	return resp
}

func TestCopyThenPaste(t *testing.T) {
	sock := startServer(t)

	resp := roundTrip(t, sock, message.NewCopy("tester", "shared text\n"))
	require.Equal(t, message.TypeResult, resp.Type, "copy error: %s", resp.Error)

	resp = roundTrip(t, sock, &message.Message{Type: message.TypePaste})
	require.Equal(t, message.TypeResult, resp.Type)
	text, err := resp.Text()
	require.NoError(t, err)
	assert.Equal(t, "shared text\n", text)
}

func TestPasteEmptyClipboard(t *testing.T) {
	sock := startServer(t)

	resp := roundTrip(t, sock, &message.Message{Type: message.TypePaste})
	require.Equal(t, message.TypeResult, resp.Type)
	text, err := resp.Text()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestClear(t *testing.T) {
	sock := startServer(t)

	roundTrip(t, sock, message.NewCopy("tester", "doomed"))
	resp := roundTrip(t, sock, &message.Message{Type: message.TypeClear})
	require.Equal(t, message.TypeResult, resp.Type)

	resp = roundTrip(t, sock, &message.Message{Type: message.TypePaste})
	text, err := resp.Text()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestStatus(t *testing.T) {
	sock := startServer(t)

	roundTrip(t, sock, message.NewCopy("laptop", "x"))
	resp := roundTrip(t, sock, &message.Message{Type: message.TypeStatus})
	require.Equal(t, message.TypeResult, resp.Type)
	require.NotNil(t, resp.Status)
	assert.Equal(t, "memory", resp.Status.Backend)
	assert.True(t, resp.Status.PrimarySupport)
	assert.Equal(t, "laptop", resp.Status.LastSource)
	assert.False(t, resp.Status.StartedAt.IsZero())
}

func TestUnknownRequestType(t *testing.T) {
	sock := startServer(t)

	resp := roundTrip(t, sock, &message.Message{Type: "BOGUS"})
	assert.Equal(t, message.TypeError, resp.Type)
}
