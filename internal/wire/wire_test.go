package wire

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/wayclip/internal/message"
)

func TestWriteReadMsg(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	wc := New(client)
	ws := New(server)

	sent := message.NewCopy("test-host", "hello over the socket\n")
	errCh := make(chan error, 1)
	go func() { errCh <- wc.WriteMsg(sent) }()

	got, err := ws.ReadMsg()
	require.NoError(t, err)
	require.NoError(t, <-errCh)

	assert.Equal(t, message.TypeCopy, got.Type)
	assert.Equal(t, "test-host", got.Source)
	text, err := got.Text()
	require.NoError(t, err)
	assert.Equal(t, "hello over the socket\n", text)
}

func TestReadMsgRejectsGarbageLine(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		_, _ = client.Write([]byte("this is not json\n"))
	}()

	_, err := New(server).ReadMsg()
	require.Error(t, err)
}

func TestReadMsgEOFOnClose(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	ws := New(server)
	require.NoError(t, client.Close())
	_, err := ws.ReadMsg()
	require.Error(t, err)
}
