// Package daemon implements the serve-mode request handler. It owns one
// selection.Context and answers IPC requests from the CLI tools.
//
// Its real job is lifetime: wl-copy's background responder dies with the
// process that spawned it, so short-lived "wayclip copy" invocations route
// their writes through the daemon, whose long-lived process keeps serving
// paste requests to the rest of the session.
package daemon

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"go.klb.dev/wayclip/internal/message"
	"go.klb.dev/wayclip/internal/wire"
	"go.klb.dev/wayclip/selection"
)

const readDeadline = 10 * time.Second

// Server answers IPC requests against a single clipboard context.
//
// selection.Context does not serialize concurrent calls, so the server
// takes a mutex around every operation.
type Server struct {
	mu      sync.Mutex
	clip    *selection.Context
	backend string

	startedAt  time.Time
	lastSource string
	lastCopyAt time.Time
}

// New returns a Server operating on clip. backend names the transport for
// status reporting.
func New(clip *selection.Context, backend string) *Server {
	return &Server{
		clip:      clip,
		backend:   backend,
		startedAt: time.Now(),
	}
}

// Serve accepts connections on ln until ctx is cancelled or the listener
// fails.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		go s.handle(conn)
	}
}

// handle serves one request/response exchange per connection.
func (s *Server) handle(conn net.Conn) {
	defer conn.Close()
	wc := wire.New(conn)

	wc.SetReadDeadline(readDeadline)
	req, err := wc.ReadMsg()
	if err != nil {
		slog.Debug("ipc: bad request", "err", err)
		return
	}
	wc.SetReadDeadline(0)

	resp := s.dispatch(req)
	if err := wc.WriteMsg(resp); err != nil {
		slog.Warn("ipc: response write failed", "type", req.Type, "err", err)
	}
}

func (s *Server) dispatch(req *message.Message) *message.Message {
	switch req.Type {
	case message.TypeCopy:
		return s.handleCopy(req)
	case message.TypePaste:
		return s.handlePaste()
	case message.TypeClear:
		return s.handleClear()
	case message.TypeStatus:
		return s.handleStatus()
	default:
		slog.Warn("ipc: unknown request type", "type", req.Type)
		return &message.Message{Type: message.TypeError, Error: "unknown request type"}
	}
}

func (s *Server) handleCopy(req *message.Message) *message.Message {
	text, err := req.Text()
	if err != nil {
		return message.NewError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.clip.SetContents(text); err != nil {
		slog.Error("copy failed", "source", req.Source, "err", err)
		return message.NewError(err)
	}
	s.lastSource = req.Source
	s.lastCopyAt = time.Now()
	slog.Info("clipboard set", "source", req.Source, "bytes", len(text))
	return &message.Message{Type: message.TypeResult}
}

func (s *Server) handlePaste() *message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, err := s.clip.Contents()
	if err != nil {
		slog.Error("paste failed", "err", err)
		return message.NewError(err)
	}
	return message.NewResult(text)
}

func (s *Server) handleClear() *message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.clip.Clear(); err != nil {
		slog.Error("clear failed", "err", err)
		return message.NewError(err)
	}
	slog.Info("clipboard cleared")
	return &message.Message{Type: message.TypeResult}
}

func (s *Server) handleStatus() *message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &message.Message{
		Type: message.TypeResult,
		Status: &message.StatusInfo{
			Backend:        s.backend,
			PrimarySupport: s.clip.SupportsPrimary(),
			StartedAt:      s.startedAt,
			LastSource:     s.lastSource,
			LastCopyAt:     s.lastCopyAt,
		},
	}
}
