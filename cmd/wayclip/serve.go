package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"go.klb.dev/wayclip/internal/daemon"
	"go.klb.dev/wayclip/internal/ipc"
	"go.klb.dev/wayclip/selection"
)

func newServeCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the clipboard daemon",
		Long: `Holds a clipboard context open and answers copy/paste/clear/status
requests on the IPC socket. Because the daemon is the process that owns each
copy, clipboard contents survive after the copying command exits — without a
daemon they are gone as soon as the compositor's offer holder dies.

The socket lives in $XDG_RUNTIME_DIR (override with $WAYCLIP_SOCKET).`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runServe(v) },
	}

	addCommonFlags(cmd)
	addLoggingFlags(cmd)

	return cmd
}

func runServe(v *viper.Viper) error {
	setupLogging(v)

	t, backend, err := newTransport(v.GetString("backend"))
	if err != nil {
		return err
	}
	clip, err := selection.New(t)
	if err != nil {
		return fmt.Errorf("%s backend: %w", backend, err)
	}

	ln, err := ipc.Listen()
	if err != nil {
		return fmt.Errorf("listen %s: %w", ipc.SocketPath(), err)
	}

	slog.Info("wayclip daemon started",
		"version", Version,
		"socket", ipc.SocketPath(),
		"backend", backend,
		"primary_selection", clip.SupportsPrimary(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := daemon.New(clip, backend)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(ctx, ln) })
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")
		return nil
	})
	return g.Wait()
}
