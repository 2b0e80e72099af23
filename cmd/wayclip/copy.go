package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wayclip/internal/ipc"
	"go.klb.dev/wayclip/internal/message"
)

func newCopyCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy stdin to the clipboard (like wl-copy / pbcopy)",
		Long: `Reads stdin and places it on the clipboard, byte for byte — trailing
newlines included. When the compositor supports the primary selection both
buffers receive the same contents.

If a wayclip daemon is running, the copy routes through it so the contents
outlive this invocation. Otherwise the clipboard is written directly and
served for as long as the compositor keeps the offer alive.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runCopy(v) },
	}

	cmd.Flags().String("source", defaultSource(), "source identifier shown in status output")
	addCommonFlags(cmd)

	return cmd
}

func runCopy(v *viper.Viper) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	if ipc.IsRunning() {
		_, err := ipcExchange(message.NewCopy(v.GetString("source"), string(data)))
		if err == nil {
			return nil
		}
		slog.Warn("daemon copy failed, writing clipboard directly", "err", err)
	}

	clip, _, err := newContext(v.GetString("backend"))
	if err != nil {
		return err
	}
	return clip.SetContents(string(data))
}
