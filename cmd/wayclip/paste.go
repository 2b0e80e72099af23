package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wayclip/internal/ipc"
	"go.klb.dev/wayclip/internal/message"
)

func newPasteCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Print the clipboard to stdout (like wl-paste / pbpaste)",
		Long: `Writes the current clipboard text to stdout exactly as it was copied —
no newline is added or removed. The primary selection is consulted first
when the compositor supports it; an empty primary selection falls back to
the regular clipboard. An empty clipboard prints nothing and exits 0.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runPaste(v) },
	}

	addCommonFlags(cmd)

	return cmd
}

func runPaste(v *viper.Viper) error {
	if ipc.IsRunning() {
		resp, err := ipcExchange(&message.Message{Type: message.TypePaste})
		if err != nil {
			return err
		}
		text, err := resp.Text()
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(text)
		return err
	}

	clip, _, err := newContext(v.GetString("backend"))
	if err != nil {
		return err
	}
	text, err := clip.Contents()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	_, err = os.Stdout.WriteString(text)
	return err
}
