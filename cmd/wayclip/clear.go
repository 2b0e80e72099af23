package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wayclip/internal/ipc"
	"go.klb.dev/wayclip/internal/message"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard",
		Long: `Removes the current contents of the regular clipboard and, when the
compositor supports it, the primary selection. Clearing an already-empty
clipboard succeeds.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runClear(v) },
	}

	addCommonFlags(cmd)

	return cmd
}

func runClear(v *viper.Viper) error {
	if ipc.IsRunning() {
		_, err := ipcExchange(&message.Message{Type: message.TypeClear})
		return err
	}

	clip, _, err := newContext(v.GetString("backend"))
	if err != nil {
		return err
	}
	return clip.Clear()
}
