// wayclip: Wayland clipboard and primary selection from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "wayclip",
		Short: "Clipboard and primary selection for Wayland sessions",
		Long: `wayclip reads and writes the compositor's selection buffers: the regular
clipboard and, where the compositor supports it, the primary selection.
Writes target both buffers at once; reads prefer the primary selection and
fall back to the regular clipboard when it is empty.

Copied contents only survive as long as the copying process. Run
"wayclip serve" to keep a long-lived owner around; copy/paste/clear/status
then route through its socket automatically.

Config file search order (first found wins):
  /etc/wayclip/wayclip.toml
  $HOME/.config/wayclip/wayclip.toml
  path supplied via --config

All flags can be set via WAYCLIP_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCopyCmd(),
		newPasteCmd(),
		newClearCmd(),
		newStatusCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("wayclip %s\n", Version)
		},
	}
}
