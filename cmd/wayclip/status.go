package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wayclip/internal/ipc"
	"go.klb.dev/wayclip/internal/message"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show clipboard backend and daemon state",
		Long: `Reports which backend is in use, whether the compositor supports the
primary selection, and — when a wayclip daemon is running — when it started
and who copied last.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runStatus(v) },
	}

	cmd.Flags().Bool("json", false, "output raw JSON")
	addCommonFlags(cmd)

	return cmd
}

func runStatus(v *viper.Viper) error {
	var st *message.StatusInfo
	daemonRunning := ipc.IsRunning()

	if daemonRunning {
		resp, err := ipcExchange(&message.Message{Type: message.TypeStatus})
		if err != nil {
			return err
		}
		st = resp.Status
	} else {
		clip, backend, err := newContext(v.GetString("backend"))
		if err != nil {
			return err
		}
		st = &message.StatusInfo{
			Backend:        backend,
			PrimarySupport: clip.SupportsPrimary(),
		}
	}

	if v.GetBool("json") {
		enc, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		return nil
	}

	printStatus(st, daemonRunning)
	return nil
}

func printStatus(st *message.StatusInfo, daemonRunning bool) {
	w := tabwriter.NewWriter(os.Stdout, 1, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Backend:\t%s\n", st.Backend)
	fmt.Fprintf(w, "Primary selection:\t%v\n", st.PrimarySupport)
	if daemonRunning {
		fmt.Fprintf(w, "Daemon:\trunning (%s)\n", ipc.SocketPath())
		fmt.Fprintf(w, "Started:\t%s (%s ago)\n",
			st.StartedAt.UTC().Format(time.RFC3339), fmtAge(st.StartedAt))
		if st.LastSource != "" {
			fmt.Fprintf(w, "Last copy:\t%s (%s ago)\n", st.LastSource, fmtAge(st.LastCopyAt))
		}
	} else {
		fmt.Fprintf(w, "Daemon:\tnot running\n")
	}
	_ = w.Flush()
}

func fmtAge(t time.Time) string {
	age := time.Since(t).Round(time.Second)
	if age < time.Minute {
		return fmt.Sprintf("%ds", int(age.Seconds()))
	}
	if age < time.Hour {
		return fmt.Sprintf("%dm", int(age.Minutes()))
	}
	return fmt.Sprintf("%dh%dm", int(age.Hours()), int(age.Minutes())%60)
}
