package topics

import (
	"fmt"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/spf13/cobra"
)

// watchCmd represents the "watch" command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show stored files, refreshed periodically",
	Long: `Show stored files and refresh the list periodically (see the
"refresh" setting) until interrupted. A failed refresh keeps the previous
list on screen.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval := client.GlobalConfig.Refresh
		if cmd.Flags().Lookup("refresh").Changed {
			interval, _ = cmd.Flags().GetDuration("refresh")
			if interval <= 0 {
				return fmt.Errorf("invalid refresh interval %s", interval)
			}
		}

		view := newTermView()
		view.Timestamps = true
		c := client.NewFileListClient(client.GlobalAPI, view, nil, interval)

		fmt.Printf("refreshing every %s, Ctrl+C to stop\n", interval)
		c.Run(cmd.Context())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationP("refresh", "r", client.DefaultRefreshInterval, "refresh interval")
}
