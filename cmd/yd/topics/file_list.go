package topics

import (
	"os"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/spf13/cobra"
)

// fileListCmd represents the "file list" command
var fileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List files stored by the server, with their remaining time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		basic, _ := cmd.Flags().GetBool("basic")
		html, _ := cmd.Flags().GetBool("html")

		var view client.View
		switch {
		case html:
			client.GetExitMessage().Disable()
			htmlView := client.NewHTMLView(os.Stdout)
			defer func() {
				if err := htmlView.Err(); err != nil {
					client.Log.Error(err)
				}
			}()
			view = htmlView
		case basic:
			client.GetExitMessage().Disable()
			termView := newTermView()
			termView.Basic = true
			view = termView
		default:
			view = newTermView()
		}

		c := newFileListClient(view, nil)
		return c.RefreshFileList(cmd.Context())
	},
}

func init() {
	fileCmd.AddCommand(fileListCmd)
	fileListCmd.Flags().BoolP("basic", "b", false, "show basic list, without any formating")
	fileListCmd.Flags().BoolP("html", "", false, "render the list as an HTML fragment")
}
