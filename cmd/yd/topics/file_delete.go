package topics

import (
	"errors"
	"fmt"
	"os"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/spf13/cobra"
)

// fileDeleteCmd represents the "file delete" command
var fileDeleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Delete a file from the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm := client.NewPromptConfirmer(os.Stdin, os.Stdout)
		confirm.AssumeYes, _ = cmd.Flags().GetBool("yes")

		c := newFileListClient(newTermView(), confirm)
		err := c.DeleteFile(cmd.Context(), args[0])
		if errors.Is(err, client.ErrCanceled) {
			fmt.Println("canceled")
			return nil
		}
		return shown(err)
	},
}

func init() {
	fileCmd.AddCommand(fileDeleteCmd)
	fileDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
