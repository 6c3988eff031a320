package topics

import (
	"fmt"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/OnitiFR/yd/common"
	"github.com/spf13/cobra"
)

// fileDownloadCmd represents the "file download" command
var fileDownloadCmd = &cobra.Command{
	Use:   "download <file>",
	Short: "Download a file in the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		c := newFileListClient(newTermView(), nil)
		client.Log.Debugf("downloading %s", c.DownloadURL(args[0]))

		dest, err := c.DownloadFile(cmd.Context(), args[0], output)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", common.PrintableText(dest))
		return nil
	},
}

func init() {
	fileCmd.AddCommand(fileDownloadCmd)
	fileDownloadCmd.Flags().StringP("output", "o", ".", "destination directory")
}
