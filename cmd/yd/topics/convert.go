package topics

import (
	"github.com/OnitiFR/yd/common"
	"github.com/spf13/cobra"
)

// convertCmd represents the "convert" command
var convertCmd = &cobra.Command{
	Use:   "convert <url>",
	Short: "Convert a video, then list stored files",
	Long: `Ask the server to convert a YouTube video. Once done, the file
is kept by the server for a limited time, see "file list".
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := newTermView()
		c := newFileListClient(view, nil)

		if cmd.Flags().Lookup("format").Changed {
			formatStr, _ := cmd.Flags().GetString("format")
			format, err := common.ParseFormat(formatStr)
			if err != nil {
				return err
			}
			c.SelectFormat(format)
		} else {
			c.SelectFormat(c.State().Format())
		}

		_, err := c.SubmitConversion(cmd.Context(), args[0])
		return shown(err)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("format", "f", string(common.DefaultFormat), "output format ("+common.FormatNames()+")")
}
