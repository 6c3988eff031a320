package topics

import (
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/OnitiFR/yd/common"
	"github.com/spf13/cobra"
)

// statusCmd represents the "status" command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get informations about server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var data common.APIHealth
		call := client.GlobalAPI.NewCall(http.MethodGet, "/health")
		call.JSONCallback = client.DecodeJSON(&data)
		if err := call.Do(cmd.Context()); err != nil {
			return err
		}
		statusDisplay(cmd.OutOrStdout(), data)
		return nil
	},
}

func statusDisplay(out io.Writer, data common.APIHealth) {
	fmt.Fprintf(out, "Server: %s\n", client.GlobalAPI.ServerURL)
	v := reflect.ValueOf(data)
	typeOfT := v.Type()
	for i := 0; i < v.NumField(); i++ {
		key := typeOfT.Field(i).Name
		format, _ := typeOfT.Field(i).Tag.Lookup("format")
		val := common.InterfaceValueToString(v.Field(i).Interface(), format)
		fmt.Fprintf(out, "%s: %s\n", key, val)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
