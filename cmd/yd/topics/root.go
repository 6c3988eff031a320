package topics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/OnitiFR/yd/common"
	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yd",
	Short: "yd CLI client",
	Long: `yd converts YouTube videos to mp3/mp4 files using a conversion server

Sample usage:
- yd convert https://youtu.be/dQw4w9WgXcQ -f mp4
- yd file list
- yd file download <file>
- yd watch
	`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", cmd.Short)
		fmt.Printf("%s\n", cmd.Long)
		fmt.Printf("Use --help to list commands and options.\n\n")
		configFile := client.GlobalConfig.ConfigFile
		if configFile == "" {
			configFile = "(none)"
		}
		fmt.Printf("configuration file '%s', server '%s'\n",
			configFile,
			client.GlobalConfig.URL,
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	var err error
	client.GlobalHome, err = homedir.Dir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = rootCmd.ExecuteContext(ctx)
	var shown *shownError
	if err != nil && !errors.As(err, &shown) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&client.GlobalCfgFile, "config", "c", "", "config file (default is $HOME/.yd.toml)")

	rootCmd.PersistentFlags().StringP("url", "u", "", "conversion server URL")
	rootCmd.PersistentFlags().BoolP("trace", "t", false, "show debug messages (requests, silent failures)")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "show client version")

	rootCmd.PersistentFlags().BoolP("get-config-filename", "", false, "get current config filename (useful for completion)")
	rootCmd.PersistentFlags().MarkHidden("get-config-filename")
}

func setCompletion() {
	rootCmd.BashCompletionFunction = bashCompletionFunc
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	cfgFile := client.GlobalCfgFile
	if cfgFile == "" {
		cfgFile = path.Clean(client.GlobalHome + "/.yd.toml")
	}

	// a .env file only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error: .env: %s", err)
	}

	var err error
	client.GlobalConfig, err = NewRootConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error: %s", err)
	}

	client.InitLogger(client.GlobalConfig.Trace)
	client.Log.Debugf("config: file='%s' url='%s' format=%s refresh=%s",
		client.GlobalConfig.ConfigFile,
		client.GlobalConfig.URL,
		client.GlobalConfig.Format,
		client.GlobalConfig.Refresh,
	)

	client.GlobalAPI = client.NewAPI(client.GlobalConfig.URL)

	setCompletion()

	if rootCmd.PersistentFlags().Lookup("get-config-filename").Changed {
		fmt.Println(cfgFile)
		os.Exit(0)
	}

	if rootCmd.PersistentFlags().Lookup("version").Changed {
		fmt.Println(common.ClientVersion)
		os.Exit(0)
	}
}
