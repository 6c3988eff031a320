package topics

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/OnitiFR/yd/cmd/yd/client"
	"github.com/OnitiFR/yd/common"
	"github.com/spf13/pflag"
)

// DefaultURL is used when nothing else is configured
const DefaultURL = "http://localhost:8000"

type tomlRootConfig struct {
	URL     string
	Format  string
	Refresh string
	Trace   bool
}

// NewRootConfig reads configuration from filename and
// environment. A missing file is not an error.
// Priority : CLI flag, config file, environment, defaults
func NewRootConfig(filename string) (*client.RootConfig, error) {
	return newRootConfig(filename, rootCmd.PersistentFlags())
}

func newRootConfig(filename string, flags *pflag.FlagSet) (*client.RootConfig, error) {
	rootConfig := &client.RootConfig{}

	envTrace, _ := strconv.ParseBool(os.Getenv("TRACE"))

	tConfig := &tomlRootConfig{
		URL:     common.StringNotEmptyCoalesce(os.Getenv("YD_URL"), DefaultURL),
		Format:  common.StringNotEmptyCoalesce(os.Getenv("YD_FORMAT"), string(common.DefaultFormat)),
		Refresh: common.StringNotEmptyCoalesce(os.Getenv("YD_REFRESH"), client.DefaultRefreshInterval.String()),
		Trace:   envTrace,
	}

	if _, err := os.Stat(filename); err == nil {
		meta, err := toml.DecodeFile(filename, tConfig)

		if err != nil {
			return nil, err
		}

		undecoded := meta.Undecoded()
		for _, param := range undecoded {
			return nil, fmt.Errorf("unknown setting '%s'", param)
		}

		rootConfig.ConfigFile = filename
	}

	flagURL := flags.Lookup("url")
	flagTrace := flags.Lookup("trace")

	if flagURL != nil && flagURL.Changed {
		tConfig.URL = flagURL.Value.String()
	}
	if flagTrace != nil && flagTrace.Changed {
		trace, _ := strconv.ParseBool(flagTrace.Value.String())
		tConfig.Trace = trace
	}

	if tConfig.URL == "" {
		return nil, fmt.Errorf("%s: url can't be empty", filename)
	}

	format, err := common.ParseFormat(tConfig.Format)
	if err != nil {
		return nil, fmt.Errorf("setting 'format': %w", err)
	}

	refresh, err := time.ParseDuration(tConfig.Refresh)
	if err != nil {
		return nil, fmt.Errorf("setting 'refresh': %w", err)
	}
	if refresh <= 0 {
		return nil, fmt.Errorf("setting 'refresh': must be positive (got %s)", refresh)
	}

	rootConfig.URL = tConfig.URL
	rootConfig.Format = format
	rootConfig.Refresh = refresh
	rootConfig.Trace = tConfig.Trace

	return rootConfig, nil
}
