// Package cli implements the rjagro command line client: farm dashboard
// tables fetched from the backend, sorted and filtered in the terminal.
package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/birkirb/loggers.v1/log"
)

const (
	envPrefix      = "RJAGRO"
	configName     = ".rjagro"
	defaultAPIURL  = "http://127.0.0.1:8000"
	defaultLocale  = "en"
	defaultTimeout = 30 * time.Second
)

// Settings is the runtime configuration of the client.
type Settings struct {
	APIURL   string
	Token    string
	Assets   string
	Locale   string
	CacheTTL time.Duration

	// HTTPClient replaces the default client, e.g. in tests.
	HTTPClient *http.Client
}

// RootCommand creates the command tree. Flags, RJAGRO_ prefixed environment
// variables and $HOME/.rjagro.yaml are merged into settings before any sub
// command runs, flags taking precedence.
func RootCommand(settings *Settings) *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "rjagro",
		Short:         "Farm dashboard tables on the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", `config file (default "$HOME/.rjagro.yaml")`)
	flags.String("api-url", defaultAPIURL, "base url of the farm backend")
	flags.String("token", "", "authorization token sent to the backend")
	flags.String("assets", "", "asset folder with schemas, enums and translations (default next to the binary)")
	flags.String("locale", defaultLocale, "language of titles and enum labels")
	flags.Duration("cache-ttl", 5*time.Minute, "how long fetched lists are reused")

	rootCmd.AddCommand(
		listCommand(settings),
		schemasCommand(settings),
		closureCommand(settings),
		commissionCommand(settings),
		approveCommand(settings),
		declineCommand(settings),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return fmt.Errorf("error binding flags: %w", err)
		}

		if err := readConfig(v, configFile); err != nil {
			return err
		}

		settings.APIURL = v.GetString("api-url")
		settings.Token = v.GetString("token")
		settings.Assets = v.GetString("assets")
		settings.Locale = strings.ToLower(v.GetString("locale"))
		settings.CacheTTL = v.GetDuration("cache-ttl")

		return nil
	}

	return rootCmd
}

func readConfig(v *viper.Viper, configFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.WithField("error", err).Debug("No home directory, skipping config file")
			return nil
		}

		v.AddConfigPath(home)
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("cannot read config file: %w", err)
	}

	log.WithField("file", v.ConfigFileUsed()).Debug("Using config file")

	return nil
}
