package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"fieldassets/internal/app/client"
	"fieldassets/internal/app/client/config"
	"fieldassets/internal/app/client/listsync"
	"fieldassets/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "fieldassets",
	Short: "Fieldassets - tracking for field equipment, batteries and schedules",
	Long: `Fieldassets is a client for the asset tracking service.

It manages measurement equipment, battery packs and their maintenance
and rental schedules. Tables are kept in sync with the server: every
change refetches the full collection so the local view never drifts.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "local"
	}

	log = logger.New(cfg.Env)

	app = client.New(cfg, log)

	notify := func(resource string) func(listsync.Event) {
		return func(ev listsync.Event) {
			if ev.Err != nil {
				log.Warn("operation failed", "resource", resource, "op", string(ev.Op), "error", ev.Err)
				return
			}
			log.Debug("collection settled", "resource", resource, "op", string(ev.Op))
		}
	}
	app.Assets.Subscribe(notify("asset"))
	app.Batteries.Subscribe(notify("battery"))
	app.Schedules.Subscribe(notify("schedule"))

	cmd.SetContext(client.NewContext(cmd.Context(), app))

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".fieldassets")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file, defaults apply.
	}

	return config.MustLoad(), nil
}

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address (host:port)")
}
