package main

import (
	"fmt"
	"os"

	"shareview/internal/config"
	"shareview/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	configPath string
	serverAddr string
	shareName  string
	debug      bool
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "shareview",
		Short:   "A network share browser and media viewer",
		Long: `Shareview mounts an SMB share and browses it: videos play in an
external player, documents, images and text files open in embedded viewers.

Without a subcommand it picks the GUI when a display server is available
and falls back to the terminal browser otherwise.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if hasDisplay() {
				return runGUI(cfg)
			}
			log.Info("No display server found, using the terminal browser")
			return runTUI(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "server address, overriding the configuration")
	rootCmd.PersistentFlags().StringVar(&shareName, "share", "", "share name, overriding the configuration")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(tuiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration with flag overrides applied.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFile(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	if serverAddr != "" {
		cfg.Server.Address = serverAddr
	}
	if shareName != "" {
		cfg.Server.Share = shareName
	}
	if debug {
		cfg.Settings.Debug = true
	}
	log.SetDebug(cfg.Settings.Debug)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
