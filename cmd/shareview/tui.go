package main

import (
	"context"

	"shareview/internal/config"
	"shareview/internal/errors"
	"shareview/internal/listing"
	"shareview/internal/log"
	"shareview/internal/share"
	"shareview/internal/tui"

	"github.com/spf13/cobra"
)

// runTUI mounts the share up front, then hands the mount root to the
// terminal browser. Unlike the GUI there is no retry dialog; the error
// goes to the terminal and the exit code says it failed.
func runTUI(cfg *config.Config) error {
	connector := share.NewConnector(cfg)

	if !connector.Mounted() {
		log.Infof("Connecting to %s", connector.URI())
		if err := connector.Connect(context.Background()); err != nil {
			return err
		}
		if !connector.Mounted() {
			return errors.Newf(errors.NotFound, "share %s did not appear after mounting", connector.URI())
		}
	}

	classifier, err := listing.NewClassifier(cfg)
	if err != nil {
		return err
	}
	return tui.Run(cfg, listing.NewLister(classifier), connector.MountPath())
}

// tuiCmd forces the terminal browser even when a display is available.
func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the terminal browser",
		Long:  `Browse the share in the terminal; files open in external programs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}
}
