package main

import (
	"os"
	"runtime"

	"shareview/internal/config"
	"shareview/internal/gui"
	"shareview/internal/listing"

	"github.com/spf13/cobra"
)

// hasDisplay reports whether a display server is reachable. Anything
// that is not Linux manages its own windowing.
func hasDisplay() bool {
	if runtime.GOOS != "linux" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// runGUI opens the browser window; the share is mounted after it shows.
func runGUI(cfg *config.Config) error {
	classifier, err := listing.NewClassifier(cfg)
	if err != nil {
		return err
	}
	gui.NewApp(cfg, listing.NewLister(classifier)).Run()
	return nil
}

// guiCmd forces the graphical browser regardless of display detection.
func guiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical browser",
		Long:  `Launch the GUI browser with the embedded document, image and text viewers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runGUI(cfg)
		},
	}
}
