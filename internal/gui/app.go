// Package gui is the Fyne desktop front-end: a browser window over the
// mounted share plus embedded viewer windows for documents, images and
// text files.
package gui

import (
	"context"
	"time"

	"shareview/internal/config"
	"shareview/internal/errors"
	"shareview/internal/launch"
	"shareview/internal/listing"
	"shareview/internal/log"
	"shareview/internal/nav"
	"shareview/internal/share"
	"shareview/internal/watch"
	"shareview/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// The window opens first and connects shortly after, so the user sees
// the app immediately instead of a blocked launch.
const connectDelay = 100 * time.Millisecond

// App is the GUI application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	connector *share.Connector
	lister    *listing.Lister
	launcher  *launch.Launcher
	watcher   *watch.Watcher
	navState  *nav.State

	// Browser widgets updated on navigation
	pathLabel   *widget.Label
	statusLabel *widget.Label
	entryList   *widget.List

	// Listing currently on screen; nil before the first connect
	listing *types.Listing
}

// NewApp creates the GUI application around an unmounted share.
func NewApp(cfg *config.Config, lister *listing.Lister) *App {
	fyneApp := app.NewWithID("io.github.shareview")

	a := &App{
		fyneApp:   fyneApp,
		cfg:       cfg,
		connector: share.NewConnector(cfg),
		lister:    lister,
		launcher:  launch.New(launch.DefaultCandidates(cfg)),
	}

	watcher, err := watch.New()
	if err != nil {
		// Browsing works without auto-refresh
		log.Warnf("Could not create directory watcher: %v", err)
	}
	a.watcher = watcher

	a.mainWindow = fyneApp.NewWindow("Share Viewer")
	a.setupMainWindow()

	return a
}

// GetMainWindow returns the main window instance.
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the browser and starts the event loop. The share connection
// is attempted shortly after the window appears.
func (a *App) Run() {
	a.mainWindow.Show()

	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			log.Warnf("Could not start directory watcher: %v", err)
		} else {
			go a.consumeRefreshes()
		}
	}

	time.AfterFunc(connectDelay, a.connectShare)

	a.fyneApp.Run()
}

// connectShare mounts the share and enters its root, prompting to retry
// on failure. Cancelling the prompt quits the application, matching the
// app's single purpose.
func (a *App) connectShare() {
	go func() {
		err := a.ensureConnected(context.Background())
		if err == nil {
			a.enterRoot()
			return
		}

		log.LogWithFields(log.F("uri", a.connector.URI()), log.F("error", err)).Error("Share connection failed")
		dialog.ShowCustomConfirm("Connection Failed", "Retry", "Cancel",
			widget.NewLabel(connectFailureText(err, a.connector.URI())),
			func(retry bool) {
				if retry {
					a.connectShare()
					return
				}
				a.fyneApp.Quit()
			},
			a.mainWindow)
	}()
}

// ensureConnected mounts the share if its GVFS path is not yet readable.
func (a *App) ensureConnected(ctx context.Context) error {
	if a.connector.Mounted() {
		return nil
	}
	if err := a.connector.Connect(ctx); err != nil {
		return err
	}
	if !a.connector.Mounted() {
		return errors.Newf(errors.NotFound, "share %s did not appear after mounting", a.connector.URI())
	}
	return nil
}

// enterRoot points navigation at the mount root and lists it. After a
// reconnect the mount point can move, so existing state is re-anchored.
func (a *App) enterRoot() {
	root := a.connector.MountPath()
	if a.navState == nil {
		a.navState = nav.New(root)
	} else {
		a.navState.Rebase(root)
	}
	a.showDirectory(a.navState.Current())
}

// connectFailureText picks the advice line for a failed mount.
func connectFailureText(err error, uri string) string {
	switch {
	case errors.IsMountHelperMissing(err):
		return "Could not connect to " + uri + ":\nthe gio mount helper is not installed."
	case errors.IsMountTimeout(err):
		return "Connecting to " + uri + " timed out.\nIs the server reachable?"
	default:
		return "Could not connect to " + uri + "."
	}
}

// consumeRefreshes re-lists the directory on screen when the watcher
// reports it changed.
func (a *App) consumeRefreshes() {
	for dir := range a.watcher.RefreshChannel() {
		if a.navState == nil || dir != a.navState.Current() {
			continue
		}
		a.showDirectory(dir)
	}
}

// ShowError displays an error dialog.
func (a *App) ShowError(title string, err error) {
	if err == nil {
		return
	}
	log.LogWithFields(log.F("title", title), log.F("error", err)).Error("Showing error dialog")
	dialog.ShowError(err, a.mainWindow)
}

// ShowInfo displays an information dialog.
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("Information", message, a.mainWindow)
}
