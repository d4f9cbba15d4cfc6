package gui

import (
	"shareview/internal/errors"
	"shareview/internal/log"
	"shareview/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// setupMainWindow builds the browser: toolbar and path label on top, the
// entry list in the middle, classification counts at the bottom.
func (a *App) setupMainWindow() {
	a.pathLabel = widget.NewLabelWithStyle("Server", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.statusLabel = widget.NewLabel("Not connected")

	a.entryList = widget.NewList(
		func() int {
			if a.listing == nil {
				return 0
			}
			return len(a.listing.Entries)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.FolderIcon()),
				widget.NewLabel("Template entry name"),
				layout.NewSpacer(),
				widget.NewLabel("Type"),
				widget.NewLabel("Size"),
			)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if a.listing == nil || id < 0 || id >= len(a.listing.Entries) {
				return
			}

			entry := a.listing.Entries[id]
			row := obj.(*fyne.Container)
			icon := row.Objects[0].(*widget.Icon)
			name := row.Objects[1].(*widget.Label)
			kind := row.Objects[3].(*widget.Label)
			size := row.Objects[4].(*widget.Label)

			icon.SetResource(entryIcon(entry.Kind))
			name.SetText(entry.Name)
			kind.SetText(entry.TypeLabel())
			if entry.Kind == types.Folder {
				size.SetText("")
			} else {
				size.SetText(entry.Size)
			}
		},
	)

	// Single activation model: selecting a row opens it
	a.entryList.OnSelected = func(id widget.ListItemID) {
		a.entryList.Unselect(id)
		a.activateEntry(int(id))
	}

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.HomeIcon(), a.goHome),
		widget.NewToolbarAction(theme.NavigateBackIcon(), a.goUp),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), a.refresh),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.MediaReplayIcon(), func() {
			a.connectShare()
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.HelpIcon(), func() {
			dialog.ShowInformation("About Share Viewer",
				"Share Viewer browses a network share and plays or\n"+
					"displays its videos, documents and images.",
				a.mainWindow)
		}),
	)

	content := container.NewBorder(
		container.NewVBox(
			toolbar,
			a.pathLabel,
			canvas.NewLine(theme.ForegroundColor()),
		),
		container.NewHBox(a.statusLabel, layout.NewSpacer()),
		nil,
		nil,
		a.entryList,
	)

	a.mainWindow.Resize(fyne.NewSize(900, 700))
	a.mainWindow.SetContent(content)
}

// entryIcon maps a classification to its list icon.
func entryIcon(kind types.Kind) fyne.Resource {
	switch kind {
	case types.Folder:
		return theme.FolderIcon()
	case types.Video:
		return theme.FileVideoIcon()
	case types.Document:
		return theme.FileTextIcon()
	case types.Image:
		return theme.FileImageIcon()
	default:
		return theme.FileIcon()
	}
}

// showDirectory lists path and updates the browser widgets.
func (a *App) showDirectory(path string) {
	l, err := a.lister.List(path)
	if err != nil {
		a.listFailed(err)
		return
	}

	a.listing = l
	a.pathLabel.SetText(a.navState.DisplayPath())
	a.statusLabel.SetText(l.Summary())
	a.entryList.Refresh()

	if a.watcher != nil {
		if err := a.watcher.SetDirectory(path); err != nil {
			log.Debugf("could not watch %s: %v", path, err)
		}
	}
}

// listFailed routes a listing error: a vanished mount re-enters the
// connection flow, anything else shows a dialog and retreats to the root.
func (a *App) listFailed(err error) {
	log.LogWithFields(log.F("error", err)).Error("Directory listing failed")

	if errors.IsNotFound(err) && !a.connector.Mounted() {
		a.statusLabel.SetText("Connection lost")
		a.connectShare()
		return
	}

	a.ShowError("Could not read directory", err)
	if a.navState != nil && !a.navState.AtRoot() {
		a.navState.Home()
		a.showDirectory(a.navState.Current())
	}
}

// goHome jumps back to the share root.
func (a *App) goHome() {
	if a.navState == nil {
		return
	}
	a.showDirectory(a.navState.Home())
}

// goUp moves to the parent directory; a no-op at the root.
func (a *App) goUp() {
	if a.navState == nil || a.navState.AtRoot() {
		return
	}
	a.showDirectory(a.navState.Up())
}

// refresh re-lists the directory on screen.
func (a *App) refresh() {
	if a.navState == nil {
		return
	}
	a.showDirectory(a.navState.Current())
}

// activationStatus is the transient status-line message for opening an
// entry. The next navigation replaces it with the counts summary.
func activationStatus(entry types.Entry) string {
	switch entry.Kind {
	case types.Video:
		return "Playing: " + entry.Name
	case types.Document:
		if entry.Ext == "TXT" {
			return "Viewing TXT: " + entry.Name
		}
		return "Viewing PDF: " + entry.Name
	case types.Image:
		return "Viewing image: " + entry.Name
	default:
		return ""
	}
}

// noteActivation puts the transient activation message on the status line.
func (a *App) noteActivation(entry types.Entry) {
	if msg := activationStatus(entry); msg != "" {
		a.statusLabel.SetText(msg)
	}
}

// activateEntry opens the entry at index: folders navigate, videos go to
// an external player, documents and images open embedded viewers.
func (a *App) activateEntry(index int) {
	if a.listing == nil || index < 0 || index >= len(a.listing.Entries) {
		return
	}
	entry := a.listing.Entries[index]

	switch entry.Kind {
	case types.Folder:
		a.showDirectory(a.navState.Enter(entry.Name))

	case types.Video:
		go func() {
			if _, err := a.launcher.Open(entry.Path); err != nil {
				a.ShowError("Could not play video", err)
				return
			}
			a.noteActivation(entry)
		}()

	case types.Document:
		if entry.Ext == "TXT" {
			a.openTextViewer(entry)
			return
		}
		a.openDocumentViewer(entry)

	case types.Image:
		a.openImageViewer(entry)
	}
}
