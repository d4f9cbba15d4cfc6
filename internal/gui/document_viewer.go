package gui

import (
	"fmt"

	"shareview/internal/log"
	"shareview/internal/viewer"
	"shareview/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// documentWindow shows one paginated document. All controls funnel
// through apply, which re-renders only when the state actually moved.
type documentWindow struct {
	win  fyne.Window
	src  viewer.PageSource
	view viewer.DocumentView

	img       *canvas.Image
	scroll    *container.Scroll
	pageEntry *widget.Entry
	pageTotal *widget.Label
	zoomLabel *widget.Label
}

// openDocumentViewer opens entry in a document window. Files the
// renderer cannot parse never get a window, just an error dialog.
func (a *App) openDocumentViewer(entry types.Entry) {
	src, err := viewer.OpenPDF(entry.Path)
	if err != nil {
		a.ShowError("Could not open document", err)
		return
	}

	d := &documentWindow{
		win:  a.fyneApp.NewWindow(entry.Name),
		src:  src,
		view: viewer.NewDocumentView(src.PageCount()),
	}
	d.build()
	d.win.SetOnClosed(func() {
		if err := d.src.Close(); err != nil {
			log.Debugf("closing document source: %v", err)
		}
	})
	d.win.Resize(fyne.NewSize(850, 800))
	d.win.Show()
	d.render()
	a.noteActivation(entry)
}

func (d *documentWindow) build() {
	d.img = canvas.NewImageFromImage(nil)
	d.img.FillMode = canvas.ImageFillOriginal
	d.scroll = container.NewScroll(d.img)

	d.pageEntry = widget.NewEntry()
	d.pageEntry.OnSubmitted = func(input string) {
		d.apply(d.view.GoToPage(input))
	}
	d.pageTotal = widget.NewLabel(fmt.Sprintf("/ %d", d.view.TotalPages()))
	d.zoomLabel = widget.NewLabel("")

	controls := container.NewHBox(
		widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() {
			d.apply(d.view.PrevPage())
		}),
		widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() {
			d.apply(d.view.NextPage())
		}),
		d.pageEntry,
		d.pageTotal,
		layout.NewSpacer(),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
			d.apply(d.view.ZoomOut())
		}),
		d.zoomLabel,
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
			d.apply(d.view.ZoomIn())
		}),
		widget.NewButtonWithIcon("", theme.ZoomFitIcon(), func() {
			d.apply(d.view.ZoomReset())
		}),
	)

	d.win.SetContent(container.NewBorder(controls, nil, nil, nil, d.scroll))

	d.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft, fyne.KeyPageUp:
			d.apply(d.view.PrevPage())
		case fyne.KeyRight, fyne.KeyPageDown, fyne.KeySpace:
			d.apply(d.view.NextPage())
		case fyne.KeyEscape:
			d.win.Close()
		}
	})
	d.win.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case '+':
			d.apply(d.view.ZoomIn())
		case '-':
			d.apply(d.view.ZoomOut())
		case '0':
			d.apply(d.view.ZoomReset())
		}
	})
}

// apply swaps in the next view state and re-renders if it changed.
func (d *documentWindow) apply(next viewer.DocumentView) {
	if next == d.view {
		// Rejected or saturated transition; fix up stale entry text
		d.syncControls()
		return
	}
	d.view = next
	d.render()
}

func (d *documentWindow) render() {
	img, err := d.src.RenderPage(d.view.Page(), d.view.Zoom())
	if err != nil {
		log.LogWithFields(log.F("page", d.view.Page()), log.F("error", err)).Error("Page render failed")
		return
	}

	d.img.Image = img
	d.img.Refresh()
	d.scroll.ScrollToTop()
	d.syncControls()
}

func (d *documentWindow) syncControls() {
	d.pageEntry.SetText(fmt.Sprintf("%d", d.view.Page()))
	d.zoomLabel.SetText(fmt.Sprintf("%.0f%%", d.view.Zoom()*100))
}
