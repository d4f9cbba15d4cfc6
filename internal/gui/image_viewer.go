package gui

import (
	"fmt"
	"image"

	"shareview/internal/viewer"
	"shareview/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// imageWindow shows one image with zoom and rotation controls. The
// decoded source is kept; every state change re-renders from it.
type imageWindow struct {
	win  fyne.Window
	src  image.Image
	view viewer.ImageView

	img       *canvas.Image
	scroll    *container.Scroll
	zoomLabel *widget.Label
}

// openImageViewer decodes entry and opens it fitted to the window.
func (a *App) openImageViewer(entry types.Entry) {
	src, err := viewer.LoadImage(entry.Path)
	if err != nil {
		a.ShowError("Could not open image", err)
		return
	}

	w := &imageWindow{
		win:  a.fyneApp.NewWindow(entry.Name),
		src:  src,
		view: viewer.NewImageView(),
	}
	w.build()
	w.win.Resize(fyne.NewSize(900, 700))
	w.win.Show()
	w.fit()
	a.noteActivation(entry)
}

func (w *imageWindow) build() {
	w.img = canvas.NewImageFromImage(nil)
	w.img.FillMode = canvas.ImageFillOriginal
	w.scroll = container.NewScroll(w.img)
	w.zoomLabel = widget.NewLabel("")

	controls := container.NewHBox(
		widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), func() {
			w.apply(w.view.RotateLeft())
		}),
		widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() {
			w.apply(w.view.RotateRight())
		}),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
			w.apply(w.view.ZoomOut())
		}),
		w.zoomLabel,
		widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
			w.apply(w.view.ZoomIn())
		}),
		widget.NewButton("1:1", func() {
			w.apply(w.view.ZoomActual())
		}),
		widget.NewButtonWithIcon("", theme.ZoomFitIcon(), w.fit),
	)

	w.win.SetContent(container.NewBorder(controls, nil, nil, nil, w.scroll))

	w.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.win.Close()
		}
	})
	w.win.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case '+':
			w.apply(w.view.ZoomIn())
		case '-':
			w.apply(w.view.ZoomOut())
		case '1':
			w.apply(w.view.ZoomActual())
		case 'f':
			w.fit()
		case 'r':
			w.apply(w.view.RotateRight())
		case 'l':
			w.apply(w.view.RotateLeft())
		}
	})
}

// fit recomputes the zoom against the live viewport, so it tracks
// however the user resized the window.
func (w *imageWindow) fit() {
	size := w.scroll.Size()
	b := w.src.Bounds()
	w.apply(w.view.Fit(int(size.Width), int(size.Height), b.Dx(), b.Dy()))

	// A saturated transition still needs the first paint
	if w.img.Image == nil {
		w.render()
	}
}

func (w *imageWindow) apply(next viewer.ImageView) {
	if next == w.view {
		return
	}
	w.view = next
	w.render()
}

func (w *imageWindow) render() {
	w.img.Image = viewer.Render(w.src, w.view)
	w.img.Refresh()
	w.zoomLabel.SetText(fmt.Sprintf("%.0f%%", w.view.Zoom()*100))
}
