package gui

import (
	"fmt"

	"shareview/internal/viewer"
	"shareview/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// textTheme overrides only the text size, leaving colors, fonts and
// icons to the application theme. Each text window owns one, so font
// changes stay local to that window.
type textTheme struct {
	fyne.Theme
	textSize float32
}

func (t *textTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.textSize
	}
	return t.Theme.Size(name)
}

// textWindow shows one text file with font size, wrap and search
// controls.
type textWindow struct {
	win     fyne.Window
	content string
	view    viewer.TextView

	text       *widget.RichText
	override   *container.ThemeOverride
	th         *textTheme
	matchLabel *widget.Label
	term       string
}

// openTextViewer loads entry and opens it wrapped at the default size.
func (a *App) openTextViewer(entry types.Entry) {
	content, err := viewer.LoadText(entry.Path)
	if err != nil {
		a.ShowError("Could not open text file", err)
		return
	}

	w := &textWindow{
		win:     a.fyneApp.NewWindow(entry.Name),
		content: content,
		view:    viewer.NewTextView(),
	}
	w.build()
	w.win.Resize(fyne.NewSize(800, 700))
	w.win.Show()
	a.noteActivation(entry)
}

func (w *textWindow) build() {
	w.th = &textTheme{Theme: theme.DefaultTheme(), textSize: float32(w.view.FontSize())}

	w.text = widget.NewRichText(w.segments()...)
	w.text.Wrapping = fyne.TextWrapWord
	w.override = container.NewThemeOverride(container.NewScroll(w.text), w.th)

	search := widget.NewEntry()
	search.SetPlaceHolder("Search...")
	search.OnSubmitted = func(term string) {
		w.term = term
		w.refreshText()
	}
	w.matchLabel = widget.NewLabel("")

	wrapCheck := widget.NewCheck("Wrap", func(bool) {
		w.apply(w.view.ToggleWrap())
	})
	wrapCheck.SetChecked(true)

	controls := container.NewHBox(
		widget.NewButton("A-", func() {
			w.apply(w.view.DecreaseFont())
		}),
		widget.NewButton("A+", func() {
			w.apply(w.view.IncreaseFont())
		}),
		wrapCheck,
		layout.NewSpacer(),
		search,
		w.matchLabel,
	)

	w.win.SetContent(container.NewBorder(controls, nil, nil, nil, w.override))

	w.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.win.Close()
		}
	})
}

func (w *textWindow) apply(next viewer.TextView) {
	if next == w.view {
		return
	}
	w.view = next

	w.th.textSize = float32(w.view.FontSize())
	if w.view.Wrap() {
		w.text.Wrapping = fyne.TextWrapWord
	} else {
		w.text.Wrapping = fyne.TextWrapOff
	}
	w.override.Refresh()
}

// refreshText rebuilds the segments so search matches stand out.
func (w *textWindow) refreshText() {
	w.text.Segments = w.segments()
	w.text.Refresh()
}

// segments splits the content at search matches, highlighting each match
// in the primary color.
func (w *textWindow) segments() []widget.RichTextSegment {
	plain := widget.RichTextStyle{Inline: true}
	match := widget.RichTextStyle{
		Inline:    true,
		TextStyle: fyne.TextStyle{Bold: true},
		ColorName: theme.ColorNamePrimary,
	}

	offsets := viewer.SearchText(w.content, w.term)
	if w.matchLabel != nil {
		if w.term == "" {
			w.matchLabel.SetText("")
		} else {
			w.matchLabel.SetText(fmt.Sprintf("%d matches", len(offsets)))
		}
	}

	if len(offsets) == 0 {
		return []widget.RichTextSegment{&widget.TextSegment{Text: w.content, Style: plain}}
	}

	var segs []widget.RichTextSegment
	pos := 0
	for _, off := range offsets {
		if off > pos {
			segs = append(segs, &widget.TextSegment{Text: w.content[pos:off], Style: plain})
		}
		end := off + len(w.term)
		segs = append(segs, &widget.TextSegment{Text: w.content[off:end], Style: match})
		pos = end
	}
	if pos < len(w.content) {
		segs = append(segs, &widget.TextSegment{Text: w.content[pos:], Style: plain})
	}
	return segs
}
