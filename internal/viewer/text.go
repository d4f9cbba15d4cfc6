package viewer

import (
	"os"
	"strings"
	"unicode/utf8"

	"shareview/internal/errors"
)

// Text viewer font bounds and default, in points.
const (
	TextFontMin     = 8
	TextFontMax     = 24
	TextFontDefault = 11
)

// TextView is the presentation state of one open text file.
type TextView struct {
	fontSize int
	wrap     bool
}

// NewTextView creates the default text presentation: 11pt, wrapped.
func NewTextView() TextView {
	return TextView{fontSize: TextFontDefault, wrap: true}
}

// FontSize returns the current font size in points.
func (v TextView) FontSize() int {
	return v.fontSize
}

// Wrap reports whether long lines wrap.
func (v TextView) Wrap() bool {
	return v.wrap
}

// IncreaseFont bumps the font one point, saturating at TextFontMax.
func (v TextView) IncreaseFont() TextView {
	if v.fontSize < TextFontMax {
		v.fontSize++
	}
	return v
}

// DecreaseFont shrinks the font one point, saturating at TextFontMin.
func (v TextView) DecreaseFont() TextView {
	if v.fontSize > TextFontMin {
		v.fontSize--
	}
	return v
}

// ToggleWrap flips line wrapping.
func (v TextView) ToggleWrap() TextView {
	v.wrap = !v.wrap
	return v
}

// LoadText reads a file as UTF-8, falling back to Latin-1 for legacy
// files so nothing renders as replacement characters.
func LoadText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return "", errors.NewPathError("text file not found", path, errors.NotFound, err)
		case os.IsPermission(err):
			return "", errors.NewPathError("permission denied", path, errors.AccessDenied, err)
		default:
			return "", errors.NewPathError("error reading text file", path, errors.RenderFailed, err)
		}
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	return decodeLatin1(raw), nil
}

// decodeLatin1 maps each byte to the Unicode code point of the same
// value, which is exactly ISO 8859-1.
func decodeLatin1(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String()
}

// SearchText returns the byte offsets of every case-insensitive match of
// term in content. An empty term matches nothing.
func SearchText(content, term string) []int {
	if term == "" {
		return nil
	}
	lowered := strings.ToLower(content)
	needle := strings.ToLower(term)

	var offsets []int
	for start := 0; ; {
		i := strings.Index(lowered[start:], needle)
		if i < 0 {
			break
		}
		offsets = append(offsets, start+i)
		start += i + len(needle)
	}
	return offsets
}
