// Package listing turns directories into the grouped, classified entry
// lists the browser displays.
package listing

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"shareview/internal/config"
	"shareview/pkg/types"
)

// Classifier maps entry names to a Kind using configured ignore patterns
// and extension sets. Classification is a pure function of the name;
// directories are recognized by the lister with a filesystem check.
type Classifier struct {
	ignore   []glob.Glob
	video    map[string]bool
	document map[string]bool
	image    map[string]bool
}

// NewClassifier compiles the configured patterns into a Classifier.
func NewClassifier(cfg *config.Config) (*Classifier, error) {
	c := &Classifier{
		video:    extSet(cfg.Extensions.Video),
		document: extSet(cfg.Extensions.Document),
		image:    extSet(cfg.Extensions.Image),
	}
	for _, pattern := range cfg.Browser.IgnorePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}
		c.ignore = append(c.ignore, g)
	}
	return c, nil
}

func extSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}
	return set
}

// IsIgnored reports whether the name matches an ignore pattern.
// It applies to folders as well as files.
func (c *Classifier) IsIgnored(name string) bool {
	for _, g := range c.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Classify returns the Kind for a file name. Ignore patterns win over
// extensions; extension matching is case-insensitive.
func (c *Classifier) Classify(name string) types.Kind {
	if c.IsIgnored(name) {
		return types.Ignored
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch {
	case c.video[ext]:
		return types.Video
	case c.document[ext]:
		return types.Document
	case c.image[ext]:
		return types.Image
	}
	return types.Ignored
}

// Ext returns the upper-cased extension without the dot, for the type column.
func Ext(name string) string {
	return strings.ToUpper(strings.TrimPrefix(filepath.Ext(name), "."))
}
