package svgtree

import (
	"golang.org/x/text/language"
)

// Options configures a Document.
type Options struct {
	ErrorMode ErrorMode

	// Units converts lengths to device values.
	// If nil, DefaultUnits{DPI: 96} is used.
	Units UnitConverter

	// Viewport dimensions, used to resolve percentages.
	ViewportWidth, ViewportHeight float64

	// Languages are the user languages, by order of preference,
	// matched against the "systemLanguage" attribute by Switch.
	Languages []language.Tag
}

// DefaultOptions applies to nodes outside of a Document.
var DefaultOptions = Options{
	ErrorMode:      WarnErrorMode,
	ViewportWidth:  100,
	ViewportHeight: 100,
	Languages:      []language.Tag{language.English},
}

func (opts Options) units() UnitConverter {
	if opts.Units == nil {
		return DefaultUnits{DPI: defaultDPI}
	}
	return opts.Units
}

// documentOf returns the Document n belongs to, or nil.
func documentOf(n Node) *Document {
	return rootOf(n).Base().doc
}

func optionsOf(n Node) Options {
	if n == nil {
		return DefaultOptions
	}
	if doc := documentOf(n); doc != nil {
		return doc.Options
	}
	return DefaultOptions
}
