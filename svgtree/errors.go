package svgtree

import (
	"errors"
	"log"
)

var (
	ErrOddPoints    = errors.New("odd number of coordinates in points")
	ErrInvalidPoint = errors.New("invalid point coordinate")
	ErrInvalidUnit  = errors.New("invalid length")
	ErrInvalidPaint = errors.New("invalid paint")
)

// ErrorMode controls how the errors recovered while building
// the geometry are reported. No error is fatal.
type ErrorMode uint8

const (
	// WarnErrorMode logs the errors.
	WarnErrorMode ErrorMode = iota
	// IgnoreErrorMode silently discards the errors.
	IgnoreErrorMode
	// StrictErrorMode logs the errors and keeps them
	// in the document, see Document.Errors.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case WarnErrorMode:
		return "warn"
	case IgnoreErrorMode:
		return "ignore"
	case StrictErrorMode:
		return "strict"
	}
	return "<invalid error mode>"
}

// report handles an error recovered while processing n.
func report(n Node, err error) {
	if err == nil {
		return
	}
	var doc *Document
	if n != nil {
		doc = documentOf(n)
	}
	mode := DefaultOptions.ErrorMode
	if doc != nil {
		mode = doc.Options.ErrorMode
	}
	switch mode {
	case IgnoreErrorMode:
		return
	case StrictErrorMode:
		if doc != nil {
			doc.errs = append(doc.errs, err)
		}
	}
	log.Printf("svgtree: %s: %s", tagOf(n), err)
}

func tagOf(n Node) string {
	if n == nil {
		return "<nil>"
	}
	if id := n.Base().ID(); id != "" {
		return n.TagName() + "#" + id
	}
	return n.TagName()
}
