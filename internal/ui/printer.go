// Package ui prints the short, glyph-prefixed messages shown to the operator.
package ui

import (
	"fmt"
	"io"
)

const (
	GlyphSuccess = "✅"
	GlyphFail    = "❌"
	GlyphWarn    = "⚠️"
	GlyphInfo    = "💡"
	GlyphList    = "📋"
	GlyphFile    = "📁"
	GlyphNext    = "👉"
	GlyphSearch  = "🔍"
)

type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Writer() io.Writer {
	return p.w
}

// Step prints msg prefixed by glyph.
func (p *Printer) Step(glyph, format string, args ...interface{}) {
	fmt.Fprintf(p.w, glyph+" "+format+"\n", args...)
}

func (p *Printer) Success(format string, args ...interface{}) { p.Step(GlyphSuccess, format, args...) }
func (p *Printer) Fail(format string, args ...interface{})    { p.Step(GlyphFail, format, args...) }
func (p *Printer) Warn(format string, args ...interface{})    { p.Step(GlyphWarn, format, args...) }
func (p *Printer) Info(format string, args ...interface{})    { p.Step(GlyphInfo, format, args...) }
func (p *Printer) List(format string, args ...interface{})    { p.Step(GlyphList, format, args...) }
func (p *Printer) File(format string, args ...interface{})    { p.Step(GlyphFile, format, args...) }

// Item prints an indented detail line.
func (p *Printer) Item(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "   "+format+"\n", args...)
}

// Numbered prints options as a 1-based menu.
func (p *Printer) Numbered(options []string) {
	for i, o := range options {
		fmt.Fprintf(p.w, "   %d. %s\n", i+1, o)
	}
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}
