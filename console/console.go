/*
 *  MIT License
 *
 *  Copyright (c) 2025 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package console renders the engine's operator-facing terminal lines: the
// monitor's status line, warnings and fatal messages, each through a named
// color slot that degrades to plain text on non-ANSI terminals.
package console

import (
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// ColorType names one output slot; each slot carries its own color set.
type ColorType uint8

const (
	// ColorPrint is the default slot for status output.
	ColorPrint ColorType = iota
	// ColorWarn is for non-fatal warnings.
	ColorWarn
	// ColorError is for fatal or operator-actionable failures.
	ColorError
)

var (
	mu  sync.RWMutex
	out io.Writer = colorable.NewColorableStdout()

	colors = map[ColorType]*color.Color{
		ColorPrint: color.New(),
		ColorWarn:  color.New(color.FgYellow),
		ColorError: color.New(color.FgRed, color.Bold),
	}
)

// SetColor replaces the color attributes of one slot.
func SetColor(t ColorType, attrs ...color.Attribute) {
	mu.Lock()
	defer mu.Unlock()
	colors[t] = color.New(attrs...)
}

// SetOutput redirects every slot's writer, mainly for tests. A nil writer
// restores the colorable stdout default.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	out = w
}

func (c ColorType) col() *color.Color {
	mu.RLock()
	defer mu.RUnlock()
	if v, ok := colors[c]; ok {
		return v
	}
	return color.New()
}

func (c ColorType) writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// Printf writes a formatted line in the slot's color.
func (c ColorType) Printf(format string, args ...interface{}) {
	_, _ = c.col().Fprintf(c.writer(), format, args...)
}

// Print writes text in the slot's color.
func (c ColorType) Print(text string) {
	_, _ = c.col().Fprint(c.writer(), text)
}

// Println writes text plus a newline in the slot's color.
func (c ColorType) Println(text string) {
	_, _ = c.col().Fprintln(c.writer(), text)
}

// Sprintf renders a formatted string in the slot's color without writing it.
func (c ColorType) Sprintf(format string, args ...interface{}) string {
	return c.col().Sprintf(format, args...)
}
