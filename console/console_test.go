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

package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/nabbar/s3loadgen/console"
)

func TestPrintfWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	console.SetOutput(&buf)
	defer console.SetOutput(nil)

	console.ColorPrint.Printf("tps=%.2f ok=%d\n", 12.5, 42)

	got := buf.String()
	if !strings.Contains(got, "tps=12.50") || !strings.Contains(got, "ok=42") {
		t.Fatalf("output = %q", got)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	var buf bytes.Buffer
	console.SetOutput(&buf)
	defer console.SetOutput(nil)

	console.ColorWarn.Println("careful")
	console.ColorError.Println("broken")

	got := buf.String()
	if !strings.Contains(got, "careful") || !strings.Contains(got, "broken") {
		t.Fatalf("output = %q", got)
	}
}

func TestSetColorReplacesAttributes(t *testing.T) {
	defer console.SetColor(console.ColorPrint)

	console.SetColor(console.ColorPrint, color.FgCyan)
	if got := console.ColorPrint.Sprintf("hello"); !strings.Contains(got, "hello") {
		t.Fatalf("Sprintf lost its text: %q", got)
	}
}
