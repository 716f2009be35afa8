/*
 *  MIT License
 *
 *  Copyright (c) 2022 Nicolas JUHEL
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
 *
 */

// Package size provides a byte-count type with binary-unit constants and
// parsing/formatting helpers, used by the part-size setting and the pattern
// buffer's size reporting.
package size

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a byte count. It is a uint64 under the hood so arithmetic is cheap
// and it can be compared and used as a map key.
type Size uint64

const (
	SizeNul  Size = 0
	SizeUnit Size = 1
	SizeKilo      = SizeUnit << 10
	SizeMega      = SizeKilo << 10
	SizeGiga      = SizeMega << 10
	SizeTera      = SizeGiga << 10
	SizePeta      = SizeTera << 10
	SizeExa       = SizePeta << 10

	// aliases used by components that prefer the explicit "binary" spelling.
	SizeKiB = SizeKilo
	SizeMiB = SizeMega
	SizeGiB = SizeGiga
	SizeTiB = SizeTera
)

const (
	FormatRound0 = "%.0f"
	FormatRound1 = "%.1f"
	FormatRound2 = "%.2f"
	FormatRound3 = "%.3f"
)

var defaultUnit byte = 'B'

// SetDefaultUnit changes the trailing unit letter used by Code and String.
// A zero value resets it to 'B'.
func SetDefaultUnit(u byte) {
	if u == 0 {
		u = 'B'
	}
	defaultUnit = u
}

func (s Size) Int64() int64 {
	return int64(s)
}

func (s Size) Uint64() uint64 {
	return uint64(s)
}

func (s Size) Float64() float64 {
	return float64(s)
}

func SizeFromInt64(i int64) Size {
	if i < 0 {
		return 0
	}
	return Size(i)
}

// Mul scales the receiver in place by a numeric factor (int, int64 or float64).
func (s *Size) Mul(factor any) {
	f := toFloat(factor)
	*s = Size(s.Float64() * f)
}

// MulErr behaves like Mul but rejects negative factors.
func (s *Size) MulErr(factor any) error {
	f := toFloat(factor)
	if f < 0 {
		return fmt.Errorf("size: negative multiplier %v", factor)
	}
	s.Mul(factor)
	return nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

// Format renders the size in the largest binary unit that keeps the value
// at or above 1, using the given printf precision verb (see FormatRoundN).
func (s Size) Format(round string) string {
	v, unit := s.split()
	return fmt.Sprintf(round+"%s", v, unit)
}

func (s Size) split() (float64, string) {
	v := s.Float64()
	units := []struct {
		size Size
		code string
	}{
		{SizeExa, "E"}, {SizePeta, "P"}, {SizeTera, "T"},
		{SizeGiga, "G"}, {SizeMega, "M"}, {SizeKilo, "K"},
	}
	for _, u := range units {
		if s >= u.size {
			return v / u.size.Float64(), u.code + string(defaultUnit)
		}
	}
	return v, string(defaultUnit)
}

// Code returns the unit suffix (e.g. "KB", "MB") for the size rounded to
// the given precision; precision is currently unused beyond unit selection.
func (s Size) Code(_ int) string {
	_, unit := s.split()
	return unit
}

func (s Size) String() string {
	return s.Format(FormatRound2)
}

var multipliers = map[string]Size{
	"":    SizeUnit,
	"B":   SizeUnit,
	"K":   SizeKilo,
	"KB":  SizeKilo,
	"KIB": SizeKilo,
	"M":   SizeMega,
	"MB":  SizeMega,
	"MIB": SizeMega,
	"G":   SizeGiga,
	"GB":  SizeGiga,
	"GIB": SizeGiga,
	"T":   SizeTera,
	"TB":  SizeTera,
	"TIB": SizeTera,
	"P":   SizePeta,
	"PB":  SizePeta,
	"E":   SizeExa,
	"EB":  SizeExa,
}

// Parse reads a human size like "5MB", "1.5G" or a bare integer byte count.
func Parse(raw string) (Size, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("size: empty value")
	}

	i := 0
	for i < len(raw) && (raw[i] == '.' || (raw[i] >= '0' && raw[i] <= '9')) {
		i++
	}

	numPart := raw[:i]
	unitPart := strings.ToUpper(strings.TrimSpace(raw[i:]))

	if numPart == "" {
		return 0, fmt.Errorf("size: no numeric value in %q", raw)
	}

	f, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("size: invalid numeric value %q: %w", numPart, err)
	}

	mul, ok := multipliers[unitPart]
	if !ok {
		return 0, fmt.Errorf("size: unknown unit %q", unitPart)
	}

	return Size(f * mul.Float64()), nil
}
