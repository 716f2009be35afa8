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

// Package duration extends time.Duration with day-aware parsing and
// formatting: run lengths in this engine are configured in whole seconds but
// echoed back in "1d2h3m4s" form in reports.
package duration

import (
	"fmt"
	"strings"
	"time"
)

// Day is the fixed 24h day used by parsing and formatting.
const Day = 24 * time.Hour

// Duration is a time.Duration with day-aware helpers.
type Duration time.Duration

// Seconds returns a Duration of i whole seconds.
func Seconds(i int64) Duration {
	return Duration(time.Duration(i) * time.Second)
}

// Minutes returns a Duration of i whole minutes.
func Minutes(i int64) Duration {
	return Duration(time.Duration(i) * time.Minute)
}

// Hours returns a Duration of i whole hours.
func Hours(i int64) Duration {
	return Duration(time.Duration(i) * time.Hour)
}

// Days returns a Duration of i whole days.
func Days(i int64) Duration {
	return Duration(time.Duration(i) * Day)
}

// ParseDuration converts a time.Duration.
func ParseDuration(d time.Duration) Duration {
	return Duration(d)
}

// Parse reads a duration string, accepting an optional leading "<n>d" day
// component before anything time.ParseDuration understands ("2d12h", "90s").
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("duration: empty value")
	}

	var days int64
	if i := strings.IndexByte(s, 'd'); i > 0 && isDigits(s[:i]) {
		if _, err := fmt.Sscanf(s[:i], "%d", &days); err != nil {
			return 0, fmt.Errorf("duration: invalid day count %q: %w", s[:i], err)
		}
		s = s[i+1:]
	}

	if s == "" {
		return Days(days), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("duration: %w", err)
	}
	return Days(days) + Duration(d), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Time converts back to a time.Duration.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

// Days returns the whole-day component.
func (d Duration) Days() int64 {
	return int64(d.Time() / Day)
}

// String renders with a day component when one is present, "2d12h0m0s"
// style, otherwise exactly like time.Duration.
func (d Duration) String() string {
	if days := d.Days(); days != 0 {
		rest := d.Time() - time.Duration(days)*Day
		return fmt.Sprintf("%dd%s", days, rest.String())
	}
	return d.Time().String()
}
