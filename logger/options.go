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

package logger

import (
	libprm "github.com/nabbar/s3loadgen/file/perm"
)

// Options selects the logger's outputs. A nil Stdout disables terminal
// output entirely; each OptionsFile adds one file sink.
type Options struct {
	// Stdout configures the terminal sink.
	Stdout *OptionsStd

	// LogFile configures zero or more file sinks.
	LogFile []OptionsFile
}

// OptionsStd configures the terminal sink.
type OptionsStd struct {
	// DisableColor strips ANSI colors from terminal output.
	DisableColor bool

	// DisableTimestamp drops the timestamp column, useful when an outer
	// supervisor already stamps lines.
	DisableTimestamp bool
}

// OptionsFile configures one file sink.
type OptionsFile struct {
	// LogLevel restricts this file to the named levels ("critical", "error",
	// "warning", ...). Empty means every level.
	LogLevel []string

	// Filepath is the destination file, opened in append mode.
	Filepath string

	// Create allows creating the file when missing.
	Create bool

	// CreatePath allows creating missing parent directories.
	CreatePath bool

	// FileMode is the creation mode for the file, 0644 when unset.
	FileMode libprm.Perm

	// PathMode is the creation mode for parent directories, 0755 when unset.
	PathMode libprm.Perm
}

// Clone returns a deep copy, so a caller can derive a new option set from
// GetOptions without mutating the live one.
func (o *Options) Clone() *Options {
	if o == nil {
		return &Options{}
	}

	c := &Options{}
	if o.Stdout != nil {
		s := *o.Stdout
		c.Stdout = &s
	}
	if len(o.LogFile) > 0 {
		c.LogFile = make([]OptionsFile, len(o.LogFile))
		copy(c.LogFile, o.LogFile)
		for i := range c.LogFile {
			c.LogFile[i].LogLevel = append([]string(nil), o.LogFile[i].LogLevel...)
		}
	}
	return c
}
