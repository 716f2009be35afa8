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

// Package logger is the engine's structured logging front: a Logger carries
// a severity threshold and a set of sinks (terminal, files), each message
// pairs free text with structured data, and sinks are logrus hooks so a
// single emit fans out to every configured destination with per-sink level
// filtering.
package logger

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the logging front handed to every component. Message data is a
// free-form value: a map becomes structured fields, an error becomes an
// "error" field, anything else lands under "data".
type Logger interface {
	// SetLevel changes the severity threshold; NilLevel mutes everything.
	SetLevel(lvl Level)
	// GetLevel returns the current threshold.
	GetLevel() Level

	// SetOptions rebuilds the sink set; previously opened files are closed.
	SetOptions(opt *Options) error
	// GetOptions returns a copy of the current options.
	GetOptions() *Options

	Debug(message string, data interface{}, args ...interface{})
	Info(message string, data interface{}, args ...interface{})
	Warning(message string, data interface{}, args ...interface{})
	Error(message string, data interface{}, args ...interface{})

	// Close releases every file sink.
	Close() error
}

// New returns a muted-output Logger at InfoLevel; call SetOptions to attach
// sinks. ctx bounds nothing today but keeps the constructor shape uniform
// with the engine's other context-carrying components.
func New(ctx context.Context) Logger {
	if ctx == nil {
		ctx = context.Background()
	}

	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.TraceLevel) // sinks do their own filtering

	return &lgr{
		m: sync.RWMutex{},
		x: ctx,
		l: l,
		o: &Options{},
		v: InfoLevel,
	}
}
