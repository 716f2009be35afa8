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
	"io"
	"os"

	"github.com/sirupsen/logrus"

	liberr "github.com/nabbar/s3loadgen/errors"
)

// sink is one output destination attached as a logrus hook: every emitted
// entry it accepts is formatted and written, with per-sink level filtering
// so one file can carry only errors while another carries everything.
type sink struct {
	w io.Writer
	f logrus.Formatter
	l []logrus.Level
}

func (h *sink) Levels() []logrus.Level {
	return h.l
}

func (h *sink) Fire(e *logrus.Entry) error {
	b, err := h.f.Format(e)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}

// sinkLevels maps a file option's level names to the logrus levels the sink
// accepts; an empty list means every level.
func sinkLevels(names []string) []logrus.Level {
	if len(names) == 0 {
		return logrus.AllLevels
	}

	var lvls []logrus.Level
	for _, n := range names {
		lvls = append(lvls, ParseLevel(n).Logrus())
	}
	return lvls
}

// openAppend opens path for appending, creating it with mode when allowed by
// a prior PathCheckCreate.
func openAppend(path string, mode os.FileMode) (io.WriteCloser, liberr.Error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
	if err != nil {
		return nil, CodeFileOpen.Error(err)
	}
	return f, nil
}
