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
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"

	liberr "github.com/nabbar/s3loadgen/errors"
	libprm "github.com/nabbar/s3loadgen/file/perm"
	libiot "github.com/nabbar/s3loadgen/ioutils"
)

const (
	defaultFileMode libprm.Perm = 0o644
	defaultPathMode libprm.Perm = 0o755
)

type lgr struct {
	m sync.RWMutex
	x context.Context
	l *logrus.Logger
	o *Options
	v Level
	c []io.Closer
}

func (o *lgr) SetLevel(lvl Level) {
	o.m.Lock()
	defer o.m.Unlock()
	o.v = lvl
}

func (o *lgr) GetLevel() Level {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.v
}

// SetOptions builds the new sink set first, then swaps it in: one hook for
// the terminal, one per configured file. On any file-open failure the
// current sinks stay untouched; on success the previous files are closed.
func (o *lgr) SetOptions(opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}

	hooks := make([]logrus.Hook, 0, len(opt.LogFile)+1)
	closers := make([]io.Closer, 0, len(opt.LogFile))

	if opt.Stdout != nil {
		hooks = append(hooks, &sink{
			w: colorable.NewColorableStdout(),
			f: &logrus.TextFormatter{
				DisableColors:    opt.Stdout.DisableColor,
				DisableTimestamp: opt.Stdout.DisableTimestamp,
				FullTimestamp:    true,
			},
			l: logrus.AllLevels,
		})
	}

	for _, fo := range opt.LogFile {
		w, err := o.openFile(fo)
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
			return err
		}

		closers = append(closers, w)
		hooks = append(hooks, &sink{
			w: w,
			f: &logrus.TextFormatter{
				DisableColors: true,
				FullTimestamp: true,
			},
			l: sinkLevels(fo.LogLevel),
		})
	}

	o.m.Lock()
	defer o.m.Unlock()

	o.closeFiles()
	o.l.ReplaceHooks(make(logrus.LevelHooks))
	for _, h := range hooks {
		o.l.AddHook(h)
	}

	o.c = closers
	o.o = opt.Clone()
	return nil
}

func (o *lgr) GetOptions() *Options {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.o.Clone()
}

func (o *lgr) openFile(fo OptionsFile) (io.WriteCloser, liberr.Error) {
	if fo.Create || fo.CreatePath {
		if err := libiot.PathCheckCreate(true, fo.Filepath,
			fo.FileMode.OrDefault(defaultFileMode).FileMode(),
			fo.PathMode.OrDefault(defaultPathMode).FileMode()); err != nil {
			return nil, err
		}
	}
	return openAppend(fo.Filepath, fo.FileMode.OrDefault(defaultFileMode).FileMode())
}

func (o *lgr) closeFiles() {
	for _, c := range o.c {
		_ = c.Close()
	}
	o.c = nil
}

func (o *lgr) Close() error {
	o.m.Lock()
	defer o.m.Unlock()
	o.closeFiles()
	return nil
}

func (o *lgr) Debug(message string, data interface{}, args ...interface{}) {
	o.log(DebugLevel, message, data, args...)
}

func (o *lgr) Info(message string, data interface{}, args ...interface{}) {
	o.log(InfoLevel, message, data, args...)
}

func (o *lgr) Warning(message string, data interface{}, args ...interface{}) {
	o.log(WarnLevel, message, data, args...)
}

func (o *lgr) Error(message string, data interface{}, args ...interface{}) {
	o.log(ErrorLevel, message, data, args...)
}

func (o *lgr) log(lvl Level, message string, data interface{}, args ...interface{}) {
	if o.x.Err() != nil {
		// the root context is gone; sinks may be mid-teardown
		return
	}

	threshold := o.GetLevel()
	if threshold == NilLevel || lvl > threshold {
		return
	}

	o.m.RLock()
	defer o.m.RUnlock()

	e := o.l.WithTime(time.Now())

	switch d := data.(type) {
	case nil:
	case map[string]interface{}:
		e = e.WithFields(logrus.Fields(d))
	case error:
		e = e.WithField("error", d.Error())
	default:
		e = e.WithField("data", d)
	}

	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	e.Log(lvl.Logrus(), message)
}
