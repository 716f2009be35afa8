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

// Package errors carries coded errors: every error produced by this module
// pairs a stable numeric code with a registered message, an optional parent
// chain and the file:line of its creation, so operators can grep a code and
// land on the producing package.
package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Error is the error type used across the module.
type Error interface {
	error

	// Code returns the numeric code this error was created with.
	Code() uint16
	// Add appends parents to the error's cause chain.
	Add(parent ...error)
	// Parents returns the cause chain, outermost first.
	Parents() []error
	// Unwrap exposes the parents to errors.Is / errors.As.
	Unwrap() []error
}

type ers struct {
	c uint16
	e string
	p []error
	t string
}

// New builds an Error from a code, a message and an optional parent chain,
// stamping the caller's file:line.
func New(code uint16, message string, parent ...error) Error {
	return newAt(2, code, message, flatten(parent))
}

// IfError is like New but returns nil when every given parent is nil.
func IfError(code uint16, message string, parent ...error) Error {
	p := flatten(parent)
	if len(p) == 0 {
		return nil
	}
	return newAt(2, code, message, p)
}

// Make wraps a plain error into an Error with the UnknownError code. A nil
// input yields nil; an input that already is an Error passes through.
func Make(e error) Error {
	if e == nil {
		return nil
	}
	if v, ok := e.(Error); ok {
		return v
	}
	return newAt(2, UnknownError.Uint16(), e.Error(), nil)
}

// MakeIfError folds a list of maybe-nil errors into one Error, or nil when
// all of them are nil.
func MakeIfError(err ...error) Error {
	var res Error
	for _, e := range err {
		if e == nil {
			continue
		}
		if res == nil {
			res = Make(e)
		} else {
			res.Add(e)
		}
	}
	return res
}

// newAt constructs an ers stamped with the frame skip levels above itself:
// skip=2 labels the caller of the exported function that called newAt.
func newAt(skip int, code uint16, message string, parent []error) Error {
	return &ers{
		c: code,
		e: message,
		p: parent,
		t: getFrame(skip + 1),
	}
}

func flatten(parent []error) []error {
	var p []error
	for _, e := range parent {
		if e != nil {
			p = append(p, e)
		}
	}
	return p
}

func getFrame(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return ""
}

func (e *ers) Error() string {
	s := fmt.Sprintf("[Error #%d] %s", e.c, e.e)
	if e.t != "" {
		s += " (" + e.t + ")"
	}
	for _, p := range e.p {
		s += ", " + p.Error()
	}
	return s
}

func (e *ers) Code() uint16 {
	return e.c
}

func (e *ers) Add(parent ...error) {
	e.p = append(e.p, flatten(parent)...)
}

func (e *ers) Parents() []error {
	return e.p
}

func (e *ers) Unwrap() []error {
	return e.p
}
