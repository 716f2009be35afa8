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

package errors

import (
	"strconv"
	"sync"
)

// CodeError identifies one error condition by a stable numeric code. Each
// package owns a block of codes (see modules.go) and registers a message
// function for it, so a bare code can always be rendered.
type CodeError uint16

// Message resolves the text for codes inside one registered block, returning
// the empty string for codes the block does not own.
type Message func(code CodeError) string

const (
	// UnknownError is the zero code, used when no specific code applies.
	UnknownError CodeError = 0

	// UnknownMessage is rendered for any code with no registered message.
	UnknownMessage = "unknown error"
)

var (
	msgMutex sync.RWMutex
	msgFuncs []Message
)

// RegisterIdFctMessage registers the message function for the code block
// starting at minCode. Called from each owning package's init.
func RegisterIdFctMessage(_ CodeError, fct Message) {
	msgMutex.Lock()
	defer msgMutex.Unlock()
	msgFuncs = append(msgFuncs, fct)
}

// ExistInMapMessage reports whether some registered block renders a message
// for code.
func ExistInMapMessage(code CodeError) bool {
	return lookupMessage(code) != ""
}

func lookupMessage(code CodeError) string {
	msgMutex.RLock()
	defer msgMutex.RUnlock()

	for _, f := range msgFuncs {
		if m := f(code); m != "" && m != UnknownMessage {
			return m
		}
	}
	return ""
}

func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

func (c CodeError) Int() int {
	return int(c)
}

// Message returns the registered message for this code, or UnknownMessage.
func (c CodeError) Message() string {
	if m := lookupMessage(c); m != "" {
		return m
	}
	return UnknownMessage
}

func (c CodeError) String() string {
	return strconv.Itoa(c.Int()) + ": " + c.Message()
}

// Error builds an Error carrying this code, its registered message and any
// given parents.
func (c CodeError) Error(parent ...error) Error {
	return newAt(2, c.Uint16(), c.Message(), flatten(parent))
}

// IfError is like Error but returns nil when every given parent is nil, so a
// call site can wrap-or-pass-through in one expression.
func (c CodeError) IfError(parent ...error) Error {
	p := flatten(parent)
	if len(p) == 0 {
		return nil
	}
	return newAt(2, c.Uint16(), c.Message(), p)
}
