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

package ioutils

import liberr "github.com/nabbar/s3loadgen/errors"

const (
	ErrorPathCheck liberr.CodeError = iota + liberr.MinPkgIOUtils
	ErrorPathCreate
	ErrorFileTempNew
	ErrorFileTempClose
	ErrorFileTempRemove
)

func init() {
	liberr.RegisterIdFctMessage(ErrorPathCheck, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorPathCheck:
		return "cannot stat path"
	case ErrorPathCreate:
		return "cannot create path"
	case ErrorFileTempNew:
		return "cannot create temporary file"
	case ErrorFileTempClose:
		return "cannot close temporary file"
	case ErrorFileTempRemove:
		return "cannot remove temporary file"
	default:
		return liberr.UnknownMessage
	}
}
