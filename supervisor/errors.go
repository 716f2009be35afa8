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

package supervisor

import (
	liberr "github.com/nabbar/s3loadgen/errors"
)

// Error codes for startup failures, offset past config's
// own block in the shared loadgen range so the two packages never collide.
const (
	CodeLogDir liberr.CodeError = iota + liberr.MinPkgLoadGen + 50
	CodeBrief
	CodePatternAlloc
	CodeUploadFile
)

func init() {
	liberr.RegisterIdFctMessage(CodeLogDir, messages)
}

func messages(code liberr.CodeError) string {
	switch code {
	case CodeLogDir:
		return "cannot create task log directory"
	case CodeBrief:
		return "cannot write brief report"
	case CodePatternAlloc:
		return "cannot allocate pattern buffer for worker"
	case CodeUploadFile:
		return "cannot materialize resumable upload source file"
	default:
		return liberr.UnknownMessage
	}
}
