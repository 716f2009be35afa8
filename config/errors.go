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

package config

import (
	liberr "github.com/nabbar/s3loadgen/errors"
)

// Error codes for configuration-load failures, surfaced before any worker
// starts so the process exits non-zero. Registered in the
// shared errors package range the way every other corpus package registers
// its own MinPkg* block.
const (
	CodeReadFile liberr.CodeError = iota + liberr.MinPkgLoadGen
	CodeDecode
	CodeValidate
	CodeObjectSize
	CodeRange
	CodeMixOperation
	CodeUsersFile
	CodeUsersLine
	CodeBucketPolicy
)

func init() {
	liberr.RegisterIdFctMessage(CodeReadFile, messages)
}

func messages(code liberr.CodeError) string {
	switch code {
	case CodeReadFile:
		return "cannot read configuration file"
	case CodeDecode:
		return "cannot decode configuration file"
	case CodeValidate:
		return "configuration failed validation"
	case CodeObjectSize:
		return "invalid ObjectSize value, expected integer or min~max"
	case CodeRange:
		return "invalid Range value, expected a-b, a- or -n"
	case CodeMixOperation:
		return "invalid MixOperation value, expected comma-separated test case codes"
	case CodeUsersFile:
		return "cannot read users/credentials file"
	case CodeUsersLine:
		return "malformed line in users/credentials file"
	case CodeBucketPolicy:
		return "cannot derive bucket name for user"
	default:
		return liberr.UnknownMessage
	}
}
