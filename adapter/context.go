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

// Package adapter orchestrates the storage operations: one entry point per
// storage operation, composing CallOptions, driving the three streaming
// callbacks storage.Client expects, and verifying downloaded bytes against
// the deterministic pattern source mid-stream.
package adapter

import (
	"errors"

	"github.com/nabbar/s3loadgen/storage"
)

// errValidationFailed is returned from a ConsumeFunc to abort the transfer
// the instant a byte mismatches the pattern; it never crosses the adapter
// boundary (Get converts it into a Result).
var errValidationFailed = errors.New("adapter: downloaded content does not match pattern")

// ValidationCounter is implemented by worker.ThreadStats. It lets the
// adapter own the data-integrity counter without
// importing the worker package, which would create an import cycle since
// the worker is the one calling the adapter.
type ValidationCounter interface {
	IncrFailValidation()
}

// transferContext is the per-call frame: never shared,
// allocated fresh by every adapter method, freed when the method returns.
type transferContext struct {
	processedBytes   int64
	expectedLength   int64
	validationFailed bool
	mismatchOffset   int64
	uploadID         string
	etag             string
	requestID        string
	patternStart     uint64
	skipValidation   bool
}

// Result is what every Adapter method returns: the outcome Kind the Worker's
// Classifier consumes, the byte count it tallies on success, and whatever
// identifiers the trace row needs.
type Result struct {
	Kind             storage.Kind
	Bytes            int64
	RequestID        string
	ETag             string
	UploadID         string
	ValidationFailed bool
}
