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

package adapter

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/nabbar/s3loadgen/logger"
	"github.com/nabbar/s3loadgen/pattern"
	"github.com/nabbar/s3loadgen/storage"
)

// Adapter drives a storage.Client that may be shared by every worker; it
// holds no per-call state of its own (each method allocates its own
// transferContext). The pattern Source it wraps is worker-owned and never
// shared: each Worker constructs its own Adapter around its own Source.
type Adapter struct {
	client   storage.Client
	src      *pattern.Source
	validate bool
	shutdown *atomic.Bool
	log      logger.Logger
}

// New builds an Adapter bound to one worker's pattern Source. log may be nil.
func New(client storage.Client, src *pattern.Source, validate bool, shutdown *atomic.Bool, log logger.Logger) *Adapter {
	return &Adapter{client: client, src: src, validate: validate, shutdown: shutdown, log: log}
}

func noopComplete(storage.Kind, string) {}

// Put drives the upload-produce callback with exactly size bytes from the
// pattern source. It reports the bytes actually produced in Result.Bytes
// (equal to size on a clean success, short on early cancellation) but never
// adds to total_success_bytes itself; the worker decides whether and what
// to accumulate from that value.
func (a *Adapter) Put(ctx context.Context, opt storage.CallOptions, key string, size int64) Result {
	tc := &transferContext{expectedLength: size}

	kind := a.client.Put(ctx, opt, key, size, a.producer(tc, size), func(p storage.Properties) {
		tc.etag = p.ETag
		tc.requestID = p.RequestID
	}, noopComplete)

	return Result{Kind: kind, Bytes: tc.processedBytes, RequestID: tc.requestID, ETag: tc.etag}
}

// producer returns a ProduceFunc that fills the caller's buffer from the
// pattern source starting at offset 0, advancing tc.processedBytes, and
// honours early cancellation.
func (a *Adapter) producer(tc *transferContext, total int64) storage.ProduceFunc {
	return func(buf []byte) (int, error) {
		if a.shutdown.Load() {
			return 0, io.ErrClosedPipe
		}
		if tc.processedBytes >= total {
			return 0, io.EOF
		}
		remain := total - tc.processedBytes
		if int64(len(buf)) > remain {
			buf = buf[:remain]
		}
		n := a.src.Fill(buf, uint64(tc.processedBytes))
		tc.processedBytes += int64(n)
		return n, nil
	}
}

// Get drives the download-consume callback, verifying each chunk against the
// pattern anchored at rng.Anchor unless validation is globally disabled or
// skipValidation is set for this call. The adapter owns fail_validation: it
// reports ValidationFailed in Result and increments vc itself so the Worker
// never double-classifies.
func (a *Adapter) Get(ctx context.Context, opt storage.CallOptions, key string, rng storage.Range, skipValidation bool, vc ValidationCounter) Result {
	tc := &transferContext{patternStart: uint64(rng.Anchor), skipValidation: skipValidation}

	consume := func(chunk []byte) error {
		if a.shutdown.Load() {
			return io.ErrClosedPipe
		}
		if a.validate && !tc.skipValidation {
			abs := tc.patternStart + uint64(tc.processedBytes)
			if ok, mismatchAt := a.src.Verify(chunk, abs); !ok {
				tc.validationFailed = true
				tc.mismatchOffset = int64(abs + mismatchAt)
				tc.processedBytes += int64(len(chunk))
				return errValidationFailed
			}
		}
		tc.processedBytes += int64(len(chunk))
		return nil
	}

	kind := a.client.Get(ctx, opt, key, rng, consume, func(p storage.Properties) {
		tc.expectedLength = p.ContentLength
		tc.etag = p.ETag
		tc.requestID = p.RequestID
	}, noopComplete)

	// Short-read first, corruption second. The two are exclusive: a
	// corrupted transfer aborts with a non-success kind, so the
	// success-gated length check can never also fire for it.
	if kind == storage.KindSuccess && tc.expectedLength != 0 && tc.processedBytes != tc.expectedLength {
		a.logIncomplete(key, tc.requestID, tc.processedBytes, tc.expectedLength)
		if vc != nil {
			vc.IncrFailValidation()
		}
		return Result{Kind: storage.KindValidationFailed, ValidationFailed: true, RequestID: tc.requestID, Bytes: tc.processedBytes}
	}

	if tc.validationFailed {
		a.logCorruption(key, tc.requestID, tc.mismatchOffset)
		if vc != nil {
			vc.IncrFailValidation()
		}
		return Result{Kind: storage.KindValidationFailed, ValidationFailed: true, RequestID: tc.requestID, Bytes: tc.processedBytes}
	}

	if kind == storage.KindValidationFailed {
		// the consume callback aborted the stream without a pattern
		// mismatch (shutdown); surface a transport failure so the caller
		// never sees the synthetic kind without ValidationFailed set.
		kind = storage.KindNetwork
	}

	return Result{Kind: kind, Bytes: tc.processedBytes, RequestID: tc.requestID, ETag: tc.etag}
}

func (a *Adapter) logCorruption(key, requestID string, offset int64) {
	if a.log == nil {
		return
	}
	a.log.Warning("DATA_CORRUPTION", map[string]interface{}{
		"key":        key,
		"request_id": requestID,
		"offset":     offset,
	})
}

func (a *Adapter) logIncomplete(key, requestID string, got, want int64) {
	if a.log == nil {
		return
	}
	a.log.Warning("DATA_INCOMPLETE", map[string]interface{}{
		"key":        key,
		"request_id": requestID,
		"got_bytes":  got,
		"want_bytes": want,
	})
}

// Delete propagates success/failure as-is.
func (a *Adapter) Delete(ctx context.Context, opt storage.CallOptions, key string) Result {
	kind := a.client.Delete(ctx, opt, key, noopComplete)
	return Result{Kind: kind}
}

// List propagates the driver's page as-is.
func (a *Adapter) List(ctx context.Context, opt storage.CallOptions, continuationToken string) ([]string, string, int64, storage.Kind) {
	return a.client.List(ctx, opt, continuationToken)
}
