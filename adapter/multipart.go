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

	"github.com/nabbar/s3loadgen/storage"
)

// Multipart initiates an upload, drives ceil(size/partSize) sequential parts
// (each re-seeded with its own absolute pattern offset so the stream stays
// continuous across parts), and completes or aborts the upload
// depending on whether every part succeeded.
func (a *Adapter) Multipart(ctx context.Context, opt storage.CallOptions, key string, size, partSize int64) Result {
	if partSize <= 0 || partSize > size {
		partSize = size
	}

	uploadID, kind := a.client.InitiateMultipart(ctx, opt, key)
	if kind != storage.KindSuccess {
		return Result{Kind: kind}
	}

	var parts []storage.PartResult
	var offset int64
	partNumber := int32(1)

	for offset < size {
		remain := size - offset
		n := partSize
		if remain < n {
			n = remain
		}

		tc := &transferContext{processedBytes: offset}
		pr := a.client.UploadPart(ctx, opt, key, uploadID, partNumber, n, a.partProducer(tc, offset, n))

		if pr.Kind != storage.KindSuccess {
			_ = a.client.AbortMultipart(ctx, opt, key, uploadID)
			return Result{Kind: pr.Kind, UploadID: uploadID, Bytes: offset}
		}

		parts = append(parts, pr)
		offset += n
		partNumber++
	}

	kind = a.client.CompleteMultipart(ctx, opt, key, uploadID, parts, noopComplete)

	return Result{Kind: kind, UploadID: uploadID, Bytes: offset}
}

// partProducer fills one part's bytes from the pattern source at its
// absolute stream offset (partOffset+produced), distinct from Put's producer
// which always starts at 0.
func (a *Adapter) partProducer(tc *transferContext, partOffset, partSize int64) storage.ProduceFunc {
	return func(buf []byte) (int, error) {
		if a.shutdown.Load() {
			return 0, io.ErrClosedPipe
		}
		produced := tc.processedBytes - partOffset
		if produced >= partSize {
			return 0, io.EOF
		}
		remain := partSize - produced
		if int64(len(buf)) > remain {
			buf = buf[:remain]
		}
		n := a.src.Fill(buf, uint64(tc.processedBytes))
		tc.processedBytes += int64(n)
		return n, nil
	}
}

// Resumable invokes the client's file-upload operation against the fixed
// source file the Supervisor materialized at startup.
func (a *Adapter) Resumable(ctx context.Context, opt storage.CallOptions, key, sourcePath string, checkpoint bool) Result {
	kind := a.client.UploadFile(ctx, opt, key, sourcePath, checkpoint, noopComplete)
	return Result{Kind: kind}
}
