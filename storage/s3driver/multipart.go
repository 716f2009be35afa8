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

package s3driver

import (
	"context"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	sdksss "github.com/aws/aws-sdk-go-v2/service/s3"
	sdktps "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/nabbar/s3loadgen/storage"
)

// InitiateMultipart asks S3 for an upload id and hands it back for the
// adapter to drive part uploads against.
func (d *Driver) InitiateMultipart(ctx context.Context, opt storage.CallOptions, key string) (string, storage.Kind) {
	cli := d.clientFor(opt)

	out, err := cli.CreateMultipartUpload(ctx, &sdksss.CreateMultipartUploadInput{
		Bucket: sdkaws.String(opt.Bucket),
		Key:    sdkaws.String(key),
	})
	if err != nil {
		return "", kindOf(err)
	}
	if out.UploadId == nil {
		return "", storage.KindOtherService
	}
	return *out.UploadId, storage.KindSuccess
}

// UploadPart streams one part through produce, the same ProduceFunc contract
// Put uses, so the pattern source continues uninterrupted across part
// boundaries (the adapter pre-seeds processed_bytes to the part's absolute
// offset before calling this).
func (d *Driver) UploadPart(ctx context.Context, opt storage.CallOptions, key, uploadID string, partNumber int32, size int64, produce storage.ProduceFunc) storage.PartResult {
	cli := d.clientFor(opt)

	out, err := cli.UploadPart(ctx, &sdksss.UploadPartInput{
		Bucket:        sdkaws.String(opt.Bucket),
		Key:           sdkaws.String(key),
		UploadId:      sdkaws.String(uploadID),
		PartNumber:    sdkaws.Int32(partNumber),
		Body:          produceReader{produce},
		ContentLength: sdkaws.Int64(size),
	})
	if err != nil {
		return storage.PartResult{PartNumber: partNumber, Kind: kindOf(err)}
	}

	etag := ""
	if out.ETag != nil {
		etag = *out.ETag
	}
	return storage.PartResult{PartNumber: partNumber, ETag: etag, Kind: storage.KindSuccess}
}

// CompleteMultipart assembles the (part-number, etag) list the adapter
// collected and finalizes the upload.
func (d *Driver) CompleteMultipart(ctx context.Context, opt storage.CallOptions, key, uploadID string, parts []storage.PartResult, complete storage.CompleteFunc) storage.Kind {
	cli := d.clientFor(opt)

	completed := make([]sdktps.CompletedPart, 0, len(parts))
	for _, p := range parts {
		completed = append(completed, sdktps.CompletedPart{
			PartNumber: sdkaws.Int32(p.PartNumber),
			ETag:       sdkaws.String(p.ETag),
		})
	}

	_, err := cli.CompleteMultipartUpload(ctx, &sdksss.CompleteMultipartUploadInput{
		Bucket:   sdkaws.String(opt.Bucket),
		Key:      sdkaws.String(key),
		UploadId: sdkaws.String(uploadID),
		MultipartUpload: &sdktps.CompletedMultipartUpload{
			Parts: completed,
		},
	})

	kind := kindOf(err)
	if complete != nil {
		if err == nil {
			complete(storage.KindSuccess, "")
		} else {
			complete(kind, err.Error())
		}
	}
	if err == nil {
		return storage.KindSuccess
	}
	return kind
}

// AbortMultipart is invoked by the adapter whenever any part fails, so the
// service does not accumulate orphaned uploads.
func (d *Driver) AbortMultipart(ctx context.Context, opt storage.CallOptions, key, uploadID string) storage.Kind {
	cli := d.clientFor(opt)

	_, err := cli.AbortMultipartUpload(ctx, &sdksss.AbortMultipartUploadInput{
		Bucket:   sdkaws.String(opt.Bucket),
		Key:      sdkaws.String(key),
		UploadId: sdkaws.String(uploadID),
	})
	return kindOf(err)
}
