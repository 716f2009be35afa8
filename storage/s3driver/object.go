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
	"fmt"
	"io"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	sdkawsmid "github.com/aws/aws-sdk-go-v2/aws/middleware"
	sdksss "github.com/aws/aws-sdk-go-v2/service/s3"
	sdkmid "github.com/aws/smithy-go/middleware"

	"github.com/nabbar/s3loadgen/storage"
)

// produceReader adapts a storage.ProduceFunc to io.Reader so it can be
// handed to the SDK as a request body.
type produceReader struct {
	produce storage.ProduceFunc
}

func (r produceReader) Read(p []byte) (int, error) {
	return r.produce(p)
}

// requestID pulls the x-amz-request-id out of the SDK's result metadata;
// aws-sdk-go-v2 exposes it through middleware.Metadata instead of an
// http.Response the engine could reach into.
func requestID(meta sdkmid.Metadata) string {
	if v, ok := sdkawsmid.GetRequestIDMetadata(meta); ok {
		return v
	}
	return ""
}

func (d *Driver) Put(ctx context.Context, opt storage.CallOptions, key string, size int64, produce storage.ProduceFunc, props storage.PropertiesFunc, complete storage.CompleteFunc) storage.Kind {
	cli := d.clientFor(opt)

	out, err := cli.PutObject(ctx, &sdksss.PutObjectInput{
		Bucket:        sdkaws.String(opt.Bucket),
		Key:           sdkaws.String(key),
		Body:          produceReader{produce},
		ContentLength: sdkaws.Int64(size),
	})

	kind := kindOf(err)

	if err == nil {
		etag := ""
		if out.ETag != nil {
			etag = *out.ETag
		}
		if props != nil {
			props(storage.Properties{ETag: etag, ContentLength: size, RequestID: requestID(out.ResultMetadata)})
		}
		if complete != nil {
			complete(storage.KindSuccess, "")
		}
		return storage.KindSuccess
	}

	if complete != nil {
		complete(kind, err.Error())
	}
	return kind
}

func (d *Driver) Get(ctx context.Context, opt storage.CallOptions, key string, rng storage.Range, consume storage.ConsumeFunc, props storage.PropertiesFunc, complete storage.CompleteFunc) storage.Kind {
	cli := d.clientFor(opt)

	in := &sdksss.GetObjectInput{
		Bucket: sdkaws.String(opt.Bucket),
		Key:    sdkaws.String(key),
	}
	if rng.Count > 0 {
		end := rng.Start + rng.Count - 1
		in.Range = sdkaws.String(fmt.Sprintf("bytes=%d-%d", rng.Start, end))
	} else if rng.Start > 0 {
		in.Range = sdkaws.String(fmt.Sprintf("bytes=%d-", rng.Start))
	}

	out, err := cli.GetObject(ctx, in)
	if err != nil {
		kind := kindOf(err)
		if complete != nil {
			complete(kind, err.Error())
		}
		return kind
	}
	defer func() { _ = out.Body.Close() }()

	etag, length := "", int64(0)
	if out.ETag != nil {
		etag = *out.ETag
	}
	if out.ContentLength != nil {
		length = *out.ContentLength
	}
	if props != nil {
		props(storage.Properties{ETag: etag, ContentLength: length, RequestID: requestID(out.ResultMetadata)})
	}

	buf := make([]byte, 32*1024)
	for {
		n, rerr := out.Body.Read(buf)
		if n > 0 && consume != nil {
			if cerr := consume(buf[:n]); cerr != nil {
				if complete != nil {
					complete(storage.KindValidationFailed, cerr.Error())
				}
				return storage.KindValidationFailed
			}
		}
		if rerr != nil {
			if rerr == io.EOF {
				if complete != nil {
					complete(storage.KindSuccess, "")
				}
				return storage.KindSuccess
			}
			kind := kindOf(rerr)
			if complete != nil {
				complete(kind, rerr.Error())
			}
			return kind
		}
	}
}

func (d *Driver) Delete(ctx context.Context, opt storage.CallOptions, key string, complete storage.CompleteFunc) storage.Kind {
	cli := d.clientFor(opt)

	_, err := cli.DeleteObject(ctx, &sdksss.DeleteObjectInput{
		Bucket: sdkaws.String(opt.Bucket),
		Key:    sdkaws.String(key),
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

func (d *Driver) List(ctx context.Context, opt storage.CallOptions, continuationToken string) ([]string, string, int64, storage.Kind) {
	cli := d.clientFor(opt)

	in := &sdksss.ListObjectsV2Input{Bucket: sdkaws.String(opt.Bucket)}
	if continuationToken != "" {
		in.ContinuationToken = sdkaws.String(continuationToken)
	}

	out, err := cli.ListObjectsV2(ctx, in)
	if err != nil {
		return nil, "", 0, kindOf(err)
	}

	keys := make([]string, 0, len(out.Contents))
	for _, o := range out.Contents {
		if o.Key != nil {
			keys = append(keys, *o.Key)
		}
	}

	next := ""
	if out.IsTruncated != nil && *out.IsTruncated && out.NextContinuationToken != nil {
		next = *out.NextContinuationToken
	}

	count := int64(len(keys))
	if out.KeyCount != nil {
		count = int64(*out.KeyCount)
	}

	return keys, next, count, storage.KindSuccess
}
