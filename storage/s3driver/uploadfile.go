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
	"os"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	sdksss "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nabbar/s3loadgen/storage"
)

// UploadFile drives the resumable-file-upload operation against the fixed
// source file the Supervisor materializes once at startup. The SDK's managed
// multipart uploader is intentionally not used here: the engine measures raw
// request latency, not the helper's own retry/part-size heuristics, so a
// single streamed PutObject over the opened file is used instead. checkpoint
// is accepted for interface symmetry with the abstract client and is not
// otherwise used.
func (d *Driver) UploadFile(ctx context.Context, opt storage.CallOptions, key, sourcePath string, checkpoint bool, complete storage.CompleteFunc) storage.Kind {
	_ = checkpoint

	f, err := os.Open(sourcePath)
	if err != nil {
		if complete != nil {
			complete(storage.KindOtherService, err.Error())
		}
		return storage.KindOtherService
	}
	defer func() { _ = f.Close() }()

	fi, err := f.Stat()
	if err != nil {
		if complete != nil {
			complete(storage.KindOtherService, err.Error())
		}
		return storage.KindOtherService
	}

	cli := d.clientFor(opt)

	_, err = cli.PutObject(ctx, &sdksss.PutObjectInput{
		Bucket:        sdkaws.String(opt.Bucket),
		Key:           sdkaws.String(key),
		Body:          f,
		ContentLength: sdkaws.Int64(fi.Size()),
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
