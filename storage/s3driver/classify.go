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
	"errors"
	"net"

	"github.com/aws/smithy-go"

	"github.com/nabbar/s3loadgen/storage"
)

// kindOf is the only place in the engine that inspects an aws-sdk-go-v2/
// smithy error. It turns whatever the SDK surfaced into the driver-neutral
// storage.Kind table consumed by storage.Class.
func kindOf(err error) storage.Kind {
	if err == nil {
		return storage.KindSuccess
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return storage.KindNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return storage.KindNetwork
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied":
			return storage.KindAccessDenied
		case "InvalidAccessKeyId":
			return storage.KindInvalidAccessKeyID
		case "SignatureDoesNotMatch":
			return storage.KindSignatureMismatch
		case "InvalidSecurity":
			return storage.KindInvalidSecurity
		case "NoSuchBucket":
			return storage.KindNoSuchBucket
		case "NoSuchKey":
			return storage.KindNoSuchKey
		case "NoSuchUpload":
			return storage.KindNoSuchUpload
		case "NoSuchVersion":
			return storage.KindNoSuchVersion
		case "BucketAlreadyOwnedByYou":
			return storage.KindBucketAlreadyOwned
		case "BucketAlreadyExists":
			return storage.KindBucketAlreadyExists
		case "BucketNotEmpty":
			return storage.KindBucketNotEmpty
		case "InternalError":
			return storage.KindInternalError
		case "ServiceUnavailable":
			return storage.KindServiceUnavailable
		case "SlowDown":
			return storage.KindSlowDown
		default:
			return storage.KindOtherService
		}
	}

	return storage.KindNetwork
}
