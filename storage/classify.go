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

package storage

// Kind is the driver's classification of a call outcome, decoupled from any
// SDK error type so the Operation Adapter never needs to import one. The
// s3driver package is the only place smithy/aws-sdk-go-v2 error kinds are
// inspected; everywhere else in the engine only sees a Kind.
type Kind uint8

const (
	KindSuccess Kind = iota

	KindAccessDenied
	KindInvalidAccessKeyID
	KindSignatureMismatch
	KindInvalidSecurity

	KindNoSuchBucket
	KindNoSuchKey
	KindNoSuchUpload
	KindNoSuchVersion

	KindBucketAlreadyOwned
	KindBucketAlreadyExists
	KindBucketNotEmpty

	KindInternalError
	KindServiceUnavailable
	KindSlowDown

	KindNetwork

	// KindOtherService is any service-side error kind not named above,
	// classified as a generic client error.
	KindOtherService

	// KindValidationFailed is the adapter's synthetic outcome for a
	// data-integrity failure (corruption or short read). A driver's Get
	// also returns it when the consume callback aborts the stream.
	KindValidationFailed
)

// Class returns the HTTP-class bucket for a driver Kind.
// op and ranged distinguish the three non-error successes (200/204/206); all
// other Kinds ignore them.
func Class(k Kind, op Operation, ranged bool) int {
	switch k {
	case KindSuccess:
		switch {
		case op == OpDelete:
			return 204
		case op == OpGet && ranged:
			return 206
		default:
			return 200
		}
	case KindAccessDenied, KindInvalidAccessKeyID, KindSignatureMismatch, KindInvalidSecurity:
		return 403
	case KindNoSuchBucket, KindNoSuchKey, KindNoSuchUpload, KindNoSuchVersion:
		return 404
	case KindBucketAlreadyOwned, KindBucketAlreadyExists, KindBucketNotEmpty:
		return 409
	case KindInternalError, KindServiceUnavailable, KindSlowDown:
		return 500
	case KindNetwork:
		return 0
	default:
		// KindOtherService and KindValidationFailed (the latter is not
		// HTTP-classified by the worker; the adapter owns that counter).
		return 400
	}
}

// Operation identifies which storage operation produced an outcome, needed
// by Class to pick 200 vs 204 vs 206 on success.
type Operation uint8

const (
	OpPut Operation = iota
	OpGet
	OpDelete
	OpList
	OpMultipart
	OpResumable
)
