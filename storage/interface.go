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

// Package storage defines the narrow operation interface the Operation
// Adapter drives: put/get/delete/list/multipart/resumable-upload, each taking
// a CallOptions and up to three callbacks. The engine never imports an SDK
// directly; s3driver is the one concrete Client shipped, built on
// aws-sdk-go-v2.
package storage

import "context"

// Protocol selects plaintext or TLS transport to the endpoint.
type Protocol uint8

const (
	ProtocolTLS Protocol = iota
	ProtocolPlain
)

// CallOptions composes the immutable engine configuration with the
// credentials and bucket bound to one worker. It is built once per worker
// and reused across every call that worker makes.
type CallOptions struct {
	Endpoint          string
	Bucket            string
	AccessKey         string
	SecretKey         string
	Token             string
	Protocol          Protocol
	KeepAlive         bool
	ConnectTimeoutSec int
	RequestTimeoutSec int
}

// Properties carries the values the driver captures from the response
// metadata, before or instead of any body bytes.
type Properties struct {
	ETag          string
	ContentLength int64
	RequestID     string
}

// PropertiesFunc receives response properties as soon as the driver knows
// them (etag, content-length, request-id), at most once, before any data
// callback.
type PropertiesFunc func(Properties)

// ProduceFunc fills buf for an upload, mirroring io.Reader.Read: it returns
// the number of bytes written and a non-nil error (io.EOF on a clean finish)
// to stop production. The adapter's implementation copies from the pattern
// source and observes the shutdown flag here.
type ProduceFunc func(buf []byte) (n int, err error)

// ConsumeFunc receives one chunk of a download, mirroring io.Writer.Write
// without partial-write semantics: returning an error aborts the transfer.
// The adapter's implementation verifies the chunk against the pattern source
// when validation is enabled.
type ConsumeFunc func(chunk []byte) error

// CompleteFunc is invoked exactly once, last, with the call's terminal Kind
// and an optional message (populated on failure).
type CompleteFunc func(kind Kind, message string)

// PartResult is returned by UploadPart for the adapter to assemble the
// CompleteMultipart request.
type PartResult struct {
	PartNumber int32
	ETag       string
	Kind       Kind
}

// Client is the external operation interface the Operation Adapter consumes.
// storage/s3driver is the one concrete implementation.
type Client interface {
	Put(ctx context.Context, opt CallOptions, key string, size int64, produce ProduceFunc, props PropertiesFunc, complete CompleteFunc) Kind
	Get(ctx context.Context, opt CallOptions, key string, rng Range, consume ConsumeFunc, props PropertiesFunc, complete CompleteFunc) Kind
	Delete(ctx context.Context, opt CallOptions, key string, complete CompleteFunc) Kind
	List(ctx context.Context, opt CallOptions, continuationToken string) (keys []string, next string, count int64, kind Kind)

	InitiateMultipart(ctx context.Context, opt CallOptions, key string) (uploadID string, kind Kind)
	UploadPart(ctx context.Context, opt CallOptions, key, uploadID string, partNumber int32, size int64, produce ProduceFunc) PartResult
	CompleteMultipart(ctx context.Context, opt CallOptions, key, uploadID string, parts []PartResult, complete CompleteFunc) Kind
	AbortMultipart(ctx context.Context, opt CallOptions, key, uploadID string) Kind

	UploadFile(ctx context.Context, opt CallOptions, key, sourcePath string, checkpoint bool, complete CompleteFunc) Kind
}

// Range is a parsed byte-range request. Anchor is the absolute pattern
// offset the first delivered byte is expected to equal; Count is the number
// of bytes expected (0 means "to end", resolved by the driver from
// content-length once known).
type Range struct {
	Start  int64
	Count  int64
	Anchor int64
}
