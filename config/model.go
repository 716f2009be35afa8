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

// Package config loads and validates the engine's immutable run configuration
// from a key=value file (bracketed section headers ignored, "#" comments)
// plus a separate users/credentials file. Once Load returns, the
// Config value is never mutated; every worker reads it concurrently without
// locking.
package config

import (
	libdur "github.com/nabbar/s3loadgen/duration"
	libsiz "github.com/nabbar/s3loadgen/size"
	"github.com/nabbar/s3loadgen/storage"
)

// TestCase codes selectable from the configuration or the CLI argument.
const (
	CasePut       = 201
	CaseGet       = 202
	CaseDelete    = 204
	CaseMultipart = 216
	CaseResumable = 230
	CaseMix       = 900
)

// UserCredential binds one tenant identity to its bucket at runtime. Token is
// empty unless IsTemporaryToken is set; OriginalAccessKey equals AccessKey
// whenever temporary credentials are not used.
type UserCredential struct {
	Username          string
	AccessKey         string
	SecretKey         string
	Token             string
	OriginalAccessKey string
}

// ObjectSize is either a fixed value (Min == Max) or an inclusive random
// range drawn per iteration by the worker's own PRNG.
type ObjectSize struct {
	Min int64
	Max int64
}

// Fixed reports whether every generated size is the same.
func (o ObjectSize) Fixed() bool {
	return o.Min == o.Max
}

// Config is the immutable, shared-read-only run configuration built once by
// Load and bound into every worker's storage.CallOptions.
type Config struct {
	// transport/auth
	Endpoint          string
	Protocol          storage.Protocol
	KeepAlive         bool
	ConnectTimeoutSec int
	RequestTimeoutSec int
	IsTemporaryToken  bool

	// multi-tenancy
	Users            []UserCredential
	ThreadsPerUser   int
	BucketNamePrefix string
	BucketNameFixed  string

	// plan
	RequestsPerThread int
	TestCase          int
	RunSeconds        libdur.Duration
	MixOperation      []int
	MixLoopCount      int

	// objects
	Size               ObjectSize
	PartSize           libsiz.Size
	KeyPrefix          string
	ObjNamePatternHash bool
	Ranges             []storage.Range

	// behavior
	EnableDataValidation bool
	EnableDetailLog      bool
	LogLevel             string
	EnableCheckpoint     bool
	UploadFilePath       string

	// transport security, stored for the driver; GM-mode and mutual-SSL
	// wiring is limited to what the s3 transport stack exercises
	GmModeSwitch    bool
	MutualSslSwitch bool
	ServerCertPath  string
	ClientSignCert  string
	ClientSignKey   string
	ClientEncCert   string
	ClientEncKey    string
	ClientKeyPass   string

	// derived
	TotalWorkers int
}

// TotalOperations returns the quota the monitor uses for progress-by-count:
// single-case mode is threads×RequestsPerThread, mixed mode
// multiplies in MixOperation's length and MixLoopCount too. It does not look
// at RunSeconds; the monitor itself prefers time-based progress when
// RunSeconds is set.
func (c *Config) TotalOperations() int64 {
	threads := int64(c.TotalWorkers)
	if c.TestCase == CaseMix {
		return threads * int64(len(c.MixOperation)) * int64(c.MixLoopCount) * int64(c.RequestsPerThread)
	}
	return threads * int64(c.RequestsPerThread)
}
