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

// Package s3driver is the concrete storage.Client shipped with the engine,
// built on aws-sdk-go-v2/service/s3. It drives the three-callback contract
// storage.Client defines instead of returning typed SDK outputs, so nothing
// above it ever imports the SDK.
package s3driver

import (
	"net"
	"net/http"
	"sync"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	sdkcreds "github.com/aws/aws-sdk-go-v2/credentials"
	sdksss "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nabbar/s3loadgen/storage"
)

// Driver caches one *sdksss.Client per distinct endpoint/access-key/token
// tuple it is asked to serve; the protocol and the secret key are not part
// of the cache key. The Supervisor shares one Driver across all workers, and
// workers of the same user send the same tuple, so the cache holds one entry
// per user for the whole run.
type Driver struct {
	mu      sync.Mutex
	clients map[string]*sdksss.Client
}

var _ storage.Client = (*Driver)(nil)

// New returns a storage.Client backed by aws-sdk-go-v2/service/s3.
func New() storage.Client {
	return &Driver{clients: make(map[string]*sdksss.Client)}
}

func cacheKey(opt storage.CallOptions) string {
	return opt.Endpoint + "|" + opt.AccessKey + "|" + opt.Token
}

func (d *Driver) clientFor(opt storage.CallOptions) *sdksss.Client {
	key := cacheKey(opt)

	d.mu.Lock()
	defer d.mu.Unlock()

	if c, ok := d.clients[key]; ok {
		return c
	}

	c := newClient(opt)
	d.clients[key] = c
	return c
}

func newClient(opt storage.CallOptions) *sdksss.Client {
	creds := sdkcreds.NewStaticCredentialsProvider(opt.AccessKey, opt.SecretKey, opt.Token)

	dialer := &net.Dialer{
		Timeout:   time.Duration(opt.ConnectTimeoutSec) * time.Second,
		KeepAlive: keepAliveInterval(opt.KeepAlive),
	}

	transport := &http.Transport{
		DialContext:       dialer.DialContext,
		DisableKeepAlives: !opt.KeepAlive,
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   time.Duration(opt.RequestTimeoutSec) * time.Second,
	}

	return sdksss.New(sdksss.Options{
		Credentials:  creds,
		Region:       "us-east-1",
		BaseEndpoint: sdkaws.String(opt.Endpoint),
		EndpointOptions: sdksss.EndpointResolverOptions{
			DisableHTTPS: opt.Protocol == storage.ProtocolPlain,
		},
		HTTPClient:   httpClient,
		UsePathStyle: true,
	})
}

func keepAliveInterval(enabled bool) time.Duration {
	if enabled {
		return 30 * time.Second
	}
	return -1
}
