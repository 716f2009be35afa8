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

package config

import "strings"

// DefaultBucketName is the sentinel bucket used when neither a fixed name nor
// a usable prefix/access-key pair is configured.
const DefaultBucketName = "s3loadgen"

// BucketFor computes the bucket bound to one user: a fixed name
// always wins; otherwise "{lowercase-access-key}.{prefix}", with either side
// dropped if empty, falling back to DefaultBucketName if both are empty.
func (c *Config) BucketFor(u UserCredential) string {
	if c.BucketNameFixed != "" {
		return c.BucketNameFixed
	}

	ak := strings.ToLower(u.AccessKey)
	prefix := c.BucketNamePrefix

	switch {
	case ak != "" && prefix != "":
		return ak + "." + prefix
	case ak != "":
		return ak
	case prefix != "":
		return prefix
	default:
		return DefaultBucketName
	}
}
