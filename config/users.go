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

import (
	"bufio"
	"os"
	"strings"
)

// LoadUsers reads the credentials file: normal mode is
// "username,ak,sk" per line; temporary mode is
// "username,ak,sk,token,original_ak". Comments ('#'-prefixed) and blank lines
// are skipped. Reading stops once limit entries have been collected (limit<=0
// means unbounded).
func LoadUsers(path string, temporary bool, limit int) ([]UserCredential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CodeUsersFile.Error(err)
	}
	defer func() { _ = f.Close() }()

	var out []UserCredential

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if limit > 0 && len(out) >= limit {
			break
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		if temporary {
			if len(fields) < 5 {
				return nil, CodeUsersLine.Error()
			}
			out = append(out, UserCredential{
				Username:          fields[0],
				AccessKey:         fields[1],
				SecretKey:         fields[2],
				Token:             fields[3],
				OriginalAccessKey: fields[4],
			})
			continue
		}

		if len(fields) < 3 {
			return nil, CodeUsersLine.Error()
		}
		out = append(out, UserCredential{
			Username:          fields[0],
			AccessKey:         fields[1],
			SecretKey:         fields[2],
			OriginalAccessKey: fields[1],
		})
	}

	if err := sc.Err(); err != nil {
		return nil, CodeUsersFile.Error(err)
	}

	return out, nil
}
