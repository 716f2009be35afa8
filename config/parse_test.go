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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nabbar/s3loadgen/config"
	"github.com/nabbar/s3loadgen/storage"
)

func TestParseObjectSizeFixed(t *testing.T) {
	got, err := config.ParseObjectSize("65536")
	if err != nil {
		t.Fatal(err)
	}
	if got.Min != 65536 || got.Max != 65536 || !got.Fixed() {
		t.Fatalf("ParseObjectSize(65536) = %+v", got)
	}
}

func TestParseObjectSizeRange(t *testing.T) {
	got, err := config.ParseObjectSize("1024~4096")
	if err != nil {
		t.Fatal(err)
	}
	if got.Min != 1024 || got.Max != 4096 {
		t.Fatalf("ParseObjectSize(1024~4096) = %+v", got)
	}

	// swapped bounds are normalized, not rejected
	got, err = config.ParseObjectSize("4096~1024")
	if err != nil {
		t.Fatal(err)
	}
	if got.Min != 1024 || got.Max != 4096 {
		t.Fatalf("ParseObjectSize(4096~1024) = %+v", got)
	}
}

func TestParseObjectSizeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "12~", "~12"} {
		if _, err := config.ParseObjectSize(in); err == nil {
			t.Fatalf("ParseObjectSize(%q) should fail", in)
		}
	}
}

func TestParseRangesForms(t *testing.T) {
	got, err := config.ParseRanges("0-1023;1024-;-1023")
	if err != nil {
		t.Fatal(err)
	}

	want := []storage.Range{
		{Start: 0, Count: 1024, Anchor: 0},
		{Start: 1024, Count: 0, Anchor: 1024},
		{Start: 0, Count: 1024, Anchor: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseRanges returned %d ranges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseRangesEmpty(t *testing.T) {
	got, err := config.ParseRanges("  ")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil ranges for blank input, got %+v", got)
	}
}

func TestParseMixOperation(t *testing.T) {
	got, err := config.ParseMixOperation("201, 202,204")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 201 || got[1] != 202 || got[2] != 204 {
		t.Fatalf("ParseMixOperation = %v", got)
	}
}

func TestParseMixOperationRejectsMixCode(t *testing.T) {
	if _, err := config.ParseMixOperation("201,900"); err == nil {
		t.Fatal("ParseMixOperation should reject the mix code itself")
	}
}

func TestBucketForPrecedence(t *testing.T) {
	u := config.UserCredential{AccessKey: "AKIAEXAMPLE"}

	cases := []struct {
		fixed, prefix, want string
	}{
		{"static-bucket", "pfx", "static-bucket"},
		{"", "pfx", "akiaexample.pfx"},
		{"", "", "akiaexample"},
	}
	for _, c := range cases {
		cfg := &config.Config{BucketNameFixed: c.fixed, BucketNamePrefix: c.prefix}
		if got := cfg.BucketFor(u); got != c.want {
			t.Fatalf("BucketFor(fixed=%q,prefix=%q) = %q, want %q", c.fixed, c.prefix, got, c.want)
		}
	}

	cfg := &config.Config{}
	if got := cfg.BucketFor(config.UserCredential{}); got != config.DefaultBucketName {
		t.Fatalf("BucketFor with everything empty = %q, want %q", got, config.DefaultBucketName)
	}
}

func TestParseCLIArg(t *testing.T) {
	path, tc := config.ParseCLIArg("202", "default.conf")
	if path != "default.conf" || tc != 202 {
		t.Fatalf("digit arg: path=%q tc=%d", path, tc)
	}

	path, tc = config.ParseCLIArg("/etc/loadgen.conf", "default.conf")
	if path != "/etc/loadgen.conf" || tc != 0 {
		t.Fatalf("path arg: path=%q tc=%d", path, tc)
	}

	path, tc = config.ParseCLIArg("", "default.conf")
	if path != "default.conf" || tc != 0 {
		t.Fatalf("no arg: path=%q tc=%d", path, tc)
	}
}

func writeTempUsers(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "users.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadUsersNormal(t *testing.T) {
	p := writeTempUsers(t, "# header comment\nalice,AK1,SK1\n\nbob, AK2 , SK2\n")

	users, err := config.LoadUsers(p, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Username != "alice" || users[0].AccessKey != "AK1" || users[0].OriginalAccessKey != "AK1" {
		t.Fatalf("users[0] = %+v", users[0])
	}
	if users[1].SecretKey != "SK2" {
		t.Fatalf("users[1] = %+v (fields should be trimmed)", users[1])
	}
}

func TestLoadUsersTemporary(t *testing.T) {
	p := writeTempUsers(t, "alice,AKT,SKT,TOKEN,AKORIG\n")

	users, err := config.LoadUsers(p, true, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 {
		t.Fatalf("got %d users, want 1", len(users))
	}
	u := users[0]
	if u.Token != "TOKEN" || u.OriginalAccessKey != "AKORIG" {
		t.Fatalf("temporary user = %+v", u)
	}
}

func TestLoadUsersLimit(t *testing.T) {
	p := writeTempUsers(t, "a,1,1\nb,2,2\nc,3,3\n")

	users, err := config.LoadUsers(p, false, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2 (capped)", len(users))
	}
}

func TestLoadUsersMalformedLine(t *testing.T) {
	p := writeTempUsers(t, "alice,onlytwo\n")
	if _, err := config.LoadUsers(p, false, 0); err == nil {
		t.Fatal("expected error for malformed line")
	}
}
