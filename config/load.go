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
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	libdur "github.com/nabbar/s3loadgen/duration"
	libsiz "github.com/nabbar/s3loadgen/size"
	"github.com/nabbar/s3loadgen/storage"
)

// raw mirrors the key=value file's keys before the dedicated parsers (object
// size, ranges, mix operation) and the bucket/worker-count derivations turn
// it into the immutable Config. Validation tags catch the constraints every
// run requires (Endpoint, Users>=1, ...).
type raw struct {
	Endpoint          string `mapstructure:"endpoint" validate:"required"`
	Protocol          string `mapstructure:"protocol"`
	KeepAlive         bool   `mapstructure:"keepalive"`
	ConnectTimeoutSec int    `mapstructure:"connecttimeoutsec" validate:"gte=0"`
	RequestTimeoutSec int    `mapstructure:"requesttimeoutsec" validate:"gte=0"`
	IsTemporaryToken  bool   `mapstructure:"istemporarytoken"`

	Users            int    `mapstructure:"users" validate:"gte=1"`
	ThreadsPerUser   int    `mapstructure:"threadsperuser" validate:"gte=1"`
	BucketNamePrefix string `mapstructure:"bucketnameprefix"`
	BucketNameFixed  string `mapstructure:"bucketnamefixed"`

	RequestsPerThread int    `mapstructure:"requestsperthread" validate:"gte=0"`
	TestCase          int    `mapstructure:"testcase"`
	RunSeconds        int64  `mapstructure:"runseconds" validate:"gte=0"`
	MixOperation      string `mapstructure:"mixoperation"`
	MixLoopCount      int    `mapstructure:"mixloopcount" validate:"gte=0"`

	ObjectSize         string `mapstructure:"objectsize" validate:"required"`
	PartSize           string `mapstructure:"partsize"`
	KeyPrefix          string `mapstructure:"keyprefix"`
	ObjNamePatternHash bool   `mapstructure:"objnamepatternhash"`
	Range              string `mapstructure:"range"`

	EnableDataValidation bool   `mapstructure:"enabledatavalidation"`
	EnableDetailLog      bool   `mapstructure:"enabledetaillog"`
	LogLevel             string `mapstructure:"loglevel"`
	EnableCheckpoint     bool   `mapstructure:"enablecheckpoint"`
	UploadFilePath       string `mapstructure:"uploadfilepath"`

	GmModeSwitch    bool   `mapstructure:"gmmodeswitch"`
	MutualSslSwitch bool   `mapstructure:"mutualsslswitch"`
	ServerCertPath  string `mapstructure:"servercertpath"`
	ClientSignCert  string `mapstructure:"clientsigncert"`
	ClientSignKey   string `mapstructure:"clientsignkey"`
	ClientEncCert   string `mapstructure:"clientenccert"`
	ClientEncKey    string `mapstructure:"clientenckey"`
	ClientKeyPass   string `mapstructure:"clientkeypass"`

	UsersFile string `mapstructure:"usersfile" validate:"required"`
}

// booleanish pre-normalizes the "true|1 case-insensitive" boolean grammar,
// which is stricter than viper's native bool cast (viper also accepts
// "yes"/"on" via strconv/cast); trimming and lower-casing here keeps the
// decoded value exactly within the documented grammar.
func booleanish(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "1" {
		return "true"
	}
	return v
}

// stripSectionHeaders drops bracketed section lines ("[section]"): the
// properties codec viper decodes key=value through has no notion of
// sections, so they are filtered before being handed to it.
func stripSectionHeaders(src []byte) []byte {
	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			continue
		}
		out.WriteString(sc.Text())
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// Load reads, decodes and validates the configuration file at path, then
// resolves it (plus the separate users file it names) into an immutable
// Config. testCaseOverride, when non-zero, overrides TestCase the way the
// CLI's single positional digit argument does.
func Load(path string, testCaseOverride int) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CodeReadFile.Error(err)
	}

	v := viper.New()
	v.SetConfigType("properties")

	normalized := normalizeBooleans(data)
	if err = v.ReadConfig(bytes.NewReader(stripSectionHeaders(normalized))); err != nil {
		return nil, CodeReadFile.Error(err)
	}

	r := raw{
		Protocol: "tls",
		LogLevel: "INFO",
		PartSize: "16MiB",
	}
	if err = v.Unmarshal(&r); err != nil {
		return nil, CodeDecode.Error(err)
	}

	if err = validator.New().Struct(&r); err != nil {
		return nil, CodeValidate.Error(err)
	}

	cfg, err := resolve(&r)
	if err != nil {
		return nil, err
	}

	if testCaseOverride != 0 {
		cfg.TestCase = testCaseOverride
	}

	return cfg, nil
}

// normalizeBooleans rewrites "key=Value" lines whose value looks like one of
// the boolean knobs to the canonical "true"/"false" spelling before the
// properties codec ever sees it.
func normalizeBooleans(src []byte) []byte {
	boolKeys := map[string]bool{
		"keepalive": true, "istemporarytoken": true, "objnamepatternhash": true,
		"enabledatavalidation": true, "enabledetaillog": true, "enablecheckpoint": true,
		"gmmodeswitch": true, "mutualsslswitch": true,
	}

	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, "=") {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		i := strings.IndexByte(trimmed, '=')
		key := strings.ToLower(strings.TrimSpace(trimmed[:i]))
		if !boolKeys[key] {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		val := strings.TrimSpace(trimmed[i+1:])
		out.WriteString(trimmed[:i])
		out.WriteByte('=')
		out.WriteString(booleanish(val))
		out.WriteByte('\n')
	}
	return out.Bytes()
}

func resolve(r *raw) (*Config, error) {
	objSize, err := ParseObjectSize(r.ObjectSize)
	if err != nil {
		return nil, err
	}

	ranges, err := ParseRanges(r.Range)
	if err != nil {
		return nil, err
	}

	var mix []int
	if r.TestCase == CaseMix {
		mix, err = ParseMixOperation(r.MixOperation)
		if err != nil {
			return nil, err
		}
	}

	partSize, err := libsiz.Parse(orDefault(r.PartSize, "16MiB"))
	if err != nil {
		return nil, CodeObjectSize.Error(err)
	}

	users, err := LoadUsers(r.UsersFile, r.IsTemporaryToken, r.Users)
	if err != nil {
		return nil, err
	}

	proto := storage.ProtocolTLS
	if strings.EqualFold(r.Protocol, "plain") || strings.EqualFold(r.Protocol, "plaintext") {
		proto = storage.ProtocolPlain
	}

	c := &Config{
		Endpoint:             r.Endpoint,
		Protocol:             proto,
		KeepAlive:            r.KeepAlive,
		ConnectTimeoutSec:    r.ConnectTimeoutSec,
		RequestTimeoutSec:    r.RequestTimeoutSec,
		IsTemporaryToken:     r.IsTemporaryToken,
		Users:                users,
		ThreadsPerUser:       r.ThreadsPerUser,
		BucketNamePrefix:     r.BucketNamePrefix,
		BucketNameFixed:      r.BucketNameFixed,
		RequestsPerThread:    r.RequestsPerThread,
		TestCase:             r.TestCase,
		RunSeconds:           libdur.Seconds(r.RunSeconds),
		MixOperation:         mix,
		MixLoopCount:         r.MixLoopCount,
		Size:                 objSize,
		PartSize:             partSize,
		KeyPrefix:            r.KeyPrefix,
		ObjNamePatternHash:   r.ObjNamePatternHash,
		Ranges:               ranges,
		EnableDataValidation: r.EnableDataValidation,
		EnableDetailLog:      r.EnableDetailLog,
		LogLevel:             strings.ToUpper(orDefault(r.LogLevel, "INFO")),
		EnableCheckpoint:     r.EnableCheckpoint,
		UploadFilePath:       r.UploadFilePath,
		GmModeSwitch:         r.GmModeSwitch,
		MutualSslSwitch:      r.MutualSslSwitch,
		ServerCertPath:       r.ServerCertPath,
		ClientSignCert:       r.ClientSignCert,
		ClientSignKey:        r.ClientSignKey,
		ClientEncCert:        r.ClientEncCert,
		ClientEncKey:         r.ClientEncKey,
		ClientKeyPass:        r.ClientKeyPass,
	}
	c.TotalWorkers = len(users) * r.ThreadsPerUser

	return c, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// ParseCLIArg interprets the single positional argument: an all-digit
// string overrides TestCase, anything else overrides the config path.
func ParseCLIArg(arg, defaultConfigPath string) (configPath string, testCaseOverride int) {
	if arg == "" {
		return defaultConfigPath, 0
	}
	if n, err := strconv.Atoi(arg); err == nil {
		return defaultConfigPath, n
	}
	return arg, 0
}
