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

package logger_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liblog "github.com/nabbar/s3loadgen/logger"
)

var _ = Describe("ParseLevel", func() {
	It("accepts full names and short codes case-insensitively", func() {
		Expect(liblog.ParseLevel("DEBUG")).To(Equal(liblog.DebugLevel))
		Expect(liblog.ParseLevel("warn")).To(Equal(liblog.WarnLevel))
		Expect(liblog.ParseLevel("critical")).To(Equal(liblog.PanicLevel))
		Expect(liblog.ParseLevel("err")).To(Equal(liblog.ErrorLevel))
	})

	It("falls back to InfoLevel for unknown input", func() {
		Expect(liblog.ParseLevel("nonsense")).To(Equal(liblog.InfoLevel))
	})
})

var _ = Describe("Logger", func() {
	var (
		dir  string
		file string
		log  liblog.Logger
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		file = filepath.Join(dir, "sub", "engine.log")
		log = liblog.New(context.Background())
	})

	AfterEach(func() {
		Expect(log.Close()).To(Succeed())
	})

	newFileOptions := func(levels ...string) *liblog.Options {
		return &liblog.Options{
			LogFile: []liblog.OptionsFile{{
				Filepath:   file,
				Create:     true,
				CreatePath: true,
				LogLevel:   levels,
			}},
		}
	}

	It("creates the log file path and writes entries with fields", func() {
		Expect(log.SetOptions(newFileOptions())).To(Succeed())

		log.Info("request issued", map[string]interface{}{"worker_id": 3, "op": "PUT"})
		Expect(log.Close()).To(Succeed())

		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("request issued"))
		Expect(string(data)).To(ContainSubstring("worker_id=3"))
		Expect(string(data)).To(ContainSubstring("op=PUT"))
	})

	It("filters entries below the severity threshold", func() {
		Expect(log.SetOptions(newFileOptions())).To(Succeed())
		log.SetLevel(liblog.WarnLevel)

		log.Debug("too quiet", nil)
		log.Warning("loud enough", nil)
		Expect(log.Close()).To(Succeed())

		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).ToNot(ContainSubstring("too quiet"))
		Expect(string(data)).To(ContainSubstring("loud enough"))
	})

	It("mutes everything at NilLevel", func() {
		Expect(log.SetOptions(newFileOptions())).To(Succeed())
		log.SetLevel(liblog.NilLevel)

		log.Error("should vanish", nil)
		Expect(log.Close()).To(Succeed())

		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).ToNot(ContainSubstring("should vanish"))
	})

	It("honors the per-file level filter", func() {
		Expect(log.SetOptions(newFileOptions("error"))).To(Succeed())
		log.SetLevel(liblog.DebugLevel)

		log.Info("not for this file", nil)
		log.Error("for this file", nil)
		Expect(log.Close()).To(Succeed())

		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).ToNot(ContainSubstring("not for this file"))
		Expect(string(data)).To(ContainSubstring("for this file"))
	})

	It("renders an error datum as an error field", func() {
		Expect(log.SetOptions(newFileOptions())).To(Succeed())

		log.Error("operation failed", os.ErrPermission)
		Expect(log.Close()).To(Succeed())

		data, err := os.ReadFile(file)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("permission denied"))
	})

	It("clones options so callers cannot mutate the live set", func() {
		Expect(log.SetOptions(newFileOptions())).To(Succeed())

		got := log.GetOptions()
		got.LogFile[0].Filepath = "elsewhere"

		Expect(log.GetOptions().LogFile[0].Filepath).To(Equal(file))
	})
})
