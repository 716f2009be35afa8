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

package errors_test

import (
	goerr "errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	liberr "github.com/nabbar/s3loadgen/errors"
)

const testCode liberr.CodeError = liberr.MinAvailable + 10

func init() {
	liberr.RegisterIdFctMessage(testCode, func(code liberr.CodeError) string {
		if code == testCode {
			return "test condition"
		}
		return liberr.UnknownMessage
	})
}

var _ = Describe("CodeError", func() {
	It("resolves a registered message", func() {
		Expect(testCode.Message()).To(Equal("test condition"))
		Expect(liberr.ExistInMapMessage(testCode)).To(BeTrue())
	})

	It("falls back to the unknown message for unregistered codes", func() {
		Expect(liberr.CodeError(9999).Message()).To(Equal(liberr.UnknownMessage))
	})

	It("renders the code and message through Error", func() {
		e := testCode.Error()
		Expect(e.Code()).To(Equal(testCode.Uint16()))
		Expect(e.Error()).To(ContainSubstring("test condition"))
		Expect(e.Error()).To(ContainSubstring(fmt.Sprintf("#%d", testCode.Int())))
	})

	It("returns nil from IfError when every parent is nil", func() {
		Expect(testCode.IfError(nil, nil)).To(BeNil())
		Expect(testCode.IfError(goerr.New("boom"))).ToNot(BeNil())
	})
})

var _ = Describe("Error chain", func() {
	It("carries and exposes its parents", func() {
		cause := goerr.New("root cause")
		e := liberr.New(testCode.Uint16(), "wrapped", cause)

		Expect(e.Parents()).To(HaveLen(1))
		Expect(goerr.Is(e, cause)).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("root cause"))
	})

	It("accumulates parents through Add", func() {
		e := liberr.New(testCode.Uint16(), "wrapped")
		e.Add(goerr.New("later"), nil)
		Expect(e.Parents()).To(HaveLen(1))
	})

	It("folds maybe-nil errors with MakeIfError", func() {
		Expect(liberr.MakeIfError(nil, nil)).To(BeNil())

		e := liberr.MakeIfError(nil, goerr.New("a"), goerr.New("b"))
		Expect(e).ToNot(BeNil())
		Expect(e.Error()).To(ContainSubstring("a"))
		Expect(e.Error()).To(ContainSubstring("b"))
	})

	It("stamps the creating call site", func() {
		e := liberr.New(1, "located")
		Expect(e.Error()).To(MatchRegexp(`\(errors_test\.go:\d+\)`))
	})
})
