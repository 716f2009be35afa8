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

package context_test

import (
	"context"
	"testing"

	libctx "github.com/nabbar/s3loadgen/context"
)

func TestStoreLoadDelete(t *testing.T) {
	c := libctx.New[string](context.Background())
	c.Store("worker_id", 7)

	v, ok := c.Load("worker_id")
	if !ok || v.(int) != 7 {
		t.Fatalf("Load(worker_id) = %v,%v", v, ok)
	}

	c.Delete("worker_id")
	if _, ok = c.Load("worker_id"); ok {
		t.Fatal("Load after Delete should miss")
	}
}

func TestValueResolvesStoreThenParent(t *testing.T) {
	type parentKey struct{}
	parent := context.WithValue(context.Background(), parentKey{}, "from-parent")

	c := libctx.New[string](parent)
	c.Store("username", "alice")

	if got := c.Value("username"); got != "alice" {
		t.Fatalf("Value(username) = %v", got)
	}
	if got := c.Value(parentKey{}); got != "from-parent" {
		t.Fatalf("Value(parentKey) = %v, parent lookup broken", got)
	}
}

func TestCancellationPropagates(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	c := libctx.New[string](parent)

	cancel()

	select {
	case <-c.Done():
	default:
		t.Fatal("Done() should be closed after parent cancellation")
	}
	if c.Err() == nil {
		t.Fatal("Err() should be non-nil after cancellation")
	}
}

func TestWalkVisitsEveryPair(t *testing.T) {
	c := libctx.New[string](nil)
	c.Store("a", 1)
	c.Store("b", 2)

	seen := map[string]bool{}
	c.Walk(func(key string, _ interface{}) bool {
		seen[key] = true
		return true
	})

	if !seen["a"] || !seen["b"] {
		t.Fatalf("Walk missed keys: %v", seen)
	}
}
