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

package atomic_test

import (
	"sync"
	"testing"

	libatm "github.com/nabbar/s3loadgen/atomic"
)

func TestValueZeroBeforeStore(t *testing.T) {
	v := libatm.NewValue[int64]()
	if got := v.Load(); got != 0 {
		t.Fatalf("Load() before Store = %d, want 0", got)
	}
}

func TestValueDefaultLoad(t *testing.T) {
	v := libatm.NewValue[int64]()
	v.SetDefaultLoad(-1)

	if got := v.Load(); got != -1 {
		t.Fatalf("Load() with default = %d, want -1", got)
	}

	v.Store(0)
	if got := v.Load(); got != 0 {
		t.Fatalf("Load() after Store(0) = %d, want 0 (default only applies before first Store)", got)
	}
}

func TestValueStoreLoadSwap(t *testing.T) {
	v := libatm.NewValue[string]()
	v.Store("a")

	if got := v.Swap("b"); got != "a" {
		t.Fatalf("Swap returned %q, want a", got)
	}
	if got := v.Load(); got != "b" {
		t.Fatalf("Load after Swap = %q, want b", got)
	}
}

func TestValueCompareAndSwap(t *testing.T) {
	v := libatm.NewValue[int64]()
	v.Store(1)

	if !v.CompareAndSwap(1, 2) {
		t.Fatal("CompareAndSwap(1,2) should succeed")
	}
	if v.CompareAndSwap(1, 3) {
		t.Fatal("CompareAndSwap(1,3) should fail after value moved to 2")
	}
}

// TestValueConcurrentReaders mirrors the engine's single-writer,
// concurrent-reader counter usage.
func TestValueConcurrentReaders(t *testing.T) {
	v := libatm.NewValue[int64]()

	var wg sync.WaitGroup
	stop := libatm.NewValue[bool]()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int64(1); i <= 1000; i++ {
			v.Store(i)
		}
		stop.Store(true)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var last int64
			for !stop.Load() {
				cur := v.Load()
				if cur < last {
					t.Errorf("value went backwards: %d after %d", cur, last)
					return
				}
				last = cur
			}
		}()
	}

	wg.Wait()
}

func TestMapAny(t *testing.T) {
	m := libatm.NewMapAny[string]()
	m.Store("k", 42)

	if v, ok := m.Load("k"); !ok || v.(int) != 42 {
		t.Fatalf("Load(k) = %v,%v", v, ok)
	}

	seen := 0
	m.Range(func(key string, value any) bool {
		seen++
		return true
	})
	if seen != 1 {
		t.Fatalf("Range visited %d entries, want 1", seen)
	}

	m.Delete("k")
	if _, ok := m.Load("k"); ok {
		t.Fatal("Load after Delete should miss")
	}
}
