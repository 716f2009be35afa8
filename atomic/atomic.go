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

// Package atomic wraps sync/atomic with type-safe generics. Value[T] is used
// for every per-worker counter: the owner Stores, other goroutines Load, and
// neither side ever needs a cast or a mutex.
package atomic

// Value is a typed atomic cell.
type Value[T any] interface {
	// Load returns the stored value, or the default-load value (zero unless
	// changed by SetDefaultLoad) before the first Store.
	Load() T
	// Store replaces the stored value.
	Store(val T)
	// Swap stores new and returns the previous value.
	Swap(new T) (old T)
	// CompareAndSwap stores new if the current value equals old. T must be
	// comparable for this to succeed.
	CompareAndSwap(old, new T) (swapped bool)

	// SetDefaultLoad changes what Load returns before the first Store.
	SetDefaultLoad(def T)
}

// Map is a typed-key concurrent map over untyped values.
type Map[K comparable] interface {
	Load(key K) (value any, ok bool)
	Store(key K, value any)
	Delete(key K)
	Range(fct func(key K, value any) bool)
}

// NewValue returns an empty Value whose default-load is T's zero value.
func NewValue[T any]() Value[T] {
	return &val[T]{}
}

// NewMapAny returns an empty Map keyed by K.
func NewMapAny[K comparable]() Map[K] {
	return &ma[K]{}
}
