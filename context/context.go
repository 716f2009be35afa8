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

// Package context provides a typed-key config context: a context.Context that
// also carries a small mutable key/value store. The engine binds each
// worker's identity (worker_id, username) into one so log calls made deep in
// the request path can read the identity back without threading it by hand.
package context

import (
	"context"
	"time"

	libatm "github.com/nabbar/s3loadgen/atomic"
)

// FuncWalk visits one stored key/value pair; returning false stops the walk.
type FuncWalk[T comparable] func(key T, val interface{}) bool

// Config is a context.Context carrying a typed-key store. Stored values are
// also visible through the standard Value lookup, checked before the parent
// context's own values.
type Config[T comparable] interface {
	context.Context

	// Store sets the value for key, replacing any previous one.
	Store(key T, cfg interface{})
	// Load returns the value for key and whether it was present.
	Load(key T) (val interface{}, ok bool)
	// Delete removes key from the store.
	Delete(key T)
	// Walk visits every stored pair in unspecified order.
	Walk(fct FuncWalk[T])
}

// New wraps ctx (context.Background when nil) with an empty store.
func New[T comparable](ctx context.Context) Config[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ccx[T]{
		m: libatm.NewMapAny[T](),
		x: ctx,
	}
}

type ccx[T comparable] struct {
	m libatm.Map[T]
	x context.Context
}

func (o *ccx[T]) Store(key T, cfg interface{}) {
	o.m.Store(key, cfg)
}

func (o *ccx[T]) Load(key T) (interface{}, bool) {
	return o.m.Load(key)
}

func (o *ccx[T]) Delete(key T) {
	o.m.Delete(key)
}

func (o *ccx[T]) Walk(fct FuncWalk[T]) {
	o.m.Range(func(key T, value any) bool {
		return fct(key, value)
	})
}

func (o *ccx[T]) Deadline() (time.Time, bool) {
	return o.x.Deadline()
}

func (o *ccx[T]) Done() <-chan struct{} {
	return o.x.Done()
}

func (o *ccx[T]) Err() error {
	return o.x.Err()
}

// Value resolves typed keys against the store first, then falls back to the
// wrapped context.
func (o *ccx[T]) Value(key any) any {
	if k, ok := key.(T); ok {
		if v, found := o.m.Load(k); found {
			return v
		}
	}
	return o.x.Value(key)
}
