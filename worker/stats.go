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

package worker

import (
	libatm "github.com/nabbar/s3loadgen/atomic"
)

// ThreadStats is owned exclusively by one worker: only that worker's
// goroutine ever calls an Incr*/Add* method. The Monitor only Loads, never
// Stores, and tolerates torn reads; the atomic.Value[T] wrapper makes that
// load/store explicit rather than implicit struct-field access.
type ThreadStats struct {
	Success           libatm.Value[int64]
	Fail403           libatm.Value[int64]
	Fail404           libatm.Value[int64]
	Fail409           libatm.Value[int64]
	Fail4xxOther      libatm.Value[int64]
	Fail5xx           libatm.Value[int64]
	FailOther         libatm.Value[int64]
	FailValidation    libatm.Value[int64]
	TotalSuccessBytes libatm.Value[int64]
	TotalLatencyMs    libatm.Value[int64]
	MinLatencyMs      libatm.Value[int64]
	MaxLatencyMs      libatm.Value[int64]
}

// NewThreadStats allocates a ready-to-use ThreadStats with every counter at
// its zero value, MinLatencyMs seeded so the first sample always wins the
// comparison in Observe.
func NewThreadStats() *ThreadStats {
	s := &ThreadStats{
		Success:           libatm.NewValue[int64](),
		Fail403:           libatm.NewValue[int64](),
		Fail404:           libatm.NewValue[int64](),
		Fail409:           libatm.NewValue[int64](),
		Fail4xxOther:      libatm.NewValue[int64](),
		Fail5xx:           libatm.NewValue[int64](),
		FailOther:         libatm.NewValue[int64](),
		FailValidation:    libatm.NewValue[int64](),
		TotalSuccessBytes: libatm.NewValue[int64](),
		TotalLatencyMs:    libatm.NewValue[int64](),
		MinLatencyMs:      libatm.NewValue[int64](),
		MaxLatencyMs:      libatm.NewValue[int64](),
	}
	s.MinLatencyMs.SetDefaultLoad(-1)
	return s
}

func (s *ThreadStats) incr(v libatm.Value[int64]) {
	v.Store(v.Load() + 1)
}

// IncrFailValidation implements adapter.ValidationCounter.
func (s *ThreadStats) IncrFailValidation() {
	s.incr(s.FailValidation)
}

// AddSuccessBytes adds n to TotalSuccessBytes; used for both the PUT-side
// accounting (planned size, done by the Worker) and the GET-side accounting
// (delivered bytes).
func (s *ThreadStats) AddSuccessBytes(n int64) {
	s.TotalSuccessBytes.Store(s.TotalSuccessBytes.Load() + n)
}

// Observe records one completed operation's latency and terminal class,
// incrementing exactly one of the partition counters.
func (s *ThreadStats) Observe(class int, latencyMs int64) {
	s.TotalLatencyMs.Store(s.TotalLatencyMs.Load() + latencyMs)

	if min := s.MinLatencyMs.Load(); min < 0 || latencyMs < min {
		s.MinLatencyMs.Store(latencyMs)
	}
	if latencyMs > s.MaxLatencyMs.Load() {
		s.MaxLatencyMs.Store(latencyMs)
	}

	switch class {
	case 200, 204, 206:
		s.incr(s.Success)
	case 403:
		s.incr(s.Fail403)
	case 404:
		s.incr(s.Fail404)
	case 409:
		s.incr(s.Fail409)
	case 400:
		s.incr(s.Fail4xxOther)
	case 500:
		s.incr(s.Fail5xx)
	default:
		s.incr(s.FailOther)
	}
}

// Totals is an instantaneous, unsynchronized snapshot of every counter. The
// Monitor calls Snapshot once per worker per sampling tick.
type Totals struct {
	Success           int64
	Fail403           int64
	Fail404           int64
	Fail409           int64
	Fail4xxOther      int64
	Fail5xx           int64
	FailOther         int64
	FailValidation    int64
	TotalSuccessBytes int64
}

// Snapshot reads every counter without synchronization; the monitor
// tolerates slightly-stale values.
func (s *ThreadStats) Snapshot() Totals {
	return Totals{
		Success:           s.Success.Load(),
		Fail403:           s.Fail403.Load(),
		Fail404:           s.Fail404.Load(),
		Fail409:           s.Fail409.Load(),
		Fail4xxOther:      s.Fail4xxOther.Load(),
		Fail5xx:           s.Fail5xx.Load(),
		FailOther:         s.FailOther.Load(),
		FailValidation:    s.FailValidation.Load(),
		TotalSuccessBytes: s.TotalSuccessBytes.Load(),
	}
}

// CompletedCount is the sum of every terminal outcome, used by the Worker to
// test the requests_per_thread and mixed-mode quotas.
func (t Totals) CompletedCount() int64 {
	return t.Success + t.Fail403 + t.Fail404 + t.Fail409 + t.Fail4xxOther + t.Fail5xx + t.FailOther + t.FailValidation
}
