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

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nabbar/s3loadgen/worker"
)

// TestObservePartitionsExactlyOnce covers the partition invariant: every Observe
// call increments exactly one partition counter, so CompletedCount always
// equals the number of Observe calls.
func TestObservePartitionsExactlyOnce(t *testing.T) {
	classes := []int{200, 204, 206, 403, 404, 409, 400, 500, 499}
	s := worker.NewThreadStats()

	for i, c := range classes {
		s.Observe(c, int64(i+1))
	}

	got := s.Snapshot()
	if want := int64(len(classes)); got.CompletedCount() != want {
		t.Fatalf("CompletedCount() = %d, want %d", got.CompletedCount(), want)
	}
	if got.Success != 3 {
		t.Fatalf("Success = %d, want 3 (200/204/206)", got.Success)
	}
	if got.Fail403 != 1 || got.Fail404 != 1 || got.Fail409 != 1 {
		t.Fatalf("expected exactly one each of 403/404/409, got %+v", got)
	}
	if got.Fail4xxOther != 1 {
		t.Fatalf("Fail4xxOther = %d, want 1 (400)", got.Fail4xxOther)
	}
	if got.Fail5xx != 1 {
		t.Fatalf("Fail5xx = %d, want 1", got.Fail5xx)
	}
	if got.FailOther != 1 {
		t.Fatalf("FailOther = %d, want 1 (499 falls to default)", got.FailOther)
	}
}

// TestAddSuccessBytesAccumulates covers byte accounting for both PUT-side
// (planned size) and GET-side (delivered bytes) callers.
func TestAddSuccessBytesAccumulates(t *testing.T) {
	s := worker.NewThreadStats()
	s.AddSuccessBytes(100)
	s.AddSuccessBytes(250)

	if got := s.Snapshot().TotalSuccessBytes; got != 350 {
		t.Fatalf("TotalSuccessBytes = %d, want 350", got)
	}
}

// TestFailValidationDoesNotDoubleCount covers the worker.go contract that a
// validation failure is counted once, by the adapter's IncrFailValidation,
// never by Observe as well.
func TestFailValidationDoesNotDoubleCount(t *testing.T) {
	s := worker.NewThreadStats()
	s.IncrFailValidation()

	got := s.Snapshot()
	if got.FailValidation != 1 {
		t.Fatalf("FailValidation = %d, want 1", got.FailValidation)
	}
	if got.CompletedCount() != 1 {
		t.Fatalf("CompletedCount() = %d, want 1", got.CompletedCount())
	}
}

// TestSynthesizeKeyDeterministic covers the deterministic-keys property:
// identical inputs always produce the identical key, for both the hashed and
// unhashed forms.
func TestSynthesizeKeyDeterministic(t *testing.T) {
	for _, hashed := range []bool{false, true} {
		a := worker.SynthesizeKey("alice", "loadtest", 3, 42, hashed)
		b := worker.SynthesizeKey("alice", "loadtest", 3, 42, hashed)
		if a != b {
			t.Fatalf("SynthesizeKey not deterministic (hashed=%v): %q != %q", hashed, a, b)
		}
	}
}

func TestSynthesizeKeyHashedPrefix(t *testing.T) {
	plain := worker.SynthesizeKey("alice", "loadtest", 3, 42, false)
	hashed := worker.SynthesizeKey("alice", "loadtest", 3, 42, true)

	if len(hashed) != len(plain)+4 {
		t.Fatalf("hashed key length = %d, want %d (plain + 4-digit prefix)", len(hashed), len(plain)+4)
	}
	if hashed[4:] != plain {
		t.Fatalf("hashed key suffix = %q, want %q", hashed[4:], plain)
	}
}

// TestSelectMixIndexAlgebra covers the mixed-mode index algebra: operations
// cycle through mixOps once per requests_per_thread block, and the per-object
// sequence advances once per full pass over mixOps (so PUT/GET/DELETE issued
// at the same position share a key).
func TestSelectMixIndexAlgebra(t *testing.T) {
	mixOps := []int{201, 202, 204} // PUT, GET, DELETE
	const perThread = int64(5)

	for k := int64(0); k < perThread*int64(len(mixOps))*2; k++ {
		sel := worker.SelectMix(k, perThread, mixOps)

		block := k / perThread
		wantOp := mixOps[block%int64(len(mixOps))]
		if sel.OpCode != wantOp {
			t.Fatalf("k=%d: OpCode = %d, want %d", k, sel.OpCode, wantOp)
		}
	}

	// The first operation of every block in the same loop pass shares a
	// sequence with the first operation of the next block.
	first := worker.SelectMix(0, perThread, mixOps)
	second := worker.SelectMix(perThread, perThread, mixOps)
	if first.Sequence != second.Sequence {
		t.Fatalf("cross-op sequence mismatch: %d != %d", first.Sequence, second.Sequence)
	}
}

// TestRunStopsAtDeadline checks the time-bound termination condition: a
// worker whose deadline already passed issues no requests at all.
func TestRunStopsAtDeadline(t *testing.T) {
	w, err := worker.New(worker.Spec{
		WorkerID:          1,
		TestCase:          201,
		RequestsPerThread: 100,
		Deadline:          time.Now().Add(-time.Second),
	}, nil, new(atomic.Bool), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not observe the expired deadline")
	}

	if got := w.Stats().Snapshot().CompletedCount(); got != 0 {
		t.Fatalf("CompletedCount = %d, want 0", got)
	}
}

func TestSelectMixAdvancesLoop(t *testing.T) {
	mixOps := []int{201, 202}
	const perThread = int64(3)

	loop0 := worker.SelectMix(0, perThread, mixOps)
	loop1 := worker.SelectMix(perThread*int64(len(mixOps)), perThread, mixOps)

	if loop1.Sequence <= loop0.Sequence {
		t.Fatalf("expected second loop's sequence to advance past the first: %d <= %d", loop1.Sequence, loop0.Sequence)
	}
}
