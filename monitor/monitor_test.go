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

package monitor_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nabbar/s3loadgen/monitor"
	"github.com/nabbar/s3loadgen/worker"
)

func newTestWorker(t *testing.T, id int) *worker.Worker {
	t.Helper()
	w, err := worker.New(worker.Spec{WorkerID: id}, nil, new(atomic.Bool), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

// TestRunReturnsPromptlyOnShutdown covers the liveness property: the
// monitor must notice a shutdown flag flipped before it ever starts sampling
// and return immediately instead of blocking for a full SampleInterval.
func TestRunReturnsPromptlyOnShutdown(t *testing.T) {
	dir := t.TempDir()
	shutdown := new(atomic.Bool)
	shutdown.Store(true)

	w := newTestWorker(t, 0)
	m := monitor.New([]*worker.Worker{w}, dir, shutdown, 0, 0)

	done := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return promptly after shutdown was already set")
	}
}

// TestRunStopsOnQuota covers the count-bound progress mode: once the summed
// CompletedCount across workers reaches the configured quota, Run returns
// without needing the shutdown flag to be set by anyone else.
func TestRunStopsOnQuota(t *testing.T) {
	dir := t.TempDir()
	shutdown := new(atomic.Bool)

	w := newTestWorker(t, 0)
	w.Stats().Observe(200, 5) // one completed success, satisfies quota=1

	m := monitor.New([]*worker.Worker{w}, dir, shutdown, 0, 1)

	done := make(chan struct{})
	go func() {
		m.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop once the quota was already satisfied")
	}
}

// TestRunWritesRealtimeHeader covers the realtime.txt schema.
func TestRunWritesRealtimeHeader(t *testing.T) {
	dir := t.TempDir()
	shutdown := new(atomic.Bool)
	shutdown.Store(true)

	w := newTestWorker(t, 0)
	m := monitor.New([]*worker.Worker{w}, dir, shutdown, 0, 0)
	m.Run(context.Background())

	data, err := os.ReadFile(filepath.Join(dir, "realtime.txt"))
	if err != nil {
		t.Fatal(err)
	}

	first := strings.SplitN(string(data), "\n", 2)[0]
	want := "RunTime(s),Process(%),Cumul_TPS,Cumul_BW(MB/s),Success_Rate(%),Total_Reqs"
	if first != want {
		t.Fatalf("realtime.txt header = %q, want %q", first, want)
	}
}

// TestRunRespectsContextCancellation covers the responsive-shutdown
// requirement from the context side, not just the atomic flag.
func TestRunRespectsContextCancellation(t *testing.T) {
	dir := t.TempDir()
	shutdown := new(atomic.Bool)

	w := newTestWorker(t, 0)
	// never satisfies any quota or runSeconds bound on its own
	m := monitor.New([]*worker.Worker{w}, dir, shutdown, 0, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return promptly after context cancellation")
	}
}
