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

// Package monitor is the periodic cross-worker sampler: every
// worker's ThreadStats is read without synchronization, summed, and reported
// both to a realtime.txt CSV and a single stdout status line, on a fixed
// interval but with a much finer sleep granularity so shutdown is noticed
// quickly.
package monitor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/nabbar/s3loadgen/console"
	"github.com/nabbar/s3loadgen/worker"
)

// SampleInterval is the default period between two samples.
const SampleInterval = 3 * time.Second

// sleepGranularity bounds how long the monitor can be blocked past a
// shutdown request.
const sleepGranularity = 100 * time.Millisecond

// Monitor periodically sums every worker's Totals and renders progress,
// either by elapsed time (RunSeconds>0) or by completed-operation count
// (TotalOperations()>0).
type Monitor struct {
	workers    []*worker.Worker
	dir        string
	interval   time.Duration
	shutdown   *atomic.Bool
	start      time.Time
	runSeconds int64
	quota      int64
}

// New builds a Monitor over the given workers. runSeconds==0 means the run is
// quota-bound instead of time-bound; quota==0 means the reverse.
func New(workers []*worker.Worker, dir string, shutdown *atomic.Bool, runSeconds, quota int64) *Monitor {
	return &Monitor{
		workers:    workers,
		dir:        dir,
		interval:   SampleInterval,
		shutdown:   shutdown,
		runSeconds: runSeconds,
		quota:      quota,
	}
}

// Run samples every interval until shutdown is requested or, in time-bound
// mode, runSeconds elapses (at which point it flips shutdown itself so
// workers stop on their own next quota check).
func (m *Monitor) Run(ctx context.Context) {
	m.start = time.Now()

	rt, err := os.OpenFile(filepath.Join(m.dir, "realtime.txt"), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		console.ColorWarn.Printf("monitor: cannot open realtime.txt: %v\n", err)
	} else {
		defer func() { _ = rt.Close() }()
		fmt.Fprintln(rt, "RunTime(s),Process(%),Cumul_TPS,Cumul_BW(MB/s),Success_Rate(%),Total_Reqs")
	}

	for {
		elapsed := time.Since(m.start)
		t := m.sample()

		m.emitRow(rt, t, elapsed)
		m.printLine(t, elapsed)

		if m.shutdown.Load() {
			return
		}
		if m.runSeconds > 0 && elapsed >= time.Duration(m.runSeconds)*time.Second {
			m.shutdown.Store(true)
			return
		}
		if m.quota > 0 && t.CompletedCount() >= m.quota {
			return
		}

		if !m.sleepOrShutdown(ctx) {
			// one last row so the series covers the run up to the stop
			// instant, not just the last full interval.
			elapsed = time.Since(m.start)
			t = m.sample()
			m.emitRow(rt, t, elapsed)
			m.printLine(t, elapsed)
			return
		}
	}
}

// emitRow appends one realtime.txt CSV row; rt is nil when the open failed at
// startup (the stream degrades silently).
func (m *Monitor) emitRow(rt *os.File, t worker.Totals, elapsed time.Duration) {
	if rt == nil {
		return
	}
	fmt.Fprintf(rt, "%.0f,%.1f,%.2f,%.2f,%.1f,%d\n",
		elapsed.Seconds(), m.progressPct(t, elapsed), m.cumulTPS(t, elapsed),
		m.cumulBandwidthMB(t, elapsed), successRate(t), t.CompletedCount())
}

// sample sums every worker's current snapshot. Reads are unsynchronized by
// design: a torn read here is at most one tick stale.
func (m *Monitor) sample() worker.Totals {
	var t worker.Totals
	for _, w := range m.workers {
		s := w.Stats().Snapshot()
		t.Success += s.Success
		t.Fail403 += s.Fail403
		t.Fail404 += s.Fail404
		t.Fail409 += s.Fail409
		t.Fail4xxOther += s.Fail4xxOther
		t.Fail5xx += s.Fail5xx
		t.FailOther += s.FailOther
		t.FailValidation += s.FailValidation
		t.TotalSuccessBytes += s.TotalSuccessBytes
	}
	return t
}

// printLine renders the single stdout status line, using
// progress-by-time when runSeconds bounds the run and progress-by-count
// otherwise.
func (m *Monitor) printLine(t worker.Totals, elapsed time.Duration) {
	console.ColorPrint.Printf(
		"[%6.0fs] progress=%.0f%% tps=%.2f bw=%.2fMB/s ok=%d 4xx=%d 5xx=%d other=%d validation=%d\n",
		elapsed.Seconds(), m.progressPct(t, elapsed), m.cumulTPS(t, elapsed), m.cumulBandwidthMB(t, elapsed),
		t.Success, t.Fail403+t.Fail404+t.Fail409+t.Fail4xxOther, t.Fail5xx, t.FailOther, t.FailValidation,
	)
}

// progressPct reports completion against whichever bound governs the run:
// elapsed time when RunSeconds>0, completed-operation count otherwise.
func (m *Monitor) progressPct(t worker.Totals, elapsed time.Duration) float64 {
	switch {
	case m.runSeconds > 0:
		return 100 * elapsed.Seconds() / float64(m.runSeconds)
	case m.quota > 0:
		return 100 * float64(t.CompletedCount()) / float64(m.quota)
	default:
		return 0
	}
}

// cumulTPS is the cumulative completed-operations-per-second since start.
func (m *Monitor) cumulTPS(t worker.Totals, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(t.CompletedCount()) / elapsed.Seconds()
}

// cumulBandwidthMB is the cumulative successful-transfer bandwidth in MB/s.
func (m *Monitor) cumulBandwidthMB(t worker.Totals, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(t.TotalSuccessBytes) / elapsed.Seconds() / 1e6
}

// successRate is the share of completed operations classified as success.
func successRate(t worker.Totals) float64 {
	c := t.CompletedCount()
	if c == 0 {
		return 0
	}
	return 100 * float64(t.Success) / float64(c)
}

// sleepOrShutdown sleeps in sleepGranularity increments up to interval,
// returning false the instant shutdown flips or ctx is cancelled so the
// monitor reacts within sleepGranularity instead of a full interval.
func (m *Monitor) sleepOrShutdown(ctx context.Context) bool {
	deadline := time.Now().Add(m.interval)
	for time.Now().Before(deadline) {
		if m.shutdown.Load() {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(sleepGranularity):
		}
	}
	return true
}
