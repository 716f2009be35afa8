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

// Package worker is the per-(user,slot) request loop: it owns one
// pattern.Source, one ThreadStats block and one Adapter, and drives requests
// one at a time until its quota is met or shutdown is requested. No two
// workers ever share a pattern buffer or a counter block.
package worker

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/nabbar/s3loadgen/adapter"
	libctx "github.com/nabbar/s3loadgen/context"
	"github.com/nabbar/s3loadgen/logger"
	"github.com/nabbar/s3loadgen/pattern"
	"github.com/nabbar/s3loadgen/storage"
)

// errorDampDelay is the pause after a non-success outcome: enough to
// de-pace a tight error-storm retry loop, not so long it masks throughput
// measurement over a real run.
const errorDampDelay = 50 * time.Millisecond

// TraceSink receives one Record per completed operation. It is implemented by
// *trace.Writer; defined here (rather than imported from trace) so worker
// never needs to import trace's CSV/rotation concerns, only this narrow
// contract (mirrors the adapter.ValidationCounter cycle-avoidance pattern).
type TraceSink interface {
	Write(rec Record)
}

// Record is one completed operation's trace row, independent of trace's CSV
// encoding (timestamp, op, key, latency, sdk status, http class, bytes,
// request id).
type Record struct {
	Timestamp time.Time
	OpType    string
	Key       string
	LatencyMs int64
	SDKStatus string
	HTTPCode  int
	Bytes     int64
	RequestID string
}

// Spec is the immutable, per-worker slice of config.Config plus the bound
// identity the Supervisor resolves before constructing the Worker: avoids a
// worker->config import (config has no reason to know about worker).
type Spec struct {
	WorkerID           int
	Username           string
	Bucket             string
	KeyPrefix          string
	ObjNamePatternHash bool
	RequestsPerThread  int64
	Deadline           time.Time
	TestCase           int
	MixOperation       []int
	MixLoopCount       int64
	ObjectSizeMin      int64
	ObjectSizeMax      int64
	PartSize           int64
	Ranges             []storage.Range
	EnableValidation   bool
	UploadFilePath     string
	EnableCheckpoint   bool
	CallOptions        storage.CallOptions
}

// Worker owns all of its mutable state: counters, pattern buffer, trace
// batch, PRNG. Only the worker's goroutine writes any of it; the Monitor
// reads the counters through Stats.
type Worker struct {
	spec     Spec
	adapter  *adapter.Adapter
	stats    *ThreadStats
	trace    TraceSink
	shutdown *atomic.Bool
	log      logger.Logger
	rng      *rand.Rand
}

// New builds a Worker around its own pattern.Source and Adapter. trace may be
// nil (detail logging disabled). The only error New can return is pattern
// buffer allocation failure, in which case the worker never runs.
func New(spec Spec, client storage.Client, shutdown *atomic.Bool, log logger.Logger, trace TraceSink) (*Worker, error) {
	src, err := pattern.New(pattern.DefaultSize)
	if err != nil {
		return nil, err
	}
	stats := NewThreadStats()

	return &Worker{
		spec:     spec,
		adapter:  adapter.New(client, src, spec.EnableValidation, shutdown, log),
		stats:    stats,
		trace:    trace,
		shutdown: shutdown,
		log:      log,
		rng:      rand.New(rand.NewSource(int64(spec.WorkerID) + 1)),
	}, nil
}

// Stats exposes the worker's counter block to the Monitor.
func (w *Worker) Stats() *ThreadStats { return w.stats }

// WorkerID returns the bound identity, used by the Monitor/Supervisor to
// label aggregation rows.
func (w *Worker) WorkerID() int { return w.spec.WorkerID }

// fieldsCtx carries worker_id/username in a typed context config so log
// entries built mid-loop can read them back instead of threading them by
// hand through every call.
func (w *Worker) fieldsCtx(ctx context.Context) libctx.Config[string] {
	c := libctx.New[string](ctx)
	c.Store("worker_id", w.spec.WorkerID)
	c.Store("username", w.spec.Username)
	return c
}

// Run executes the worker's request loop until its quota is satisfied or
// shutdown flips. It never returns an error: every
// outcome, including transport failures, is classified and counted, never
// raised.
func (w *Worker) Run(parent context.Context) {
	var ctx context.Context = w.fieldsCtx(parent)

	for {
		if w.shutdown.Load() {
			return
		}
		if !w.spec.Deadline.IsZero() && !time.Now().Before(w.spec.Deadline) {
			return
		}

		completed := w.stats.Snapshot().CompletedCount()
		if w.quotaMet(completed) {
			return
		}

		op, sequence := w.nextOperation(completed)
		key := SynthesizeKey(w.spec.Username, w.spec.KeyPrefix, w.spec.WorkerID, sequence, w.spec.ObjNamePatternHash)

		start := time.Now()
		result, class, sdkOp := w.issue(ctx, op, key, sequence)
		latencyMs := time.Since(start).Milliseconds()

		if result.ValidationFailed {
			// the adapter already incremented FailValidation; the worker still
			// emits a trace row but must not double-classify.
		} else {
			w.stats.Observe(class, latencyMs)
			if class == 200 || class == 204 || class == 206 {
				w.stats.AddSuccessBytes(result.Bytes)
			} else {
				w.logFailure(sdkOp, key, class, result)
			}
		}

		w.emitTrace(key, sdkOp, result, class, latencyMs)

		if result.ValidationFailed || (class != 200 && class != 204 && class != 206) {
			w.dampSleep()
		}
	}
}

// dampSleep pauses briefly after any non-success outcome so a misconfigured
// run does not spin a tight failure loop against the service.
func (w *Worker) dampSleep() {
	time.Sleep(errorDampDelay)
}

// logFailure emits one line per failed operation: client-side
// 4xx outcomes at debug (they are usually the test plan's own doing, e.g.
// GET before PUT), 5xx and transport failures at warning.
func (w *Worker) logFailure(op storage.Operation, key string, class int, res adapter.Result) {
	if w.log == nil {
		return
	}

	fields := map[string]interface{}{
		"worker_id":  w.spec.WorkerID,
		"username":   w.spec.Username,
		"op":         opName(op),
		"key":        key,
		"http_class": class,
		"request_id": res.RequestID,
	}

	if class >= 400 && class < 500 {
		w.log.Debug("request failed", fields)
		return
	}
	w.log.Warning("request failed", fields)
}

// quotaMet reports whether completed satisfies requests_per_thread (single
// test case) or mix_loop_count*len(mix_operation)*requests_per_thread (mixed
// mode). A zero quota means the run is bounded by time or shutdown only.
func (w *Worker) quotaMet(completed int64) bool {
	if w.spec.RequestsPerThread <= 0 {
		return false
	}
	if w.spec.TestCase != 900 {
		return completed >= w.spec.RequestsPerThread
	}
	opCount := int64(len(w.spec.MixOperation))
	if opCount == 0 || w.spec.MixLoopCount <= 0 {
		return false
	}
	return completed >= w.spec.MixLoopCount*opCount*w.spec.RequestsPerThread
}

// nextOperation resolves which test case runs next and the per-object
// sequence it should use, delegating to SelectMix in mixed mode.
func (w *Worker) nextOperation(completed int64) (op int, sequence int64) {
	if w.spec.TestCase != 900 {
		return w.spec.TestCase, completed
	}
	perThread := w.spec.RequestsPerThread
	if perThread <= 0 {
		perThread = 1
	}
	sel := SelectMix(completed, perThread, w.spec.MixOperation)
	return sel.OpCode, sel.Sequence
}

// objectSize draws a uniform size in [Min,Max] for this iteration; Min==Max
// (config.ObjectSize.Fixed) always yields the same value.
func (w *Worker) objectSize() int64 {
	if w.spec.ObjectSizeMax <= w.spec.ObjectSizeMin {
		return w.spec.ObjectSizeMin
	}
	span := w.spec.ObjectSizeMax - w.spec.ObjectSizeMin + 1
	return w.spec.ObjectSizeMin + w.rng.Int63n(span)
}

// issue dispatches to the adapter method for op and returns the HTTP-class
// bucket the trace row and the counters both need.
func (w *Worker) issue(ctx context.Context, op int, key string, sequence int64) (adapter.Result, int, storage.Operation) {
	opt := w.spec.CallOptions

	switch op {
	case 201: // CasePut
		size := w.objectSize()
		res := w.adapter.Put(ctx, opt, key, size)
		return res, storage.Class(res.Kind, storage.OpPut, false), storage.OpPut

	case 202: // CaseGet
		rng, ranged := w.rangeFor()
		res := w.adapter.Get(ctx, opt, key, rng, false, w.stats)
		if res.ValidationFailed {
			return res, 0, storage.OpGet
		}
		return res, storage.Class(res.Kind, storage.OpGet, ranged), storage.OpGet

	case 204: // CaseDelete
		res := w.adapter.Delete(ctx, opt, key)
		return res, storage.Class(res.Kind, storage.OpDelete, false), storage.OpDelete

	case 216: // CaseMultipart
		size := w.objectSize()
		res := w.adapter.Multipart(ctx, opt, key, size, w.spec.PartSize)
		return res, storage.Class(res.Kind, storage.OpMultipart, false), storage.OpMultipart

	case 230: // CaseResumable
		res := w.adapter.Resumable(ctx, opt, key, w.spec.UploadFilePath, w.spec.EnableCheckpoint)
		return res, storage.Class(res.Kind, storage.OpResumable, false), storage.OpResumable

	default:
		res := w.adapter.Put(ctx, opt, key, w.objectSize())
		return res, storage.Class(res.Kind, storage.OpPut, false), storage.OpPut
	}
}

// rangeFor picks the byte range for a GET: a random entry from spec.Ranges
// when configured, otherwise the whole object.
func (w *Worker) rangeFor() (storage.Range, bool) {
	if len(w.spec.Ranges) == 0 {
		return storage.Range{}, false
	}
	return w.spec.Ranges[w.rng.Intn(len(w.spec.Ranges))], true
}

// emitTrace builds and forwards one Record when detail logging is enabled.
func (w *Worker) emitTrace(key string, op storage.Operation, res adapter.Result, class int, latencyMs int64) {
	if w.trace == nil {
		return
	}
	w.trace.Write(Record{
		Timestamp: time.Now(),
		OpType:    opName(op),
		Key:       key,
		LatencyMs: latencyMs,
		SDKStatus: kindName(res.Kind),
		HTTPCode:  class,
		Bytes:     res.Bytes,
		RequestID: res.RequestID,
	})
}

// kindName renders a storage.Kind for the trace row's SDKStatus column;
// classify.go intentionally has no String method since nothing inside the
// engine itself prints a Kind, only the trace writer does.
func kindName(k storage.Kind) string {
	names := [...]string{
		"SUCCESS", "ACCESS_DENIED", "INVALID_ACCESS_KEY_ID", "SIGNATURE_MISMATCH",
		"INVALID_SECURITY", "NO_SUCH_BUCKET", "NO_SUCH_KEY", "NO_SUCH_UPLOAD",
		"NO_SUCH_VERSION", "BUCKET_ALREADY_OWNED", "BUCKET_ALREADY_EXISTS",
		"BUCKET_NOT_EMPTY", "INTERNAL_ERROR", "SERVICE_UNAVAILABLE", "SLOW_DOWN",
		"NETWORK", "OTHER_SERVICE", "VALIDATION_FAILED",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "UNKNOWN"
}

func opName(op storage.Operation) string {
	switch op {
	case storage.OpPut:
		return "PUT"
	case storage.OpGet:
		return "GET"
	case storage.OpDelete:
		return "DELETE"
	case storage.OpList:
		return "LIST"
	case storage.OpMultipart:
		return "MULTIPART"
	case storage.OpResumable:
		return "RESUMABLE"
	default:
		return "UNKNOWN"
	}
}
