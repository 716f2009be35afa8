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

// Package trace writes the per-request detail log: one bounded-batch, rotating
// CSV file per worker, flushed every 1000 rows or at Close, rotated at one
// million rows per file. It is owned exclusively by the worker goroutine
// that calls Write; no locking is needed on the hot path.
package trace

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nabbar/s3loadgen/worker"
)

// BatchSize is the number of rows buffered before a flush to disk.
const BatchSize = 1000

// RotateRows is the row count at which a new part file is opened.
const RotateRows = 1_000_000

// Column caps: keys and request ids longer than these are truncated rather
// than rejected, keeping every row parseable by fixed-width consumers.
const (
	maxKeyLen       = 1024
	maxRequestIDLen = 63
)

var header = []string{"Timestamp(s)", "OpType", "Key", "Latency(ms)", "SDKStatus", "HTTPCode", "Bytes", "RequestID"}

// Writer implements worker.TraceSink for one worker: it owns its own file
// handle, buffered writer and csv.Writer, rotating to a new
// "detail_{worker_id}_part{idx}.csv" file every RotateRows rows.
type Writer struct {
	dir      string
	workerID int

	partIdx    int
	rowsInFile int
	batched    int

	f  *os.File
	bw *bufio.Writer
	cw *csv.Writer
}

var _ worker.TraceSink = (*Writer)(nil)

// New opens part 0 for workerID under dir, which must already exist (the
// Supervisor creates {task_log_dir} once at startup).
func New(dir string, workerID int) (*Writer, error) {
	w := &Writer{dir: dir, workerID: workerID, partIdx: 0}
	if err := w.openPart(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Writer) partPath() string {
	return filepath.Join(w.dir, fmt.Sprintf("detail_%d_part%d.csv", w.workerID, w.partIdx))
}

func (w *Writer) openPart() error {
	f, err := os.OpenFile(w.partPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w.f = f
	w.bw = bufio.NewWriter(f)
	w.cw = csv.NewWriter(w.bw)
	w.rowsInFile = 0
	w.batched = 0
	return w.cw.Write(header)
}

// Write appends one record, rotating the part file first if RotateRows has
// been reached, and flushing every BatchSize rows. Write never returns an
// error to the caller: a trace failure must not interrupt the load being
// generated, so it is logged to stderr and swallowed.
func (w *Writer) Write(rec worker.Record) {
	if w.rowsInFile >= RotateRows {
		w.flush()
		_ = w.f.Close()
		w.partIdx++
		if err := w.openPart(); err != nil {
			fmt.Fprintf(os.Stderr, "trace: worker %d: cannot rotate: %v\n", w.workerID, err)
			return
		}
	}

	if len(rec.Key) > maxKeyLen {
		rec.Key = rec.Key[:maxKeyLen]
	}
	if len(rec.RequestID) > maxRequestIDLen {
		rec.RequestID = rec.RequestID[:maxRequestIDLen]
	}

	row := []string{
		strconv.FormatFloat(float64(rec.Timestamp.UnixNano())/1e9, 'f', 6, 64),
		rec.OpType,
		rec.Key,
		strconv.FormatInt(rec.LatencyMs, 10),
		rec.SDKStatus,
		strconv.Itoa(rec.HTTPCode),
		strconv.FormatInt(rec.Bytes, 10),
		rec.RequestID,
	}

	if err := w.cw.Write(row); err != nil {
		fmt.Fprintf(os.Stderr, "trace: worker %d: write failed: %v\n", w.workerID, err)
		return
	}

	w.rowsInFile++
	w.batched++
	if w.batched >= BatchSize {
		w.flush()
	}
}

func (w *Writer) flush() {
	w.cw.Flush()
	_ = w.bw.Flush()
	w.batched = 0
}

// Close flushes and closes the current part file.
func (w *Writer) Close() error {
	w.flush()
	return w.f.Close()
}
