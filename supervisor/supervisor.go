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

// Package supervisor wires and drives one full run: it creates the task log
// directory, installs the two-stage signal handler, binds every user to a
// bucket and builds its workers, runs them alongside the Monitor, joins
// everything, aggregates the final counters and writes brief.txt.
package supervisor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/nabbar/s3loadgen/config"
	"github.com/nabbar/s3loadgen/console"
	"github.com/nabbar/s3loadgen/logger"
	"github.com/nabbar/s3loadgen/monitor"
	"github.com/nabbar/s3loadgen/pattern"
	"github.com/nabbar/s3loadgen/storage"
	"github.com/nabbar/s3loadgen/storage/s3driver"
	"github.com/nabbar/s3loadgen/trace"
	"github.com/nabbar/s3loadgen/worker"
)

// LogRoot is the directory every task_YYYYMMDD_HHMMSS run directory is
// created under.
const LogRoot = "logs"

// Run wires and drives one full load-generation run: it never returns an
// error for anything that happens after startup (everything past config
// load is counted, not raised), only for the handful of fatal startup
// failures. The returned int is the process exit code the caller
// (cmd/s3loadgen) should use.
func Run(ctx context.Context, cfg *config.Config, log logger.Logger) (int, error) {
	dir, err := createTaskLogDir(time.Now())
	if err != nil {
		return 1, CodeLogDir.Error(err)
	}

	if e := attachFileLogging(log, cfg, dir); e != nil {
		console.ColorWarn.Printf("warning: cannot attach file logging: %v\n", e)
	}

	shutdown := new(atomic.Bool)
	stopSignals := installSignalHandler(shutdown, log)
	defer stopSignals()

	client := s3driver.New()

	if e := materializeUploadFile(cfg); e != nil {
		return 1, e
	}

	var deadline time.Time
	if cfg.RunSeconds.Time() > 0 {
		deadline = time.Now().Add(cfg.RunSeconds.Time())
	}

	workers, closers := buildWorkers(cfg, client, shutdown, log, dir, deadline)
	defer closeAll(closers)

	if len(workers) == 0 {
		return 1, CodePatternAlloc.Error()
	}

	mon := monitor.New(workers, dir, shutdown, int64(cfg.RunSeconds.Time()/time.Second), cfg.TotalOperations())

	start := time.Now()

	var wgWorkers sync.WaitGroup
	for _, w := range workers {
		wgWorkers.Add(1)
		go func(w *worker.Worker) {
			defer wgWorkers.Done()
			w.Run(ctx)
		}(w)
	}

	var wgMonitor sync.WaitGroup
	wgMonitor.Add(1)
	go func() {
		defer wgMonitor.Done()
		mon.Run(ctx)
	}()

	wgWorkers.Wait()
	shutdown.Store(true)
	wgMonitor.Wait()

	if e := writeBrief(cfg, workers, dir, time.Since(start)); e != nil {
		console.ColorWarn.Printf("warning: cannot write brief.txt: %v\n", e)
	}

	return 0, nil
}

// createTaskLogDir makes logs/task_YYYYMMDD_HHMMSS and returns its path.
func createTaskLogDir(now time.Time) (string, error) {
	dir := filepath.Join(LogRoot, "task_"+now.Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// attachFileLogging adds a file sink over engine.log in dir to whatever
// stdout options the caller already configured, filtered to cfg.LogLevel;
// "OFF" mutes every output, stdout included.
func attachFileLogging(log logger.Logger, cfg *config.Config, dir string) error {
	if strings.EqualFold(cfg.LogLevel, "OFF") {
		log.SetLevel(logger.NilLevel)
		return nil
	}

	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	next := log.GetOptions()
	if next.Stdout == nil {
		next.Stdout = &logger.OptionsStd{}
	}
	next.LogFile = append(next.LogFile, logger.OptionsFile{
		Filepath:   filepath.Join(dir, "engine.log"),
		Create:     true,
		CreatePath: true,
		LogLevel:   fileLogLevels(cfg.LogLevel),
	})

	return log.SetOptions(next)
}

// fileLogLevels returns the file sink's level filter for one of the
// LogLevel knobs, most-severe-first; OFF is handled by the caller before
// this is ever reached.
func fileLogLevels(cfgLevel string) []string {
	switch strings.ToUpper(cfgLevel) {
	case "ERROR":
		return []string{"critical", "fatal", "error"}
	case "WARN":
		return []string{"critical", "fatal", "error", "warning"}
	case "DEBUG":
		return []string{"critical", "fatal", "error", "warning", "info", "debug"}
	default: // INFO
		return []string{"critical", "fatal", "error", "warning", "info"}
	}
}

// installSignalHandler implements the two-stage interrupt protocol: the first
// SIGINT/SIGTERM flips shutdown and logs a graceful-shutdown line; a second
// one forces immediate exit. The returned func stops intercepting signals.
func installSignalHandler(shutdown *atomic.Bool, log logger.Logger) func() {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		first := true
		for range ch {
			if first {
				first = false
				shutdown.Store(true)
				log.Warning("graceful shutdown requested", nil)
				console.ColorPrint.Printf("received interrupt, shutting down...\n")
				continue
			}
			console.ColorPrint.Printf("second interrupt received, exiting immediately\n")
			os.Exit(1)
		}
	}()

	return func() { signal.Stop(ch); close(ch) }
}

// buildWorkers binds each configured user to its bucket and constructs
// ThreadsPerUser workers for it, skipping (and logging) any worker whose
// pattern buffer allocation fails rather than aborting the whole run.
func buildWorkers(cfg *config.Config, client storage.Client, shutdown *atomic.Bool, log logger.Logger, dir string, deadline time.Time) ([]*worker.Worker, []io.Closer) {
	workers := make([]*worker.Worker, 0, cfg.TotalWorkers)
	closers := make([]io.Closer, 0, cfg.TotalWorkers)

	id := 0
	for _, u := range cfg.Users {
		bucket := cfg.BucketFor(u)

		for slot := 0; slot < cfg.ThreadsPerUser; slot++ {
			spec := worker.Spec{
				WorkerID:           id,
				Username:           u.Username,
				Bucket:             bucket,
				KeyPrefix:          cfg.KeyPrefix,
				ObjNamePatternHash: cfg.ObjNamePatternHash,
				RequestsPerThread:  int64(cfg.RequestsPerThread),
				Deadline:           deadline,
				TestCase:           cfg.TestCase,
				MixOperation:       cfg.MixOperation,
				MixLoopCount:       int64(cfg.MixLoopCount),
				ObjectSizeMin:      cfg.Size.Min,
				ObjectSizeMax:      cfg.Size.Max,
				PartSize:           cfg.PartSize.Int64(),
				Ranges:             cfg.Ranges,
				EnableValidation:   cfg.EnableDataValidation,
				UploadFilePath:     cfg.UploadFilePath,
				EnableCheckpoint:   cfg.EnableCheckpoint,
				CallOptions: storage.CallOptions{
					Endpoint:          cfg.Endpoint,
					Bucket:            bucket,
					AccessKey:         u.AccessKey,
					SecretKey:         u.SecretKey,
					Token:             u.Token,
					Protocol:          cfg.Protocol,
					KeepAlive:         cfg.KeepAlive,
					ConnectTimeoutSec: cfg.ConnectTimeoutSec,
					RequestTimeoutSec: cfg.RequestTimeoutSec,
				},
			}

			var sink worker.TraceSink
			if cfg.EnableDetailLog {
				tw, err := trace.New(dir, id)
				if err != nil {
					console.ColorWarn.Printf("worker %d: trace disabled: %v\n", id, err)
				} else {
					sink = tw
					closers = append(closers, tw)
				}
			}

			w, err := worker.New(spec, client, shutdown, log, sink)
			if err != nil {
				log.Error("pattern buffer allocation failed, worker will not run", err)
				id++
				continue
			}

			workers = append(workers, w)
			id++
		}
	}

	return workers, closers
}

// materializeUploadFile writes the fixed-size source file the resumable test
// case streams from, filled with the same deterministic pattern
// uploads use, so a later GET of the uploaded object still verifies. An
// existing file is reused untouched. Nothing to do when no plan runs case 230.
func materializeUploadFile(cfg *config.Config) error {
	if cfg.UploadFilePath == "" || !planRunsResumable(cfg) {
		return nil
	}
	if _, err := os.Stat(cfg.UploadFilePath); err == nil {
		return nil
	}

	src, err := pattern.New(pattern.DefaultSize)
	if err != nil {
		return CodePatternAlloc.Error(err)
	}

	f, err := os.OpenFile(cfg.UploadFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return CodeUploadFile.Error(err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 64*1024)
	var off int64
	for off < cfg.Size.Min {
		n := int64(len(buf))
		if cfg.Size.Min-off < n {
			n = cfg.Size.Min - off
		}
		src.Fill(buf[:n], uint64(off))
		if _, err = f.Write(buf[:n]); err != nil {
			return CodeUploadFile.Error(err)
		}
		off += n
	}

	return nil
}

func planRunsResumable(cfg *config.Config) bool {
	if cfg.TestCase == config.CaseResumable {
		return true
	}
	if cfg.TestCase != config.CaseMix {
		return false
	}
	for _, op := range cfg.MixOperation {
		if op == config.CaseResumable {
			return true
		}
	}
	return false
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}

// writeBrief renders brief.txt: configuration echo, aggregate counts by
// class, TPS and bandwidth. elapsed is the actual wall-clock run
// time, used for both the RunSeconds-bound and quota-bound cases.
func writeBrief(cfg *config.Config, workers []*worker.Worker, dir string, elapsedWall time.Duration) error {
	f, err := os.OpenFile(filepath.Join(dir, "brief.txt"), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return CodeBrief.Error(err)
	}
	defer func() { _ = f.Close() }()

	var t worker.Totals
	for _, w := range workers {
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

	elapsed := elapsedWall.Seconds()
	completed := t.CompletedCount()
	tps := 0.0
	bw := 0.0
	if elapsed > 0 {
		tps = float64(completed) / elapsed
		bw = float64(t.TotalSuccessBytes) / elapsed / 1e6
	}

	fmt.Fprintf(f, "s3loadgen run summary\n")
	fmt.Fprintf(f, "endpoint: %s\n", cfg.Endpoint)
	fmt.Fprintf(f, "test case: %d\n", cfg.TestCase)
	fmt.Fprintf(f, "users: %d, threads per user: %d, total workers: %d\n", len(cfg.Users), cfg.ThreadsPerUser, cfg.TotalWorkers)
	fmt.Fprintf(f, "requests per thread: %d\n", cfg.RequestsPerThread)
	fmt.Fprintf(f, "object size: %d..%d bytes, part size: %s\n", cfg.Size.Min, cfg.Size.Max, cfg.PartSize.String())
	fmt.Fprintln(f)
	fmt.Fprintf(f, "total completed: %d\n", completed)
	fmt.Fprintf(f, "success:         %d\n", t.Success)
	fmt.Fprintf(f, "fail 403:        %d\n", t.Fail403)
	fmt.Fprintf(f, "fail 404:        %d\n", t.Fail404)
	fmt.Fprintf(f, "fail 409:        %d\n", t.Fail409)
	fmt.Fprintf(f, "fail 4xx other:  %d\n", t.Fail4xxOther)
	fmt.Fprintf(f, "fail 5xx:        %d\n", t.Fail5xx)
	fmt.Fprintf(f, "fail other:      %d\n", t.FailOther)
	fmt.Fprintf(f, "fail validation: %d\n", t.FailValidation)
	fmt.Fprintln(f)
	fmt.Fprintf(f, "bytes transferred: %d\n", t.TotalSuccessBytes)
	fmt.Fprintf(f, "tps:  %.2f\n", tps)
	fmt.Fprintf(f, "bandwidth: %.2f MB/s\n", bw)

	return nil
}
