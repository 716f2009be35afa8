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

// Command s3loadgen drives an S3-compatible object store with a
// configurable, multi-tenant load pattern and reports throughput, latency
// and data-correctness counters. A single positional argument is
// either a digit string overriding the configured test case, or a path
// overriding the default configuration file.
package main

import (
	"context"
	"os"

	"github.com/nabbar/s3loadgen/config"
	"github.com/nabbar/s3loadgen/console"
	"github.com/nabbar/s3loadgen/logger"
	"github.com/nabbar/s3loadgen/supervisor"
)

// DefaultConfigPath is used when no path argument overrides it.
const DefaultConfigPath = "s3loadgen.conf"

func main() {
	os.Exit(run())
}

// run does not install its own signal handling: the Supervisor owns the
// single two-stage SIGINT/SIGTERM handler, so main only wires the
// logger and configuration and hands off a plain, uncancelled context.
func run() int {
	ctx := context.Background()

	log := logger.New(ctx)
	if err := log.SetOptions(&logger.Options{
		Stdout: &logger.OptionsStd{},
	}); err != nil {
		console.ColorError.Printf("cannot initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Close() }()

	var arg string
	if len(os.Args) > 1 {
		arg = os.Args[1]
	}
	path, testCaseOverride := config.ParseCLIArg(arg, DefaultConfigPath)

	cfg, err := config.Load(path, testCaseOverride)
	if err != nil {
		console.ColorError.Printf("configuration error: %v\n", err)
		log.Error("configuration load failed", err)
		return 1
	}

	code, err := supervisor.Run(ctx, cfg, log)
	if err != nil {
		console.ColorError.Printf("run error: %v\n", err)
		log.Error("supervisor run failed", err)
	}

	return code
}
