// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vec256info reports the SIMD level detected on this machine and
// optionally runs numerical self-checks of the vector math and transpose
// kernels.
//
// Usage:
//
//	vec256info                  # dispatch report
//	vec256info -selfcheck       # report plus accuracy checks
//	vec256info -json -level debug -selfcheck
//
// The report goes to stdout. Progress and check results are logged to
// stderr through log/slog, as text or as JSON with -json.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ajroetker/vec256/hwy"
)

var (
	jsonOut   = flag.Bool("json", false, "Write the report and logs as JSON")
	logLevel  = flag.String("level", "info", "Log level (debug, info, warn, error)")
	selfCheck = flag.Bool("selfcheck", false, "Run accuracy self-checks of the math and transpose kernels")
	samples   = flag.Int("samples", 4096, "Random vectors per accuracy check")
	seed      = flag.Uint64("seed", 1, "Seed for the random inputs of the self-checks")
)

// Report describes the vector configuration of the running process.
type Report struct {
	Level    string `json:"level"`
	Width    int    `json:"width_bytes"`
	Lanes    int    `json:"lanes"`
	HasFMA   bool   `json:"has_fma"`
	NoSimd   bool   `json:"no_simd"`
	Checks   int    `json:"checks,omitempty"`
	Failures int    `json:"failures,omitempty"`
}

func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -level %q: %v\n\n", *logLevel, err)
		flag.Usage()
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, level, *jsonOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report := Report{
		Level:  hwy.CurrentName(),
		Width:  hwy.CurrentWidth(),
		Lanes:  hwy.Lanes,
		HasFMA: hwy.HasFMA(),
		NoSimd: hwy.NoSimdEnv(),
	}
	logger.Debug("dispatch detected", "level", report.Level, "width", report.Width, "fma", report.HasFMA)

	var failed error
	if *selfCheck {
		results, err := runChecks(ctx, logger, *samples, *seed)
		report.Checks = len(results)
		for _, r := range results {
			if !r.Passed {
				report.Failures++
			}
		}
		failed = err
	}

	if err := writeReport(os.Stdout, report, *jsonOut); err != nil {
		logger.Error("writing report", "err", err)
		os.Exit(1)
	}
	if failed != nil {
		logger.Error("self-check failed", "err", failed)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level slog.Level, asJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func writeReport(w io.Writer, r Report, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	_, err := fmt.Fprintf(w, "level:   %s\nwidth:   %d bytes\nlanes:   %d (float32)\nfma:     %t\nno_simd: %t\n",
		r.Level, r.Width, r.Lanes, r.HasFMA, r.NoSimd)
	if err != nil || r.Checks == 0 {
		return err
	}
	_, err = fmt.Fprintf(w, "checks:  %d run, %d failed\n", r.Checks, r.Failures)
	return err
}
