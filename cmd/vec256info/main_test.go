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

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunChecks(t *testing.T) {
	var logs bytes.Buffer
	logger := newLogger(&logs, slog.LevelInfo, true)

	results, err := runChecks(context.Background(), logger, 64, 7)
	require.NoError(t, err)
	require.Len(t, results, len(allChecks()))
	for _, r := range results {
		assert.True(t, r.Passed, "%s: worst %g > bound %g", r.Name, r.Metric, r.Bound)
	}

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	require.Len(t, lines, len(results))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "check passed", entry["msg"])
}

func TestRunChecksCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger := newLogger(io.Discard, slog.LevelInfo, false)
	_, err := runChecks(ctx, logger, 64, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckTransposeCoversTiles(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	// 64*80 samples walk all 64 small shapes and then 16 larger ones.
	worst, err := checkTranspose(context.Background(), rng, 64*80)
	require.NoError(t, err)
	assert.Zero(t, worst)
}

func TestWriteReport(t *testing.T) {
	r := Report{Level: "avx2", Width: 32, Lanes: 8, HasFMA: true, Checks: 3, Failures: 1}

	var text bytes.Buffer
	require.NoError(t, writeReport(&text, r, false))
	assert.Contains(t, text.String(), "level:   avx2")
	assert.Contains(t, text.String(), "checks:  3 run, 1 failed")

	var js bytes.Buffer
	require.NoError(t, writeReport(&js, r, true))
	var got Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &got))
	assert.Equal(t, r, got)
}
