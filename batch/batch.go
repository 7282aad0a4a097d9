// SPDX-License-Identifier: MIT
// Package: kolam/batch
//
// Package batch generates N independent designs concurrently and writes
// them, plus a JSON manifest, into an output directory.
//
// Concurrency model: each design is a pure function of (config, derived
// seed), so the pool shares nothing mutable. Workers run under errgroup
// with a bounded limit; cancellation is cooperative at per-design
// granularity — a worker finishes its current design or never starts the
// next, and partial designs are never written.
//
// The output directory is guarded by a flock'd lock file so two batch runs
// cannot interleave their manifests. The lock is advisory and cross-process.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kolamlab/kolam/compose"
	"github.com/kolamlab/kolam/pattern"
	"github.com/kolamlab/kolam/render"
)

// Sentinel errors for batch runs.
var (
	// ErrLocked indicates the output directory is owned by another run.
	ErrLocked = errors.New("batch: output directory locked by another run")
)

const (
	// defaultWorkers bounds pool concurrency when the caller passes 0.
	defaultWorkers = 4
	lockFileName   = ".kolam.lock"
	manifestName   = "manifest.json"
)

// Request describes one batch run.
type Request struct {
	Config  compose.Config // base config; Seed is the base seed
	Count   int            // number of designs
	Dir     string         // output directory, created if absent
	Workers int            // pool size; 0 means defaultWorkers
}

// Item is one design's manifest entry.
type Item struct {
	Index    int       `json:"index"`
	ID       uuid.UUID `json:"id"`
	Seed     int64     `json:"seed"`
	File     string    `json:"file"`
	Paths    int       `json:"paths"`
	Segments int       `json:"segments"`
	Err      string    `json:"error,omitempty"`
}

// Manifest records a completed run.
type Manifest struct {
	RunID     uuid.UUID `json:"run_id"`
	BaseSeed  int64     `json:"base_seed"`
	Pattern   string    `json:"pattern"`
	Requested int       `json:"requested"`
	Succeeded int       `json:"succeeded"`
	Items     []Item    `json:"items"`
}

// Run generates req.Count designs with seeds derived from the base seed,
// writes each as an SVG file, and writes the manifest. Individual design
// failures are recorded in the manifest and do not abort the run; Run
// returns an error only for setup failures or context cancellation.
func Run(ctx context.Context, req Request) (*Manifest, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("Run: count %d (must be ≥ 1)", req.Count)
	}
	if err := os.MkdirAll(req.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("Run: creating output dir: %w", err)
	}

	lock := flock.New(filepath.Join(req.Dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("Run: acquiring lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("Run: %s: %w", req.Dir, ErrLocked)
	}
	defer func() { _ = lock.Unlock() }()

	workers := req.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	items := make([]Item, req.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < req.Count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err // abandoned before starting this design
			}
			items[i] = generateOne(req, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	m := &Manifest{
		RunID:     uuid.New(),
		BaseSeed:  req.Config.Seed,
		Pattern:   string(req.Config.Pattern),
		Requested: req.Count,
		Items:     items,
	}
	for _, it := range items {
		if it.Err == "" {
			m.Succeeded++
		}
	}
	if err := writeManifest(req.Dir, m); err != nil {
		return nil, err
	}
	return m, nil
}

// generateOne produces design i with its derived seed. Failures land in
// the item, never on disk.
func generateOne(req Request, i int) Item {
	cfg := req.Config
	if i > 0 {
		cfg.Seed = pattern.DeriveSeed(req.Config.Seed, uint64(i))
	}
	it := Item{Index: i, Seed: cfg.Seed}

	k, err := compose.Generate(cfg)
	if err != nil {
		it.Err = err.Error()
		return it
	}
	st := k.Stats()
	it.ID = k.Meta.ID
	it.Paths = st.Paths
	it.Segments = st.Segments

	// Render to memory first: WriteFile surfaces the close error too, so a
	// truncated SVG can never be recorded as a success.
	var buf bytes.Buffer
	if err := render.SVG(&buf, k); err != nil {
		it.Err = err.Error()
		return it
	}
	name := fmt.Sprintf("kolam-%03d.svg", i)
	if err := os.WriteFile(filepath.Join(req.Dir, name), buf.Bytes(), 0o644); err != nil {
		it.Err = err.Error()
		return it
	}
	it.File = name
	return it
}

func writeManifest(dir string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("Run: encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), data, 0o644); err != nil {
		return fmt.Errorf("Run: writing manifest: %w", err)
	}
	return nil
}
