// Package generator drives the per-table pipeline: introspect, build the
// table schema, emit source text and write it under the output
// directory.
package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/mwallis/tablegen/config"
	"github.com/mwallis/tablegen/emitter"
	"github.com/mwallis/tablegen/introspect"
	"github.com/mwallis/tablegen/schema"
	"github.com/mwallis/tablegen/sqltype"
)

// tableWorkers bounds the per-table fan-out. Emission is pure, so the
// only contention is on the connection pool.
const tableWorkers = 4

// FileResult is the outcome for one table. Err is set when the table
// was skipped; the rest of the run continues around it.
type FileResult struct {
	Table string
	Path  string
	Err   error
}

// Run generates one source file per selected table. Tables are
// processed concurrently; a write or emission failure skips that table
// only, while an unrecognized column type aborts the whole run.
func Run(ctx context.Context, pool *pgxpool.Pool, cfg config.Config, generatedAt time.Time) ([]FileResult, error) {
	tables, err := introspect.ListTables(ctx, pool)
	if err != nil {
		return nil, err
	}

	opts := emitter.Options{
		PackageName:           cfg.PackageName,
		IncludeQueryAccessors: cfg.QueryAccessors,
		RuntimeImport:         cfg.RuntimeImport,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(tableWorkers)

	var mu sync.Mutex
	var results []FileResult

	for _, table := range tables {
		table := table
		if !cfg.Includes(table) {
			continue
		}
		g.Go(func() error {
			res := FileResult{Table: table}
			res.Path, res.Err = generateTable(ctx, pool, table, cfg.OutputDir, opts, generatedAt)
			if res.Err != nil && errors.Is(res.Err, sqltype.ErrUnknownType) {
				return res.Err
			}
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Table < results[j].Table })
	return results, nil
}

func generateTable(ctx context.Context, pool *pgxpool.Pool, table, outputDir string, opts emitter.Options, generatedAt time.Time) (string, error) {
	cols, err := introspect.ListColumns(ctx, pool, table)
	if err != nil {
		return "", err
	}

	ts, err := schema.Build(table, cols)
	if err != nil {
		return "", err
	}

	text, err := emitter.Emit(ts, opts, generatedAt)
	if err != nil {
		return "", err
	}

	return WriteSourceFile(outputDir, emitter.FileBaseName(ts), text)
}

// WriteSourceFile persists one generated file as <baseName>.go under
// dir, creating the directory when needed, and returns the full path.
func WriteSourceFile(dir, baseName, text string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, baseName+".go")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %v", path, err)
	}
	return path, nil
}
