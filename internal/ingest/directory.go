package ingest

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spendlens/spendlens/constants"
)

// FileResult records the outcome of ingesting a single file during a
// directory walk.
type FileResult struct {
	Path      string
	ReceiptID string
	Err       string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// IngestDirectory walks root, filters by includeExts (or the default
// allowed set), skips hidden entries if requested, and ingests each
// matching file. Per-file failures are recorded and do not stop the
// walk. Returns per-file results plus aggregate stats.
func (s *Service) IngestDirectory(ctx context.Context, root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		for e := range constants.AllowedExtensions {
			exts[e] = struct{}{}
		}
	} else {
		for _, e := range includeExts {
			if e = constants.NormalizeExt(strings.TrimSpace(e)); e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		base := filepath.Base(path)
		if skipHidden && strings.HasPrefix(base, ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		stats.Scanned++
		if _, ok := exts[constants.NormalizeExt(filepath.Ext(path))]; !ok {
			return nil
		}
		stats.Matched++

		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := s.IngestFile(ctx, path)
		if err != nil {
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			s.logger.Warn("failed to ingest file", "path", path, "error", err)
			return nil
		}
		results = append(results, FileResult{Path: path, ReceiptID: rec.ID.String()})
		stats.Succeeded++
		return nil
	})
	if err != nil {
		return results, stats, err
	}
	return results, stats, nil
}
