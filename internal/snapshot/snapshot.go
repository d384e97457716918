// Package snapshot writes a static copy of the site to disk so it can be
// served by any file server.
package snapshot

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/lalitmohan/portfolio/internal/logging"
)

// IndexFile is the name the rendered page is written under.
const IndexFile = "index.html"

// StaticDir mirrors the /static/ URL prefix.
const StaticDir = "static"

// File is an extra document written next to the page, e.g. robots.txt.
type File struct {
	Path string
	Data []byte
}

// Write stores page as index.html, every file of static under static/ and the
// extra files, each replaced atomically. It returns the number of files
// written.
func Write(ctx context.Context, dir string, page []byte, static fs.FS, extra ...File) (int, error) {
	logger := logging.FromContext(ctx)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create snapshot dir: %w", err)
	}

	if err := writeFile(ctx, filepath.Join(dir, IndexFile), page); err != nil {
		return 0, err
	}
	written := 1

	for _, f := range extra {
		if !fs.ValidPath(f.Path) || f.Path == "." {
			return written, fmt.Errorf("snapshot file %q: invalid path", f.Path)
		}
		if err := writeFile(ctx, filepath.Join(dir, filepath.FromSlash(f.Path)), f.Data); err != nil {
			return written, err
		}
		written++
	}

	err := fs.WalkDir(static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(static, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}
		if err := writeFile(ctx, filepath.Join(dir, StaticDir, filepath.FromSlash(p)), data); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy static assets: %w", err)
	}

	logger.Info().Str("dir", dir).Int("files", written).Msg("snapshot written")
	return written, nil
}

func writeFile(ctx context.Context, path string, data []byte) error {
	logger := logging.FromContext(ctx)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("cleanup pending file")
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
