package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the permission mode used when none is known.
const DefaultFileMode os.FileMode = 0644

// WriteAtomic writes content to path through a temp file in the same
// directory followed by a rename. If mode is 0, DefaultFileMode is used.
//
// On error the temp file is removed and the original file is untouched, so
// a failed rewrite never leaves a truncated target behind. Every failure
// after the context check wraps ErrWriteFailed.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, classifyErr(path, "create temp file for", err))
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("%w: write temp file: %w", ErrWriteFailed, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp file: %w", ErrWriteFailed, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrWriteFailed, err)
	}

	if err := os.Chmod(tmpPath, mode.Perm()); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrWriteFailed, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename temp file: %w", ErrWriteFailed, err)
	}

	success = true
	return nil
}
