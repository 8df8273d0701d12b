package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/asciistamp/internal/logging"
	"github.com/yaklabco/asciistamp/pkg/annotate"
	"github.com/yaklabco/asciistamp/pkg/diff"
	"github.com/yaklabco/asciistamp/pkg/fsutil"
	"github.com/yaklabco/asciistamp/pkg/langdetect"
)

// Runner annotates a target file.
type Runner struct {
	logger *log.Logger

	// beforeWrite runs after the file is read and before it is rewritten.
	beforeWrite func(path string)
}

// New creates a Runner. A nil logger means the logger attached to the
// context passed to Run, see logging.FromContext.
func New(logger *log.Logger) *Runner {
	return &Runner{logger: logger}
}

func (r *Runner) loggerFor(ctx context.Context) *log.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.FromContext(ctx)
}

// Run annotates the target described by opts.
//
// The file is read in full, transformed in memory and written back through
// a temp file and rename. Nothing is written when no block is inserted or
// when opts.DryRun is set. If the file changes between the read and the
// write, the run fails with fsutil.ErrModifiedExternally.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	path := opts.resolvedPath()
	logger := r.loggerFor(ctx)

	content, info, err := fsutil.ReadText(ctx, path)
	if err != nil {
		return nil, err
	}

	result := &Result{Path: path}

	result.Language = langdetect.Detect(path, []byte(content))
	if !langdetect.CStyleComments(result.Language) {
		logger.Warn("target language does not use // and /* */ comments; inserting anyway",
			logging.FieldPath, path,
			logging.FieldLanguage, result.Language,
		)
	}

	result.Annotation = annotate.Annotate(content)

	logger.Debug("annotated",
		logging.FieldPath, path,
		logging.FieldLanguage, result.Language,
		logging.FieldLines, result.Annotation.Lines,
		logging.FieldCodeLines, result.Annotation.CodeLines,
		logging.FieldInsertions, len(result.Annotation.Insertions),
		logging.FieldSuppressed, result.Annotation.Suppressed,
	)

	switch {
	case opts.DryRun:
		result.Diff = diff.FromInsertions(opts.Path, content, result.Annotation)
	case result.Annotation.Changed():
		if err := r.write(ctx, logger, opts, info, content, result); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// write checks for external changes before the backup so a stale backup is
// never left next to a file the user has since edited.
func (r *Runner) write(
	ctx context.Context,
	logger *log.Logger,
	opts Options,
	info *fsutil.FileInfo,
	original string,
	result *Result,
) error {
	if r.beforeWrite != nil {
		r.beforeWrite(info.Path)
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return err
	}
	if modified {
		return fmt.Errorf("%w: %s", fsutil.ErrModifiedExternally, info.Path)
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, info.Path, []byte(original), info.Mode)
		if err != nil {
			return err
		}
		result.BackupCreated = created
		if created {
			logger.Debug("backup created", logging.FieldBackup, fsutil.BackupPath(info.Path))
		}
	}

	if err := fsutil.WriteAtomic(ctx, info.Path, []byte(result.Annotation.Output), info.Mode); err != nil {
		return fmt.Errorf("write %s: %w", info.Path, err)
	}
	result.Written = true

	return nil
}
