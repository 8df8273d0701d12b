package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldBackup = "backup"

	// Configuration fields.
	FieldDryRun   = "dry_run"
	FieldLogLevel = "log_level"
	FieldFiles    = "files"
	FieldConfig   = "config"

	// Annotation fields.
	FieldLanguage   = "language"
	FieldLines      = "lines"
	FieldCodeLines  = "code_lines"
	FieldInsertions = "insertions"
	FieldSuppressed = "suppressed"
	FieldDuration   = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
