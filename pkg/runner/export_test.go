package runner

// SetBeforeWrite installs fn to run between the read and the rewrite.
func (r *Runner) SetBeforeWrite(fn func(path string)) {
	r.beforeWrite = fn
}
