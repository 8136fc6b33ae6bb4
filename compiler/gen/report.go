package gen

// Progress is one step of a generation run: the files of one artifact class
// that were written.
type Progress struct {
	// Phase is one of the Phase constants.
	Phase string
	// Subject is the entity the files belong to, if any.
	Subject string
	// Files are the written paths, relative to the project root.
	Files []string
}

// Reporter receives the progress of a run.
type Reporter interface {
	Progress(Progress)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Progress)

// Progress implements Reporter.
func (f ReporterFunc) Progress(p Progress) { f(p) }

// NopReporter discards progress.
type NopReporter struct{}

// Progress implements Reporter.
func (NopReporter) Progress(Progress) {}
