package core

// Mode selects how much the cleaner removes.
type Mode string

const (
	// ModeSafe removes development and build artifacts only.
	ModeSafe Mode = "safe"
	// ModeEverything additionally removes user data, gated by an
	// interactive confirmation.
	ModeEverything Mode = "everything"
)

// TargetKind tells a sweep what a pattern applies to.
type TargetKind int

const (
	// KindFile matches regular files by base name.
	KindFile TargetKind = iota
	// KindDir matches directories by base name.
	KindDir
)

// Config holds one run's settings.
type Config struct {
	Root      string
	Mode      Mode
	DryRun    bool
	AssumeYes bool
}

// CleanResult accumulates deletion counters for one step or one run.
type CleanResult struct {
	FilesRemoved int64
	DirsRemoved  int64
	SpaceFreed   int64
}

// Add folds another result into r.
func (r *CleanResult) Add(other CleanResult) {
	r.FilesRemoved += other.FilesRemoved
	r.DirsRemoved += other.DirsRemoved
	r.SpaceFreed += other.SpaceFreed
}

// Report is the immutable outcome of a completed run.
type Report struct {
	FilesDeleted int64
	DirsDeleted  int64
	SpaceFreed   int64
	Mode         Mode
	DryRun       bool
}

// TotalItems is the number of filesystem entries removed.
func (r Report) TotalItems() int64 {
	return r.FilesDeleted + r.DirsDeleted
}
