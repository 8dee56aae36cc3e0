package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"kotaclean/pkg/constants"
)

// ErrDeclined is returned when the operator declines the everything
// mode confirmation. Nothing has been deleted.
var ErrDeclined = errors.New("cleanup declined")

// Cleaner resets a project workspace according to its configuration.
type Cleaner struct {
	cfg     Config
	log     *logrus.Logger
	keep    *KeepList
	confirm Confirmer
	purger  CachePurger
	out     io.Writer

	// seen tracks paths already counted during a dry run, where nothing
	// actually leaves the disk and later sweeps would find them again.
	seen map[string]struct{}
}

// Option overrides a Cleaner collaborator.
type Option func(*Cleaner)

// WithConfirmer replaces the interactive confirmation prompt.
func WithConfirmer(confirm Confirmer) Option {
	return func(c *Cleaner) { c.confirm = confirm }
}

// WithPurger replaces the external tool cache purger.
func WithPurger(purger CachePurger) Option {
	return func(c *Cleaner) { c.purger = purger }
}

// WithOutput redirects progress and summary output.
func WithOutput(out io.Writer) Option {
	return func(c *Cleaner) { c.out = out }
}

// NewCleaner creates a cleaner bound to stdin/stdout and the system
// PATH unless options say otherwise.
func NewCleaner(cfg Config, logger *logrus.Logger, opts ...Option) *Cleaner {
	c := &Cleaner{
		cfg:     cfg,
		log:     logger,
		keep:    &KeepList{},
		confirm: NewStdioConfirmer(os.Stdin, os.Stdout),
		purger:  NewExecPurger(),
		out:     os.Stdout,
		seen:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckProjectRoot verifies both marker files exist in root, proving
// the cleaner is about to mutate the right directory tree.
func CheckProjectRoot(root string) error {
	for _, marker := range []string{constants.MarkerAppFile, constants.MarkerSettingsFile} {
		if _, err := os.Stat(filepath.Join(root, marker)); err != nil {
			return fmt.Errorf("%s not found: kotaclean must run from the project root", marker)
		}
	}
	return nil
}

// Run executes the full cleanup sequence and returns the report. The
// only early exits are a failed root check and a declined confirmation
// (ErrDeclined); both happen before any deletion.
func (c *Cleaner) Run() (*Report, error) {
	if err := CheckProjectRoot(c.cfg.Root); err != nil {
		return nil, err
	}

	keep, err := ReadKeepList(c.cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", constants.KeepListFile, err)
	}
	c.keep = keep
	if keep.Len() > 0 {
		c.log.Infof("loaded %d keep patterns from %s", keep.Len(), constants.KeepListFile)
	}

	if c.cfg.Mode == ModeEverything && !c.cfg.AssumeYes {
		ok, err := c.confirmEverything()
		if err != nil {
			return nil, fmt.Errorf("read confirmation: %w", err)
		}
		if !ok {
			return nil, ErrDeclined
		}
	}

	steps := []struct {
		name string
		run  func() (CleanResult, error)
	}{
		{"user data", c.cleanUserData},
		{"installation artifacts", c.cleanInstallArtifacts},
		{"Python bytecode", c.cleanBytecode},
		{"build artifacts", c.cleanBuildArtifacts},
		{"test and lint caches", c.cleanCheckCaches},
		{"environment files", c.cleanEnvFiles},
		{"logs", c.cleanLogs},
		{"editor and OS artifacts", c.cleanEditorArtifacts},
		{"temp files", c.cleanTempFiles},
		{"virtual environments", c.cleanVirtualEnvs},
	}

	var total CleanResult
	for _, step := range steps {
		res, err := step.run()
		total.Add(res)
		if err != nil {
			return nil, fmt.Errorf("clean %s: %w", step.name, err)
		}
	}

	c.purgeExternalCaches()

	return &Report{
		FilesDeleted: total.FilesRemoved,
		DirsDeleted:  total.DirsRemoved,
		SpaceFreed:   total.SpaceFreed,
		Mode:         c.cfg.Mode,
		DryRun:       c.cfg.DryRun,
	}, nil
}

func (c *Cleaner) confirmEverything() (bool, error) {
	warn := color.New(color.FgRed, color.Bold)
	warn.Fprintln(c.out, "WARNING: everything mode permanently deletes user data:")
	fmt.Fprintln(c.out, "  - user documents and conversations (ktem_app_data)")
	fmt.Fprintln(c.out, "  - web interface temp files (gradio_tmp)")
	fmt.Fprintln(c.out, "  - persisted vector indices (storage)")
	return c.confirm.Confirm("Continue? [y/N]: ")
}

// ========== cleanup steps ==========

func (c *Cleaner) cleanUserData() (CleanResult, error) {
	var res CleanResult
	if c.cfg.Mode != ModeEverything {
		return res, nil
	}
	c.step("Removing user data")
	return c.removeFixed(constants.UserDataDirs)
}

func (c *Cleaner) cleanInstallArtifacts() (CleanResult, error) {
	c.step("Removing installation artifacts")
	return c.removeFixed(constants.InstallDirs)
}

func (c *Cleaner) cleanBytecode() (CleanResult, error) {
	c.step("Removing Python bytecode")
	res := c.sweep(constants.BytecodeDirName, KindDir)
	for _, glob := range constants.BytecodeFileGlobs {
		res.Add(c.sweep(glob, KindFile))
	}
	return res, nil
}

func (c *Cleaner) cleanBuildArtifacts() (CleanResult, error) {
	c.step("Removing build artifacts")
	res, err := c.removeFixed(constants.BuildDirs)
	if err != nil {
		return res, err
	}
	res.Add(c.sweep(constants.PackagingDirGlob, KindDir))
	return res, nil
}

func (c *Cleaner) cleanCheckCaches() (CleanResult, error) {
	c.step("Removing test and lint caches")
	res, err := c.removeFixed(constants.CacheDirs)
	if err != nil {
		return res, err
	}
	sub, err := c.removeFixed(constants.CacheFiles)
	res.Add(sub)
	if err != nil {
		return res, err
	}
	res.Add(c.sweep(constants.NotebookDirName, KindDir))
	return res, nil
}

func (c *Cleaner) cleanEnvFiles() (CleanResult, error) {
	c.step("Removing environment files")
	return c.sweep(constants.EnvFileName, KindFile), nil
}

func (c *Cleaner) cleanLogs() (CleanResult, error) {
	c.step("Removing logs")
	res, err := c.removeFixed(constants.LogDirs)
	if err != nil {
		return res, err
	}
	res.Add(c.sweep(constants.LogFileGlob, KindFile))
	return res, nil
}

func (c *Cleaner) cleanEditorArtifacts() (CleanResult, error) {
	c.step("Removing editor and OS artifacts")
	res, err := c.removeFixed(constants.EditorDirs)
	if err != nil {
		return res, err
	}
	for _, glob := range constants.EditorFileGlobs {
		res.Add(c.sweep(glob, KindFile))
	}
	return res, nil
}

func (c *Cleaner) cleanTempFiles() (CleanResult, error) {
	c.step("Removing temp files")
	var res CleanResult
	for _, glob := range constants.TempFileGlobs {
		res.Add(c.sweep(glob, KindFile))
	}
	return res, nil
}

func (c *Cleaner) cleanVirtualEnvs() (CleanResult, error) {
	c.step("Removing virtual environments")
	var res CleanResult
	for _, name := range constants.VenvDirNames {
		res.Add(c.sweep(name, KindDir))
	}
	return res, nil
}

// purgeExternalCaches runs the package and environment managers' own
// cache purge commands when the tools are installed. Failures are
// warnings, never fatal.
func (c *Cleaner) purgeExternalCaches() {
	c.step("Purging external tool caches")
	if c.cfg.DryRun {
		c.progress("skipped (dry run)")
		return
	}

	purges := []struct {
		name string
		args []string
	}{
		{"pip", []string{"cache", "purge"}},
		{"conda", []string{"clean", "--all", "--yes"}},
	}
	for _, p := range purges {
		err := c.purger.Purge(p.name, p.args...)
		switch {
		case errors.Is(err, ErrToolNotFound):
			c.log.Debugf("%s not installed, skipping cache purge", p.name)
		case err != nil:
			c.log.Warnf("%s cache purge failed: %v", p.name, err)
		default:
			c.progress("purged %s cache", p.name)
		}
	}
}

// ========== deletion helpers ==========

// removeFixed deletes each named path at the project root. A failure
// on a fixed path is fatal to the run.
func (c *Cleaner) removeFixed(names []string) (CleanResult, error) {
	var res CleanResult
	for _, name := range names {
		sub, gone, err := c.removePath(filepath.Join(c.cfg.Root, name))
		res.Add(sub)
		if err != nil {
			return res, fmt.Errorf("remove %s: %w", name, err)
		}
		if gone && sub.FilesRemoved+sub.DirsRemoved > 0 {
			c.progress("removed %s", name)
		}
	}
	return res, nil
}

// sweep finds and deletes every entry matching pattern under the root.
// Each match is attempted independently; one failed match never stops
// the rest.
func (c *Cleaner) sweep(pattern string, kind TargetKind) CleanResult {
	var res CleanResult

	matches, err := FindMatches(c.cfg.Root, pattern, kind)
	if err != nil {
		c.log.Warnf("sweep %s: %v", pattern, err)
		return res
	}

	for _, match := range matches {
		sub, _, err := c.removePath(match)
		res.Add(sub)
		if err != nil {
			c.log.Warnf("failed to remove %s: %v", c.rel(match), err)
		}
	}

	if n := res.FilesRemoved + res.DirsRemoved; n > 0 {
		c.progress("removed %d entries matching %s", n, pattern)
	}
	return res
}

// ========== progress output ==========

func (c *Cleaner) step(msg string) {
	color.New(color.FgCyan).Fprintf(c.out, "==> %s\n", msg)
}

func (c *Cleaner) progress(format string, args ...any) {
	fmt.Fprintf(c.out, "    "+format+"\n", args...)
}
