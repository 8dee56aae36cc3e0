package core

import (
	"os"
	"path/filepath"
)

// removePath deletes the entry at path, file or directory, counting
// every removed entry. The boolean reports whether the entry is gone
// afterwards. Missing paths are a no-op. Keep-listed paths are left in
// place, as is any directory that still holds one.
func (c *Cleaner) removePath(path string) (CleanResult, bool, error) {
	var res CleanResult

	rel := c.rel(path)
	if c.keep.Protected(rel) {
		c.log.Debugf("keep list: skipping %s", rel)
		return res, false, nil
	}
	if _, counted := c.seen[path]; counted {
		return res, true, nil
	}

	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return res, true, nil
	}
	if err != nil {
		return res, false, err
	}

	if info.IsDir() {
		return c.removeDir(path)
	}

	if c.cfg.DryRun {
		c.seen[path] = struct{}{}
		res.FilesRemoved = 1
		res.SpaceFreed = info.Size()
		c.log.Debugf("would remove file %s (%d bytes)", rel, info.Size())
		return res, true, nil
	}

	if err := os.Remove(path); err != nil {
		return res, false, err
	}
	res.FilesRemoved = 1
	res.SpaceFreed = info.Size()
	c.log.Debugf("removed file %s (%d bytes)", rel, info.Size())

	return res, true, nil
}

// removeDir empties dir child by child, then removes the directory
// itself once nothing is left. A failed child is logged and does not
// stop the rest of the tree.
func (c *Cleaner) removeDir(dir string) (CleanResult, bool, error) {
	var res CleanResult

	entries, err := os.ReadDir(dir)
	if err != nil {
		return res, false, err
	}

	empty := true
	for _, entry := range entries {
		child := filepath.Join(dir, entry.Name())
		sub, gone, err := c.removePath(child)
		res.Add(sub)
		if err != nil {
			c.log.Warnf("failed to remove %s: %v", c.rel(child), err)
			empty = false
			continue
		}
		if !gone {
			empty = false
		}
	}

	if !empty {
		c.log.Debugf("left non-empty directory %s", c.rel(dir))
		return res, false, nil
	}

	if c.cfg.DryRun {
		c.seen[dir] = struct{}{}
		res.DirsRemoved++
		c.log.Debugf("would remove directory %s", c.rel(dir))
		return res, true, nil
	}

	if err := os.Remove(dir); err != nil {
		return res, false, err
	}
	res.DirsRemoved++
	c.log.Debugf("removed directory %s", c.rel(dir))

	return res, true, nil
}

// rel rewrites path relative to the project root for log output.
func (c *Cleaner) rel(path string) string {
	rel, err := filepath.Rel(c.cfg.Root, path)
	if err != nil {
		return path
	}
	return rel
}
