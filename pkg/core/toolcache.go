package core

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrToolNotFound marks a purge tool that is not installed. Callers
// treat it as a skip, not a failure.
var ErrToolNotFound = errors.New("tool not found")

// CachePurger invokes an external tool's native cache purge command.
type CachePurger interface {
	Purge(name string, args ...string) error
}

type execPurger struct{}

// NewExecPurger returns a CachePurger that runs tools from PATH.
func NewExecPurger() CachePurger {
	return execPurger{}
}

func (execPurger) Purge(name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return ErrToolNotFound
	}

	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg != "" {
			return errors.New(msg)
		}
		return err
	}

	return nil
}
