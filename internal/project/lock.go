package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".renderbatch.lock"

// Lock is an advisory lock over a project directory, held while writing
// AOV documents or batch scripts.
type Lock struct {
	lock *flock.Flock
}

// AcquireLock takes the project lock without blocking. It fails when
// another renderbatch invocation is currently writing into the project.
func AcquireLock(ctx Context) (*Lock, error) {
	if ctx.IsZero() {
		return nil, errors.New("cannot lock an empty project")
	}
	fl := flock.New(filepath.Join(ctx.Root(), lockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire project lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("project %s is locked by another renderbatch instance", ctx.Root())
	}
	return &Lock{lock: fl}, nil
}

// Release drops the lock. Safe to call on a nil receiver.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
