package appdata

import (
	"os"
	"runtime"
	"time"

	"github.com/mitchellh/go-homedir"
)

// System abstracts the environment, clock, and filesystem operations used by
// path resolution and directory management. Tests substitute their own
// implementation instead of mutating process state.
type System interface {
	Getenv(key string) string
	GOOS() string
	HomeDir() (string, error)
	Now() time.Time
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
}

// RealSystem implements System using the running process.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// GOOS returns the operating system the binary was built for.
func (RealSystem) GOOS() string {
	return runtime.GOOS
}

// HomeDir returns the current user's home directory. The lookup is repeated
// on every call so changes to $HOME are observed.
func (RealSystem) HomeDir() (string, error) {
	homedir.Reset()
	return homedir.Dir()
}

// Now returns the current local time.
func (RealSystem) Now() time.Time {
	return time.Now()
}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (RealSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func orReal(sys System) System {
	if sys == nil {
		return RealSystem{}
	}
	return sys
}
