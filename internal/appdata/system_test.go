package appdata

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Getenv, GOOS, HomeDir, and Now never consult the process: unset values read
// from the env map, "linux", the home field, and the now field. Filesystem
// methods fall back to RealSystem so tests can use t.TempDir fixtures.
type testSystem struct {
	RealSystem

	env  map[string]string
	goos string
	home string
	now  time.Time

	HomeDirFunc   func() (string, error)
	StatFunc      func(name string) (os.FileInfo, error)
	MkdirAllFunc  func(path string, perm os.FileMode) error
	RemoveAllFunc func(path string) error
}

func (s *testSystem) Getenv(key string) string {
	return s.env[key]
}

func (s *testSystem) GOOS() string {
	if s.goos == "" {
		return "linux"
	}
	return s.goos
}

func (s *testSystem) HomeDir() (string, error) {
	if s.HomeDirFunc != nil {
		return s.HomeDirFunc()
	}
	if s.home == "" {
		return "", fmt.Errorf("%w: HomeDir", errNotMocked)
	}
	return s.home, nil
}

func (s *testSystem) Now() time.Time {
	return s.now
}

func (s *testSystem) Stat(name string) (os.FileInfo, error) {
	if s.StatFunc != nil {
		return s.StatFunc(name)
	}
	return s.RealSystem.Stat(name)
}

func (s *testSystem) MkdirAll(path string, perm os.FileMode) error {
	if s.MkdirAllFunc != nil {
		return s.MkdirAllFunc(path, perm)
	}
	return s.RealSystem.MkdirAll(path, perm)
}

func (s *testSystem) RemoveAll(path string) error {
	if s.RemoveAllFunc != nil {
		return s.RemoveAllFunc(path)
	}
	return s.RealSystem.RemoveAll(path)
}
