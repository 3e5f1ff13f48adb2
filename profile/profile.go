package profile

import (
	"errors"
	"fmt"
	"runtime/pprof"

	"github.com/spf13/afero"
)

// ErrProfile indicates that a profile could not be written.
var ErrProfile = errors.New("profile")

// Session is a running profiling session.
//
// Create instances with [Config.Start].
type Session struct {
	fs      afero.Fs
	cpuFile afero.File
	heap    string
	allocs  string
}

// Start begins CPU profiling if enabled and returns a [Session] that writes
// the remaining profiles when stopped. Profiles are created on fs.
func (c *Config) Start(fs afero.Fs) (*Session, error) {
	s := &Session{
		fs:     fs,
		heap:   c.HeapProfile,
		allocs: c.AllocsProfile,
	}

	if c.CPUProfile == "" {
		return s, nil
	}

	f, err := fs.Create(c.CPUProfile)
	if err != nil {
		return nil, fmt.Errorf("%w: create cpu profile: %w", ErrProfile, err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		closeErr := f.Close()

		return nil, fmt.Errorf("%w: start cpu profile: %w", ErrProfile, errors.Join(err, closeErr))
	}

	s.cpuFile = f

	return s, nil
}

// Stop ends CPU profiling and writes the heap and allocs profiles. A nil
// Session is a no-op. Stop is idempotent.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	var errs []error

	if s.cpuFile != nil {
		pprof.StopCPUProfile()

		err := s.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: close cpu profile: %w", ErrProfile, err))
		}

		s.cpuFile = nil
	}

	for name, path := range map[string]string{"heap": s.heap, "allocs": s.allocs} {
		if path == "" {
			continue
		}

		err := s.writeProfile(name, path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.heap, s.allocs = "", ""

	return errors.Join(errs...)
}

func (s *Session) writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("%w: unknown profile %q", ErrProfile, name)
	}

	f, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s profile: %w", ErrProfile, name, err)
	}

	err = errors.Join(prof.WriteTo(f, 0), f.Close())
	if err != nil {
		return fmt.Errorf("%w: write %s profile: %w", ErrProfile, name, err)
	}

	return nil
}
