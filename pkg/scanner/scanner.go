// Package scanner walks a file tree applying a pattern set, reporting
// which paths are kept and which are excluded. Excluded directories are
// pruned, so nothing beneath them is visited — consistent with terminal
// directory exclusion.
package scanner

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/sieve/pkg/errors"
	"github.com/arthur-debert/sieve/pkg/ignore"
	"github.com/arthur-debert/sieve/pkg/logging"
)

// Result holds the outcome of one walk, in walk order.
type Result struct {
	Kept     []string
	Excluded []string
}

// Scanner applies one pattern set while walking.
type Scanner struct {
	set    *ignore.Set
	logger zerolog.Logger
}

// New creates a scanner over the given set.
func New(set *ignore.Set) *Scanner {
	return &Scanner{
		set:    set,
		logger: logging.GetLogger("scanner"),
	}
}

// WalkDir walks a directory on the OS filesystem.
func (s *Scanner) WalkDir(dir string) (Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, errors.Wrapf(err, errors.ErrFileNotFound, "directory %s does not exist", dir)
		}
		return Result{}, errors.Wrapf(err, errors.ErrFileAccess, "stat %s", dir)
	}
	if !info.IsDir() {
		return Result{}, errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir)
	}
	return s.Walk(os.DirFS(dir))
}

// Walk walks fsys from its root. Paths in the result are relative,
// slash-separated, and never include the root itself.
func (s *Scanner) Walk(fsys fs.FS) (Result, error) {
	var result Result

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "walking %s", path)
		}
		if path == "." {
			return nil
		}

		// Ancestors were already checked (excluded directories are pruned),
		// so a single-level verdict suffices here.
		if s.set.Match(path, d.IsDir()) {
			result.Excluded = append(result.Excluded, path)
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		result.Kept = append(result.Kept, path)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug().
		Int("kept", len(result.Kept)).
		Int("excluded", len(result.Excluded)).
		Msg("Walk completed")

	return result, nil
}
