// Package presets ships built-in exclusion groups, one per originating
// tool or platform (language build caches, editor swap files, OS metadata
// files, SSH key material). Each preset is a plain ignore-format file
// embedded at build time.
package presets

import (
	"embed"
	"sort"
	"strings"

	"github.com/arthur-debert/sieve/pkg/errors"
	"github.com/arthur-debert/sieve/pkg/ignore"
)

//go:embed data/*.gitignore
var presetFS embed.FS

const dataDir = "data"

// Names returns the available preset names, sorted.
func Names() []string {
	entries, err := presetFS.ReadDir(dataDir)
	if err != nil {
		// The embedded directory always exists; this cannot happen at runtime.
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".gitignore"))
	}
	sort.Strings(names)
	return names
}

// Content returns the raw ignore-format text of a preset.
func Content(name string) ([]byte, error) {
	content, err := presetFS.ReadFile(dataDir + "/" + name + ".gitignore")
	if err != nil {
		return nil, errors.Newf(errors.ErrPresetNotFound, "unknown preset %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}
	return content, nil
}

// Load returns a preset compiled into a pattern set.
func Load(name string) (*ignore.Set, error) {
	content, err := Content(name)
	if err != nil {
		return nil, err
	}
	set, err := ignore.Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesetLoad, "compiling preset %q", name)
	}
	return set, nil
}
