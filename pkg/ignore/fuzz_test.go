// Test Type: Fuzz Test
// Description: Evaluation must never panic and must be deterministic for
// any content that parses

package ignore_test

import (
	"testing"

	"github.com/arthur-debert/sieve/pkg/ignore"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("*.bak\n!keep.bak\nbuild/\n", "build/keep.bak")
	f.Add("**/cache/\n!important\n", "a/cache/b")
	f.Add("[a-z]?*\n", "x1y")
	f.Add("\\!literal\n#comment\n", "!literal")

	f.Fuzz(func(t *testing.T, content, path string) {
		set, err := ignore.Parse([]byte(content))
		if err != nil {
			// Malformed patterns are rejected at load; nothing to evaluate.
			return
		}

		first := set.Evaluate(path, false)
		second := set.Evaluate(path, false)
		if first != second {
			t.Fatalf("evaluation not deterministic for %q / %q: %+v vs %+v", content, path, first, second)
		}

		if !first.Matched && first.Excluded {
			t.Fatalf("excluded without a matching pattern for %q / %q", content, path)
		}
	})
}
