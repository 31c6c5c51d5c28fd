package sieve

// Message constants
const (
	MsgRootShort = "Decide which filesystem paths an ignore-pattern set excludes"
	MsgRootLong  = `sieve evaluates filesystem paths against ordered gitignore-style
pattern sets. Patterns come from built-in presets, ignore files, and
literal flags, layered in that order; the last matching pattern decides,
and nothing beneath an excluded directory can be re-included.`

	MsgCheckShort = "Check whether paths are excluded"
	MsgCheckLong  = `Evaluate each path against the active pattern set and print the
excluded ones, one per line. With --detail, each line shows the deciding
pattern and its source line, git-check-ignore style.

Exits 0 when at least one path is excluded, 1 when none are.`

	MsgFilterShort = "Walk a directory and print the paths that survive"
	MsgFilterLong  = `Walk a directory tree applying the active pattern set. Kept paths
are printed one per line; excluded directories are pruned, so their
contents are never visited. --excluded inverts the output.`

	MsgExplainShort = "Show the full decision for one path"
	MsgExplainLong  = `Print the verdict for a single path together with the pattern that
decided it: the pattern text, its source line, whether it was a negation,
and whether an excluded ancestor directory made the decision terminal.`

	MsgPresetsShort = "List built-in presets or print one"
	MsgPresetsLong  = `Without arguments, list the names of the built-in pattern groups.
With a name, print that preset's patterns in ignore-file format.`

	MsgConfigShort = "Print the effective configuration"
)
