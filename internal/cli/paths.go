package cli

import "path/filepath"

// dotFilename derives the intermediate DOT file path for an input file.
// With a directory set, the file keeps its base name and moves there;
// otherwise it lands next to the input.
func dotFilename(input, dir string) string {
	if dir != "" {
		return filepath.Join(dir, filepath.Base(input)+".dot")
	}
	return input + ".dot"
}

// imgFilename derives the output picture path for an input file, using
// the format name as extension.
func imgFilename(input, dir, format string) string {
	if dir != "" {
		return filepath.Join(dir, filepath.Base(input)+"."+format)
	}
	return input + "." + format
}
