package dot

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/japinli/pg-node2graph/pkg/errors"
)

// Color is the block coloring for one record label. The background color
// doubles as the border color; Font is optional.
type Color struct {
	Background string
	Font       string
}

// ColorMap maps record labels to block colors.
type ColorMap map[string]Color

// DefaultColorMap returns the built-in mapping used when color output is
// enabled without an external mapping file.
func DefaultColorMap() ColorMap {
	return ColorMap{
		"QUERY":       {Background: "skyblue"},
		"PLANNEDSTMT": {Background: "pink"},
		"TARGETENTRY": {Background: "sienna"},
	}
}

// Merge overlays other onto m, other's entries winning on conflict.
func (m ColorMap) Merge(other ColorMap) {
	for name, c := range other {
		m[name] = c
	}
}

// ParseColorMap reads a color mapping in the `name, bgcolor[, fontcolor]`
// line format. Blank lines and lines starting with '#' are ignored. A
// malformed line is reported through warn (if non-nil) and skipped; the
// remaining lines still contribute mappings.
func ParseColorMap(r io.Reader, warn func(format string, args ...any)) (ColorMap, error) {
	m := make(ColorMap)
	sc := bufio.NewScanner(r)
	lineno := 0

	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		if len(fields) < 2 || len(fields) > 3 {
			if warn != nil {
				warn("invalid node color mapping at line %d", lineno)
			}
			continue
		}

		c := Color{Background: fields[1]}
		if len(fields) == 3 {
			c.Font = fields[2]
		}
		m[fields[0]] = c
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidColorMap, err, "read color mapping")
	}

	return m, nil
}

// LoadColorMapFile parses the color mapping file at path.
// See [ParseColorMap] for the format and error tolerance.
func LoadColorMapFile(path string, warn func(format string, args ...any)) (ColorMap, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open color mapping %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidColorMap, err, "open color mapping %s", path)
	}
	defer f.Close()

	return ParseColorMap(f, warn)
}
