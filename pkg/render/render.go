// Package render rasterizes DOT documents using an embedded Graphviz
// engine, so no external `dot` binary is required.
package render

import (
	"bytes"
	"context"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/japinli/pg-node2graph/pkg/errors"
)

// formats maps the supported output format names to Graphviz formats.
var formats = map[string]graphviz.Format{
	"png": graphviz.PNG,
	"svg": graphviz.SVG,
	"jpg": graphviz.JPG,
	"dot": graphviz.XDOT,
}

// Formats returns the supported output format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	if _, ok := formats[format]; !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (supported: png, svg, jpg, dot)", format)
	}
	return nil
}

// Render lays out the DOT document and returns the image bytes in the
// requested format. The context bounds the layout computation.
func Render(ctx context.Context, dotSrc string, format string) ([]byte, error) {
	gvFormat, ok := formats[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dotSrc))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
