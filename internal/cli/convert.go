package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/japinli/pg-node2graph/pkg/config"
	"github.com/japinli/pg-node2graph/pkg/dot"
	"github.com/japinli/pg-node2graph/pkg/errors"
	"github.com/japinli/pg-node2graph/pkg/nodetree"
	"github.com/japinli/pg-node2graph/pkg/render"
)

// defaultFormat is the picture format used when neither a flag nor the
// config file specifies one.
const defaultFormat = "png"

// convertOpts holds the command-line flags for the root conversion
// command. Values left at their defaults may be overlaid by the config
// file in applyConfig.
type convertOpts struct {
	color        bool   // colorize blocks and edges
	skipEmpty    bool   // omit rows whose value is the NULL marker
	colorMapFile string // external name → color mapping file
	dotDir       string // directory for intermediate dot files
	imgDir       string // directory for output pictures
	removeDots   bool   // delete intermediate dot files
	format       string // picture format (png, svg, jpg, dot)
	configFile   string // explicit config file path
}

func defaultConvertOpts() *convertOpts {
	return &convertOpts{}
}

// applyConfig loads the config file and overlays its values beneath any
// flags the user set explicitly, then applies the built-in defaults.
// The loaded config is returned so the caller can reach the inline color
// table.
func (o *convertOpts) applyConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.Load(o.configFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if !flags.Changed("format") && cfg.Format != "" {
		o.format = cfg.Format
	}
	if !flags.Changed("dot-directory") && cfg.DotDirectory != "" {
		o.dotDir = cfg.DotDirectory
	}
	if !flags.Changed("img-directory") && cfg.ImgDirectory != "" {
		o.imgDir = cfg.ImgDirectory
	}
	if !flags.Changed("node-color-map") && cfg.ColorMapFile != "" {
		o.colorMapFile = cfg.ColorMapFile
	}
	if !flags.Changed("color") && cfg.Color {
		o.color = true
	}
	if !flags.Changed("skip-empty") && cfg.SkipEmpty {
		o.skipEmpty = true
	}
	if !flags.Changed("remove-dots") && cfg.RemoveDots {
		o.removeDots = true
	}

	if o.format == "" {
		o.format = defaultFormat
	}
	return cfg, nil
}

// resolveColors builds the effective color map: the mapping file when
// given, the built-in defaults otherwise, with the config file's inline
// [colors] table merged on top. Returns nil when color output is off.
func resolveColors(ctx context.Context, o *convertOpts, cfg *config.Config) (dot.ColorMap, error) {
	if !o.color {
		return nil, nil
	}

	logger := loggerFromContext(ctx)
	var m dot.ColorMap
	if o.colorMapFile != "" {
		var err error
		m, err = dot.LoadColorMapFile(o.colorMapFile, logger.Warnf)
		if err != nil {
			return nil, err
		}
	} else {
		m = dot.DefaultColorMap()
	}
	m.Merge(cfg.ColorMap())
	return m, nil
}

// runConvert converts each input file in turn. A failing file is reported
// and skipped; the remaining files are still processed. An error is
// returned when at least one file failed, so the process exits non-zero.
func runConvert(ctx context.Context, files []string, o *convertOpts, colors dot.ColorMap) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	dotOpts := dot.Options{Color: o.color, SkipEmpty: o.skipEmpty, Colors: colors}

	failed := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := convertFile(ctx, file, o, dotOpts); err != nil {
			failed++
			printError("%s: %s", file, errors.UserMessage(err))
			logger.Debugf("convert %s: %v", file, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	prog.done(fmt.Sprintf("Converted %d file(s)", len(files)))
	return nil
}

// convertFile runs the full pipeline for one dump file: parse, serialize
// to DOT, render. The intermediate dot file lands next to the picture and
// is removed afterwards when --remove-dots is set.
func convertFile(ctx context.Context, path string, o *convertOpts, dotOpts dot.Options) error {
	logger := loggerFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	root, err := nodetree.Parse(f)
	f.Close()
	if err != nil {
		return err
	}
	logger.Debugf("parsed %s: %d nodes, %d edges", path, root.Count(), root.EdgeCount())

	script := dot.Script(root, dotOpts)

	dotFile := dotFilename(path, o.dotDir)
	if err := os.WriteFile(dotFile, []byte(script), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", dotFile)
	}
	if o.removeDots {
		defer os.Remove(dotFile)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", path))
	spinner.Start()
	img, err := render.Render(ctx, script, o.format)
	spinner.Stop()
	if err != nil {
		return err
	}

	imgFile := imgFilename(path, o.imgDir, o.format)
	if err := os.WriteFile(imgFile, img, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", imgFile)
	}

	printSuccess("%s", path)
	printFile(imgFile)
	if !o.removeDots {
		printFile(dotFile)
	}
	return nil
}
