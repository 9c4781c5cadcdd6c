package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/japinli/pg-node2graph/pkg/buildinfo"
	"github.com/japinli/pg-node2graph/pkg/render"
)

// Execute runs the pg-node2graph CLI and returns an error if any command
// fails. The root command itself performs the conversion; `colors` and
// `completion` are the only subcommands.
func Execute(ctx context.Context) error {
	var verbose bool
	opts := defaultConvertOpts()

	root := &cobra.Command{
		Use:   "pg-node2graph [flags] <file>...",
		Short: "Convert PostgreSQL node trees into pictures",
		Long: `pg-node2graph converts textual PostgreSQL node tree dumps (the output of
debug_print_parse, debug_print_rewritten or debug_print_plan) into pictures.

Each input file is parsed into a node tree, serialized to Graphviz DOT and
rendered with the embedded Graphviz engine. The intermediate DOT file is kept
next to the picture unless --remove-dots is given.`,
		Version:       buildinfo.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.applyConfig(cmd)
			if err != nil {
				return err
			}
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			colors, err := resolveColors(cmd.Context(), opts, cfg)
			if err != nil {
				return err
			}
			return runConvert(cmd.Context(), args, opts, colors)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	addConvertFlags(root, opts)

	root.AddCommand(newColorsCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// addConvertFlags registers the conversion flags on cmd, binding them to
// opts. Split out so tests can exercise the config overlay with the same
// flag definitions the root command uses.
func addConvertFlags(cmd *cobra.Command, opts *convertOpts) {
	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default: ~/.config/pg-node2graph/config.toml)")
	cmd.Flags().BoolVarP(&opts.color, "color", "c", false, "render the output with color")
	cmd.Flags().BoolVarP(&opts.skipEmpty, "skip-empty", "s", false, "skip empty fields")
	cmd.Flags().StringVarP(&opts.colorMapFile, "node-color-map", "n", "", "color mapping file (with --color)")
	cmd.Flags().StringVarP(&opts.dotDir, "dot-directory", "D", "", "directory for intermediate dot files")
	cmd.Flags().StringVarP(&opts.imgDir, "img-directory", "I", "", "directory for output pictures")
	cmd.Flags().BoolVarP(&opts.removeDots, "remove-dots", "r", false, "remove intermediate dot files")
	cmd.Flags().StringVarP(&opts.format, "format", "T", "", "picture format: png (default), svg, jpg, dot")
}
