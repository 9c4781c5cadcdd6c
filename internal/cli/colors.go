package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/japinli/pg-node2graph/pkg/config"
	"github.com/japinli/pg-node2graph/pkg/dot"
)

// newColorsCmd creates the colors command, which prints the color table
// that a conversion with --color would use: the mapping file or built-in
// defaults, plus the config file's inline [colors] entries.
func newColorsCmd() *cobra.Command {
	var (
		colorMapFile string
		configFile   string
	)

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Print the effective node color table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if configFile != "" {
				cfg, err = config.Load(configFile)
			} else {
				cfg, err = config.LoadDefault()
			}
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			var m dot.ColorMap
			if colorMapFile != "" {
				m, err = dot.LoadColorMapFile(colorMapFile, logger.Warnf)
				if err != nil {
					return err
				}
			} else {
				m = dot.DefaultColorMap()
			}
			m.Merge(cfg.ColorMap())

			if len(m) == 0 {
				printWarning("no colors configured")
				return nil
			}

			names := make([]string, 0, len(m))
			for name := range m {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				c := m[name]
				value := c.Background
				if c.Font != "" {
					value += ", font " + c.Font
				}
				printKeyValue(name, value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&colorMapFile, "node-color-map", "n", "", "color mapping file")
	cmd.Flags().StringVar(&configFile, "config", "", "config file")

	return cmd
}
