package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindloom/mindloom/pkg/document"
	"github.com/mindloom/mindloom/pkg/export"
)

// newExportCmd creates the "export" command: render a document to an
// image file without opening an editing session.
func newExportCmd() *cobra.Command {
	var (
		output      string
		format      string
		size        string
		transparent bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render a mind map document to PNG or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			m, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("document loaded", "path", args[0], "nodes", m.NodeCount())

			if output == "" {
				output = strings.TrimSuffix(args[0], document.DefaultExtension) + "." + format
			}

			switch format {
			case "svg":
				if err := export.WriteSVG(output, m); err != nil {
					return err
				}
			case "dot":
				if err := export.WriteDOT(output, m); err != nil {
					return err
				}
			case "png":
				opts := export.Options{Transparent: transparent}
				if size != "" {
					opts.Width, opts.Height, err = parseSize(size)
					if err != nil {
						return err
					}
				}
				if err := export.WritePNG(output, m, opts); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q: want png, svg, or dot", format)
			}

			printSuccess("Exported %d nodes", m.NodeCount())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "png", "output format: png, svg, or dot")
	cmd.Flags().StringVar(&size, "size", "", "PNG size as WIDTHxHEIGHT (default: natural size)")
	cmd.Flags().BoolVar(&transparent, "transparent", false, "skip the background fill (PNG only)")

	return cmd
}
