package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/comeng/kml"
)

var convertCmd = &cobra.Command{
	Use:   "convert <sitac.xml>",
	Short: "Convert a SITAC file to KML",
	Long:  "Decode every figure of a SITAC file and write them as a KML document. Figures that cannot be decoded are reported and skipped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "Output KML file (default: ./<name>_<timestamp>.kml)")
	convertCmd.Flags().StringP("name", "n", "", "KML document name (default: SITAC_<timestamp>)")
	convertCmd.Flags().Bool("dry-run", false, "Parse only and print a summary, do not write KML")
	convertCmd.Flags().Int("samples", kml.DefaultSamples, "Points sampled around circles and ellipses")

	_ = viper.BindPFlag("samples", convertCmd.Flags().Lookup("samples"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	cliLog := logger.With("component", "cli")
	output, _ := cmd.Flags().GetString("output")
	name, _ := cmd.Flags().GetString("name")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	now := time.Now()

	doc, err := loadDocument(args[0], viper.GetString("syntax"), logger)
	if err != nil {
		return err
	}

	if dryRun {
		printSummary(cmd.ErrOrStderr(), doc)
		return nil
	}

	if name == "" {
		name = kml.DefaultName(now)
	}
	if output == "" {
		output = kml.OutputPath(".", name, now)
	}

	r := kml.NewRenderer(logger, kml.WithSamples(viper.GetInt("samples")))
	content, err := r.Render(doc.Figures, name)
	if err != nil {
		return err
	}
	if err := kml.WriteFile(output, content); err != nil {
		return fmt.Errorf("exporting KML: %w", err)
	}

	cliLog.Info("exported KML file", "path", output, "figures", len(doc.Figures), "skipped", len(doc.Diagnostics))
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

// printSummary prints the decoded figures and the skipped fragments.
func printSummary(w io.Writer, doc *document) {
	fmt.Fprintf(w, "  Name: %s\n", doc.Name)
	fmt.Fprintf(w, "  Figures: %d\n", len(doc.Figures))
	for _, f := range doc.Figures {
		fmt.Fprintf(w, "    - %s (%s)\n", f.FigureName(), f.Kind())
	}
	if len(doc.Diagnostics) > 0 {
		fmt.Fprintf(w, "  Skipped: %d\n", len(doc.Diagnostics))
		for _, d := range doc.Diagnostics {
			fmt.Fprintf(w, "    %s\n", d)
		}
	}
}
