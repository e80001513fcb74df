package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	internal "github.com/dirforge/dirindex/dirindex"
	"github.com/dirforge/dirindex/dirindex/config"
	"github.com/dirforge/dirindex/dirindex/fswalk"
	"github.com/dirforge/dirindex/dirindex/index"
	"github.com/dirforge/dirindex/dirindex/indexer"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"
)

var (
	noJSON     bool
	noXML      bool
	noTXT      bool
	outputDir  string
	ignoreFile string
	quiet      bool
)

var indexCmd = &cobra.Command{
	Use:   "index <directory>",
	Short: "Index a directory and write the numbered artifacts",
	Long: `Index walks the given directory, builds the numbered hierarchy and
writes directory_index.json, directory_index.xml and directory_index.txt
into an "Items_in_<name>" folder beneath the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		target, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve target directory: %w", err)
		}

		formats := selectFormats(cfg.DirIndex.Formats)
		if len(formats) == 0 {
			return fmt.Errorf("all output formats are disabled")
		}

		walkOpts := []fswalk.Option{}
		ignorePath := ignoreFile
		if ignorePath == "" {
			ignorePath = cfg.DirIndex.IgnoreFile
		}
		if ignorePath != "" {
			matcher, err := ignore.CompileIgnoreFile(ignorePath)
			if err != nil {
				return fmt.Errorf("compile ignore file %s: %w", ignorePath, err)
			}
			walkOpts = append(walkOpts, fswalk.WithMatcher(matcher))
		}

		walker := fswalk.NewWalker(walkOpts...)
		entries, err := walker.Walk(cmd.Context(), target)
		if err != nil {
			return err
		}

		svc := indexer.New(
			indexer.WithFormats(formats...),
			indexer.WithBatchSizes(cfg.DirIndex.BuilderBatchSize, cfg.DirIndex.SerializerBatchSize),
		)

		var progress index.ProgressFunc
		if !quiet {
			progress = func(p index.Progress) {
				if p.Done {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d\n", p.Stage, p.Processed, p.Total)
				}
			}
		}

		result, err := svc.Run(target, entries, progress)
		if err != nil {
			return err
		}

		baseDir := outputDir
		if baseDir == "" {
			baseDir = cfg.DirIndex.OutputDir
		}
		runDir := filepath.Join(baseDir, internal.DefaultOutputDirPrefix+filepath.Base(target))
		if err := os.MkdirAll(runDir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", runDir, err)
		}

		var written []string
		for _, format := range formats {
			name := indexer.ArtifactName(format)
			path := filepath.Join(runDir, name)
			if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			written = append(written, name)
		}

		printSummary(cmd.OutOrStdout(), result, runDir, written)
		return nil
	},
}

// selectFormats filters the configured formats by the --no-* flags.
func selectFormats(configured []string) []string {
	disabled := map[string]bool{
		"json": noJSON,
		"xml":  noXML,
		"txt":  noTXT,
	}
	var formats []string
	for _, f := range configured {
		if !disabled[f] {
			formats = append(formats, f)
		}
	}
	return formats
}

func init() {
	indexCmd.Flags().BoolVar(&noJSON, "no-json", false, "Skip the JSON artifact")
	indexCmd.Flags().BoolVar(&noXML, "no-xml", false, "Skip the XML artifact")
	indexCmd.Flags().BoolVar(&noTXT, "no-txt", false, "Skip the TXT artifact")
	indexCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Base directory for generated files (default from config)")
	indexCmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "Gitignore-style exclusion file")
	indexCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.AddCommand(indexCmd)
}
