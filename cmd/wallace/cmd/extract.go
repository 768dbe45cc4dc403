package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/remogolf/wallace/pkg/config"
	"github.com/remogolf/wallace/pkg/export"
	"github.com/remogolf/wallace/pkg/logfile"
	"github.com/remogolf/wallace/pkg/schema"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Decode a binary log into per-type CSV files",
	Long: `Decode a binary log into per-type CSV files.

The input may be raw or compressed (.bz2, .gz, .zst). Each message type found
in the log gets one CSV file named after its registry name; decoding warnings
are collected into warnings.log in the output directory.

Example:
  wallace extract -i flight.bin.bz2 -r messages.json -o out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveExtractParams(cmd, cfg)
		if err != nil {
			return err
		}
		return runExtract(p, logger)
	},
}

// resolveExtractParams merges flags over config. Flags the user set always
// win, even when set to a zero value (e.g. --max-payload 0 disables a cap
// from the config file).
func resolveExtractParams(cmd *cobra.Command, cfg *config.Config) (extractParams, error) {
	p := extractParams{}
	p.input, _ = cmd.Flags().GetString("input")
	p.registry, _ = cmd.Flags().GetString("registry")
	p.output, _ = cmd.Flags().GetString("output")
	p.indexDir, _ = cmd.Flags().GetString("index")
	p.warnUnknown, _ = cmd.Flags().GetBool("warn-unknown")
	p.bestEffort, _ = cmd.Flags().GetBool("best-effort-skips")
	p.maxPayload, _ = cmd.Flags().GetInt("max-payload")

	if p.registry == "" {
		p.registry = cfg.Registry
	}
	if p.output == "" {
		p.output = cfg.OutputDir
	}
	if !cmd.Flags().Changed("max-payload") {
		p.maxPayload = cfg.MaxPayload
	}
	if !cmd.Flags().Changed("warn-unknown") {
		policy, err := cfg.UnknownTypePolicy()
		if err != nil {
			return extractParams{}, err
		}
		p.warnUnknown = policy == logfile.WarnUnknown
	}
	return p, nil
}

type extractParams struct {
	input       string
	registry    string
	output      string
	indexDir    string
	warnUnknown bool
	bestEffort  bool
	maxPayload  int
}

func runExtract(p extractParams, log zerolog.Logger) error {
	reg, err := schema.Load(p.registry)
	if err != nil {
		return err
	}
	log.Debug().Str("registry", p.registry).Int("types", reg.Len()).Msg("registry loaded")

	in, err := logfile.Open(p.input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	opts := logfile.ExtractOptions{
		BestEffortSkips: p.bestEffort,
		MaxPayload:      p.maxPayload,
	}
	if p.warnUnknown {
		opts.UnknownTypes = logfile.WarnUnknown
	}

	res, err := logfile.Extract(in, reg, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	log.Info().
		Int("messages", len(res.Messages)).
		Int("warnings", len(res.Warnings)).
		Int("skipped_fields", res.SkippedFields).
		Msg("log decoded")

	if err := os.MkdirAll(p.output, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, g := range export.ByName(res.Messages) {
		path := filepath.Join(p.output, g.Name+".csv")
		rows, err := export.WriteCSV(path, g)
		if err != nil {
			return err
		}
		if rows > 0 {
			log.Info().Str("file", path).Int("rows", rows).Msg("wrote group")
		}
	}

	if p.indexDir != "" {
		sink, err := export.OpenIndex(p.indexDir)
		if err != nil {
			return err
		}
		for _, m := range res.Messages {
			if err := sink.Put(m); err != nil {
				sink.Close()
				return err
			}
		}
		if err := sink.Close(); err != nil {
			return err
		}
		log.Info().Str("dir", p.indexDir).Str("run_id", sink.RunID()).
			Int("messages", len(res.Messages)).Msg("indexed run")
	}

	if len(res.Warnings) > 0 {
		path := filepath.Join(p.output, "warnings.log")
		if err := export.WriteWarningsLog(path, res.Warnings); err != nil {
			return err
		}
		log.Warn().Str("file", path).Int("count", len(res.Warnings)).Msg("decoding warnings recorded")
	}
	if res.SkippedFields > 0 {
		log.Info().Int("count", res.SkippedFields).Msg("skipped ignorable fields (TRASH, PADDING, RESERVED)")
	}
	return nil
}

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input log file path (e.g. flight.bin, log.bin.bz2)")
	cmd.Flags().StringP("registry", "r", "", "Message definition JSON file path")
	cmd.Flags().StringP("output", "o", "", "Output directory for CSV files")
	cmd.Flags().String("index", "", "Optional pebble store directory to index decoded messages into")
	cmd.Flags().Bool("warn-unknown", false, "Record a warning for messages with unregistered type IDs")
	cmd.Flags().Bool("best-effort-skips", false, "Keep decoding past skip-only fields whose width is unknown")
	cmd.Flags().Int("max-payload", 0, "Reject declared payload lengths above this many bytes (0 = no cap)")
}

func init() {
	rootCmd.AddCommand(extractCmd)
	addExtractFlags(extractCmd)
	_ = extractCmd.MarkFlagRequired("input")
}
