package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/b71729/mavgen/internal/codegen"
	"github.com/b71729/mavgen/internal/dialect"
)

var (
	generateDialectPath string
	generateOutDir      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Compile a dialect XML file into Go message types",
	Long: `generate runs the dialect parser (C3), canonicalizer (C4), and code
emitter (C5) over a single dialect XML file, writing one Go source file
per message plus a union dispatch file to the output directory.

The written files still need gofmt/go-format applied; this repository's
core never formats its own output (spec.md §1).`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateDialectPath, "dialect", "", "path to the dialect XML file (required)")
	generateCmd.Flags().StringVar(&generateOutDir, "out", "", "output directory for generated sources (required)")
	generateCmd.MarkFlagRequired("dialect")
	generateCmd.MarkFlagRequired("out")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(generateDialectPath)
	if err != nil {
		return fmt.Errorf("mavgen generate: %w", err)
	}
	defer f.Close()

	d, err := dialect.Parse(f)
	if err != nil {
		return fmt.Errorf("mavgen generate: compiling %s: %w", generateDialectPath, err)
	}
	log.Info().
		Str("dialect", generateDialectPath).
		Int("messages", len(d.Messages)).
		Int("enums", len(d.Enums)).
		Msg("dialect compiled")

	writer := codegen.DirWriter{Dir: generateOutDir}
	if err := codegen.Emit(d, writer); err != nil {
		return fmt.Errorf("mavgen generate: emitting to %s: %w", generateOutDir, err)
	}
	log.Info().Str("out", generateOutDir).Msg("artifacts written")
	return nil
}
