// Command mavgen is the thin CLI wrapper around the dialect compiler
// (C3->C4->C5) and frame codec (C6). The process entry point and its
// flag wiring sit outside the core per spec.md §1; everything it calls
// into lives in internal/ and mavcommon/.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mavgen",
	Short:         "mavgen compiles MAVLink dialects and inspects framed traffic",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(generateCmd, inspectCmd, encodeCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("mavgen: fatal")
		os.Exit(1)
	}
}
