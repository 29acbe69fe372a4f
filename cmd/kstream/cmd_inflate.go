package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/geal-ai/kstream"
)

func newInflateCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "inflate <file>",
		Short: "Decompress a zlib-compressed file and write the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInflate(args[0], outPath)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "O", "", "output path (defaults to stdout)")

	return cmd
}

func runInflate(filename, outPath string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	out, err := kstream.ProcessZlib(data)
	if err != nil {
		return fmt.Errorf("inflate %s: %w", filename, err)
	}

	log.Info().Str("file", filename).Int("compressed", len(data)).Int("inflated", len(out)).Msg("inflated stream")

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
