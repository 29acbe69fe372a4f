package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/geal-ai/kstream"
)

func newXorCmd() *cobra.Command {
	var keyHex string
	var outPath string

	cmd := &cobra.Command{
		Use:   "xor <file>",
		Short: "XOR a file against a hex-encoded key (single byte or repeating multi-byte)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXor(args[0], keyHex, outPath)
		},
	}

	cmd.Flags().StringVarP(&keyHex, "key", "k", "ff", "hex-encoded XOR key")
	cmd.Flags().StringVarP(&outPath, "output", "O", "", "output path (defaults to stdout)")

	return cmd
}

func runXor(filename, keyHex, outPath string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return fmt.Errorf("decode key %q: %w", keyHex, err)
	}

	var out []byte
	if len(key) == 1 {
		out = kstream.ProcessXOROne(data, key[0])
	} else {
		out, err = kstream.ProcessXORMany(data, key)
		if err != nil {
			return fmt.Errorf("xor %s: %w", filename, err)
		}
	}

	log.Info().Str("file", filename).Int("key_len", len(key)).Int("bytes", len(out)).Msg("xored stream")

	if outPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
