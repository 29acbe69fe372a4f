package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/geal-ai/kstream"
)

func newDumpCmd() *cobra.Command {
	var typeName string
	var offset int64

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Decode a single primitive value from a file at a byte offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], typeName, offset)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "u1", "value type: u1, s1, u2le, u2be, s2le, s2be, u4le, u4be, s4le, s4be, u8le, u8be, s8le, s8be, f4le, f4be, f8le, f8be")
	cmd.Flags().Int64VarP(&offset, "offset", "o", 0, "byte offset to seek to before reading")

	return cmd
}

func runDump(filename, typeName string, offset int64) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	s := kstream.NewStreamFromBytes(data)
	s.Seek(int(offset))

	val, err := decodeAt(s, typeName)
	if err != nil {
		return fmt.Errorf("decode %s at offset %d: %w", typeName, offset, err)
	}

	log.Info().Str("file", filename).Str("type", typeName).Int64("offset", offset).Msg("decoded value")
	fmt.Printf("%v\n", val)
	return nil
}

func decodeAt(s *kstream.Stream, typeName string) (any, error) {
	switch typeName {
	case "u1":
		return s.ReadU1()
	case "s1":
		return s.ReadS1()
	case "u2le":
		return s.ReadU2le()
	case "u2be":
		return s.ReadU2be()
	case "s2le":
		return s.ReadS2le()
	case "s2be":
		return s.ReadS2be()
	case "u4le":
		return s.ReadU4le()
	case "u4be":
		return s.ReadU4be()
	case "s4le":
		return s.ReadS4le()
	case "s4be":
		return s.ReadS4be()
	case "u8le":
		return s.ReadU8le()
	case "u8be":
		return s.ReadU8be()
	case "s8le":
		return s.ReadS8le()
	case "s8be":
		return s.ReadS8be()
	case "f4le":
		return s.ReadF4le()
	case "f4be":
		return s.ReadF4be()
	case "f8le":
		return s.ReadF8le()
	case "f8be":
		return s.ReadF8be()
	default:
		return nil, fmt.Errorf("unknown type: %s", typeName)
	}
}
