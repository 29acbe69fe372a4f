package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/geal-ai/kstream"
)

func newBitsCmd() *cobra.Command {
	var n uint
	var offset int64
	var littleEndian bool

	cmd := &cobra.Command{
		Use:   "bits <file>",
		Short: "Read an unaligned bit-packed integer starting at a byte offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBits(args[0], n, offset, littleEndian)
		},
	}

	cmd.Flags().UintVarP(&n, "bits", "n", 8, "number of bits to read (1-32)")
	cmd.Flags().Int64VarP(&offset, "offset", "o", 0, "byte offset to seek to before reading")
	cmd.Flags().BoolVarP(&littleEndian, "little-endian", "l", false, "read bits in little-endian bit order instead of big-endian")

	return cmd
}

func runBits(filename string, n uint, offset int64, littleEndian bool) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	s := kstream.NewStreamFromBytes(data)
	s.Seek(int(offset))

	var val uint32
	if littleEndian {
		val, err = s.ReadBitsIntLe(n)
	} else {
		val, err = s.ReadBitsIntBe(n)
	}
	if err != nil {
		return fmt.Errorf("read %d bits at offset %d: %w", n, offset, err)
	}

	log.Info().Str("file", filename).Uint("bits", n).Int64("offset", offset).Bool("little_endian", littleEndian).Msg("decoded bitfield")
	fmt.Printf("%d\n", val)
	return nil
}
