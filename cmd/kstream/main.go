package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/geal-ai/kstream/internal/klog"
)

func main() {
	klog.Init("kstream")

	rootCmd := &cobra.Command{
		Use:   "kstream",
		Short: "Inspect and exercise binary streams the way the kstream library reads them",
	}

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newBitsCmd())
	rootCmd.AddCommand(newInflateCmd())
	rootCmd.AddCommand(newXorCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
