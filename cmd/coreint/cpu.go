package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coregx/coreint/simd"
)

func newCPUCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show the detected CPU features and the engine in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.kernelConfig()
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout(), opts.plain)
			out.table("cpu", []row{
				{label: "arch", value: runtime.GOARCH},
				{label: "sse4.1", value: strconv.FormatBool(simd.HasSSE41())},
				{label: "COREINT_NO_SIMD", value: strconv.Quote(os.Getenv("COREINT_NO_SIMD"))},
				{label: "engine", value: cfg.Engine.String()},
				{label: "implementation", value: cfg.Implementation()},
			})
			return nil
		},
	}
}
