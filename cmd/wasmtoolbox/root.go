package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/patvarilly/wasmtoolbox/wasm/binary"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wasmtoolbox",
	Short: "Tools for working with WebAssembly binary modules",
	Long: `Wasmtoolbox works with modules in the WebAssembly binary format.

Tools:
  wasm2wat <file.wasm>
      Converts the binary representation in <file.wasm> to the
      equivalent text representation`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		binary.SetLogger(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log decoder diagnostics to standard error")
}
