package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/patvarilly/wasmtoolbox/wasm/binary"
	"github.com/patvarilly/wasmtoolbox/wasm/text"
)

var wasm2watCmd = &cobra.Command{
	Use:   "wasm2wat <file.wasm>",
	Short: "Convert a WebAssembly binary module to its text representation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// A decode failure is not a usage problem.
		cmd.SilenceUsage = true
		return runWasm2Wat(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(wasm2watCmd)
}

func runWasm2Wat(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file %s: %w", path, err)
	}
	defer f.Close()

	m, err := binary.DecodeModule(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w := text.NewWriter(out)
	if err := w.WriteModule(m); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}
