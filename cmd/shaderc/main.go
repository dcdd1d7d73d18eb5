// Command shaderc compiles a WGSL compute shader into a SPIR-V file.
//
//	shaderc <source_path> <output_path>
//
// The process exits 1 when the source cannot be read, fails to compile, or
// the artifact cannot be written.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andewx/dieselgpu/shader"
)

func main() {
	root := newRootCmd(os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "shaderc <source_path> <output_path>",
		Short:         "Compile a WGSL compute shader (entry point main) to SPIR-V",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return compile(args[0], args[1], stderr)
		},
	}
}

func compile(src, dst string, stderr io.Writer) error {
	spv, err := shader.CompileFile(src)
	if err != nil {
		return compileFailure(src, err, stderr)
	}
	if err := shader.WriteArtifact(dst, spv); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// compileFailure writes compiler diagnostics to stderr and returns the
// command error for err.
func compileFailure(src string, err error, stderr io.Writer) error {
	var ce *shader.CompileError
	if errors.As(err, &ce) {
		fmt.Fprintln(stderr, ce.Diagnostics)
		return fmt.Errorf("%s: %s", ce.Path, ce.Status)
	}
	return fmt.Errorf("failed to open %s: %w", src, err)
}
