// SPDX-License-Identifier: MIT

// Command sparsemat adds, subtracts or multiplies two sparse matrix files.
//
// Usage:
//
//	sparsemat [--input-dir DIR] [--output-dir DIR] [--op OP] [--first F] [--second F] [--output NAME]
//
// Without flags it lists the .txt files of $HOME/dsa/sparse_matrix/sample_inputs
// and asks for every choice; the result lands in $HOME/dsa/sparse_matrix/output.
//
// Exit codes: 0 success, 1 unexpected failure, 2 invalid selection or usage,
// 3 dimension mismatch, 4 I/O failure, 5 malformed matrix file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsemat/internal/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	session.Report(stderr, err)

	return session.ExitCode(err)
}

// newRootCmd builds the cobra command; flags override the prompts.
func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var cfg session.Config

	cmd := &cobra.Command{
		Use:   "sparsemat",
		Short: "Add, subtract or multiply sparse matrix files",
		Long: `sparsemat lists the matrix files of an input directory, asks for an
operation (1=add, 2=subtract, 3=multiply), two files and an output name,
and writes the result into the output directory.

Matrix files look like:

  rows=2
  cols=2
  (0, 0, 1)
  (1, 1, 2)`,
		Args: func(c *cobra.Command, args []string) error {
			if err := cobra.NoArgs(c, args); err != nil {
				return fmt.Errorf("%w: %w", session.ErrUsage, err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if cfg.InputDir == "" || cfg.OutputDir == "" {
				in, out, err := session.DefaultDirs()
				if err != nil {
					return err
				}
				if cfg.InputDir == "" {
					cfg.InputDir = in
				}
				if cfg.OutputDir == "" {
					cfg.OutputDir = out
				}
			}
			cfg.In, cfg.Out = stdin, stdout

			_, err := session.New(cfg).Run()
			return err
		},
	}
	// Flag errors are usage errors.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", session.ErrUsage, err)
	})

	f := cmd.Flags()
	f.StringVar(&cfg.InputDir, "input-dir", "", "directory holding the .txt matrix files (default $HOME/dsa/sparse_matrix/sample_inputs)")
	f.StringVar(&cfg.OutputDir, "output-dir", "", "directory for the result file, created if absent (default $HOME/dsa/sparse_matrix/output)")
	f.StringVar(&cfg.Op, "op", "", "operation: 1|add, 2|sub, 3|mul")
	f.StringVar(&cfg.First, "first", "", "first matrix: index in the listing or file name")
	f.StringVar(&cfg.Second, "second", "", "second matrix: index in the listing or file name")
	f.StringVar(&cfg.Output, "output", "", "result file name")

	return cmd
}
