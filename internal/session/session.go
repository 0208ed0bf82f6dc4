// SPDX-License-Identifier: MIT
// Package: session
//
// session.go - the interactive adapter between a terminal and package sparse.
//
// Flow:
//  1. List the .txt matrix files of the input directory (sorted, 0-based index).
//  2. Ask for the operation (1=add, 2=subtract, 3=multiply), both file
//     indices and the output file name. Answers preset in Config skip the prompt.
//  3. Load both operands (printing their shapes), apply the operation,
//     create the output directory and save the result.
//
// The first error stops the session. Nothing is written when any step fails;
// the caller prints the error with Report and exits with ExitCode(err).

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Default locations, relative to the user's home directory.
var (
	defaultInputSubpath  = filepath.Join("dsa", "sparse_matrix", "sample_inputs")
	defaultOutputSubpath = filepath.Join("dsa", "sparse_matrix", "output")
)

const (
	matrixExt = ".txt"
	dirPerm   = 0o755
)

var (
	// ErrUsage marks an invalid menu answer, flag or exhausted input.
	ErrUsage = errors.New("session: invalid selection")

	// ErrNoInputs indicates that the input directory holds no matrix files.
	ErrNoInputs = errors.New("session: no matrix files found")
)

// Config carries directories, I/O streams and optional preset answers.
type Config struct {
	InputDir  string
	OutputDir string

	In  io.Reader // prompt answers
	Out io.Writer // menu, prompts, progress

	// Preset answers; an empty field is asked for interactively.
	Op     string // "1".."3" or add/sub/mul
	First  string // file index or file name
	Second string // file index or file name
	Output string // result file name (no directory part)
}

// DefaultDirs returns the input and output directories under the home directory.
func DefaultDirs() (input, output string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", &sparse.IOError{Op: "home", Path: "$HOME", Err: err}
	}

	return filepath.Join(home, defaultInputSubpath), filepath.Join(home, defaultOutputSubpath), nil
}

// ListInputs returns the names of the .txt files in dir, sorted.
func ListInputs(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &sparse.IOError{Op: "list", Path: dir, Err: err}
	}
	var names []string
	for _, e := range ents {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), matrixExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// Session is one prompt-driven run. Not reusable.
type Session struct {
	cfg Config
	sc  *bufio.Scanner
}

// New prepares a session; a nil In or Out behaves as empty input / io.Discard.
func New(cfg Config) *Session {
	if cfg.In == nil {
		cfg.In = strings.NewReader("")
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}

	return &Session{cfg: cfg, sc: bufio.NewScanner(cfg.In)}
}

// Run executes the session and returns the path of the saved result.
func (s *Session) Run() (string, error) {
	files, err := ListInputs(s.cfg.InputDir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%s: %w", s.cfg.InputDir, ErrNoInputs)
	}

	s.printf("Available matrix files in %s:\n", s.cfg.InputDir)
	for i, name := range files {
		s.printf("  [%d] %s\n", i, name)
	}
	s.printf("Select operation:\n  1. Addition\n  2. Subtraction\n  3. Multiplication\n")

	// Stage 1: collect and validate every answer before touching the disk.
	opText, err := s.answer(s.cfg.Op, "Enter operation number: ")
	if err != nil {
		return "", err
	}
	op, err := sparse.ParseOp(opText)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}
	first, err := s.pickFile(files, s.cfg.First, "Enter first matrix file index: ")
	if err != nil {
		return "", err
	}
	second, err := s.pickFile(files, s.cfg.Second, "Enter second matrix file index: ")
	if err != nil {
		return "", err
	}
	outName, err := s.answer(s.cfg.Output, "Enter output file name: ")
	if err != nil {
		return "", err
	}
	if err = validateOutputName(outName); err != nil {
		return "", err
	}

	// Stage 2: load operands.
	a, err := sparse.Load(filepath.Join(s.cfg.InputDir, first))
	if err != nil {
		return "", err
	}
	s.printf("First matrix dimensions: %v\n", a.Shape())
	b, err := sparse.Load(filepath.Join(s.cfg.InputDir, second))
	if err != nil {
		return "", err
	}
	s.printf("Second matrix dimensions: %v\n", b.Shape())

	// Stage 3: compute and persist.
	res, err := sparse.Apply(op, a, b)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(s.cfg.OutputDir, dirPerm); err != nil {
		return "", &sparse.IOError{Op: "mkdir", Path: s.cfg.OutputDir, Err: err}
	}
	outPath := filepath.Join(s.cfg.OutputDir, outName)
	if err = res.Save(outPath); err != nil {
		return "", err
	}
	s.printf("Result (%v, %d nonzero) saved to %s\n", res.Shape(), res.Nnz(), outPath)

	return outPath, nil
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cfg.Out, format, args...)
}

// answer returns preset when non-empty, otherwise prompts and reads one line.
func (s *Session) answer(preset, prompt string) (string, error) {
	if preset != "" {
		return strings.TrimSpace(preset), nil
	}
	s.printf("%s", prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", &sparse.IOError{Op: "read", Path: "stdin", Err: err}
		}
		return "", fmt.Errorf("%w: unexpected end of input at %q", ErrUsage, strings.TrimSpace(prompt))
	}

	return strings.TrimSpace(s.sc.Text()), nil
}

// pickFile resolves an index (or an exact listed file name) to a file name.
func (s *Session) pickFile(files []string, preset, prompt string) (string, error) {
	text, err := s.answer(preset, prompt)
	if err != nil {
		return "", err
	}
	if idx, convErr := strconv.Atoi(text); convErr == nil {
		if idx < 0 || idx >= len(files) {
			return "", fmt.Errorf("%w: file index %d not in [0,%d)", ErrUsage, idx, len(files))
		}
		return files[idx], nil
	}
	for _, name := range files {
		if name == text {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: %q is neither a file index nor a listed file", ErrUsage, text)
}

// validateOutputName rejects empty names and anything with a directory part.
func validateOutputName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: output file name %q must be a plain file name", ErrUsage, name)
	}

	return nil
}
