// Package sparsemat is a small toolkit for large, mostly-zero integer
// matrices: a dictionary-of-keys representation, the three arithmetic
// operators, a plain-text file format and a prompt-driven command.
//
// 🚀 What is inside?
//
//	sparse/            — Matrix, Add/Sub/Mul, text codec, typed errors, gonum interop
//	internal/session/  — the interactive file-picking session and exit codes
//	cmd/sparsemat/     — the command-line entry point (cobra)
//
// ✨ Why a map of coordinates?
//
//   - Memory and time follow the nonzero count, not rows×cols
//   - O(1) lookups keyed by a Coord struct, no string keys
//   - Zero is never stored, so "absent" and "0" mean the same thing
//
// Quick example:
//
//	a, _ := sparse.Load("a.txt")
//	b, _ := sparse.Load("b.txt")
//	sum, err := a.Add(b) // *sparse.DimensionError on shape mismatch
//
//	go install github.com/katalvlaran/sparsemat/cmd/sparsemat@latest
package sparsemat
