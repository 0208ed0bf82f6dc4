// Package session implements the prompt-driven command-line session:
// pick two matrix files and an operation, then save the result.
//
// It is a thin adapter over package sparse. Structured errors coming from
// sparse are turned into one line of text by Report and into a process exit
// code by ExitCode.
package session
