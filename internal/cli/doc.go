// Package cli wires the generation pipeline behind a cobra command.
//
// Progress and the run summary print to stdout; structured diagnostics go to
// stderr via the logger package. A run that fetches zero bytes across all
// dates aborts before writing any output file.
package cli
