// Package handlers implements the behavior behind each CLI command.
//
// Handlers print to standard output. Collaborators that touch the terminal,
// the network or the filesystem are held in package variables so tests can
// replace them.
package handlers
