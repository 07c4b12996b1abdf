// Package main is the entry point for the machinegen CLI.
//
// machinegen turns a list of cloud instances into the Machine manifests a
// small bare-metal style Kubernetes cluster is bootstrapped from. It looks
// up {user}-wks-1..N, assigns master and worker roles in order, and writes
// either cluster.k8s.io/v1alpha1 Machines or cluster.x-k8s.io/v1alpha3
// Machines with their ExistingInfraMachine companions.
//
// Commands: generate, validate, init, version, completion.
//
// For detailed usage information, run:
//
//	machinegen --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/machinegen/cmd/machinegen/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
