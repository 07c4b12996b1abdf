// Package naming provides consistent naming functions for cluster machines.
//
// Cloud VMs backing a cluster follow the pattern {user}-wks-{ordinal}, where the
// ordinal is the 1-based slot position in the cluster plan. Infrastructure
// machine objects are named {role}-{publicIP} so a Machine and its companion
// share one deterministic name.
package naming
