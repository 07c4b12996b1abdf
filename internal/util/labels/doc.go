// Package labels provides consistent labeling for generated machine manifests.
//
// Machines carry the "set" label that cluster tooling uses to tell masters from
// workers. Hetzner servers can additionally be selected by the
// machinegen.io/user label when instances are listed from the cloud API.
package labels
