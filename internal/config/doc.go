// Package config resolves the parameters of a generation run.
//
// Values come from built-in defaults, an optional machinegen.yaml file,
// environment variables and finally command-line flags, each layer
// overriding the previous one. [Params.Validate] rejects incomplete or
// inconsistent parameters before any instance data is read.
package config
