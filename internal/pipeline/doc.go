// Package pipeline runs a generation as a fixed sequence of phases: load
// the instances, assemble the manifest, validate it, encode it and write it.
//
// Each phase reads what earlier phases left in [State] and the run stops at
// the first failing phase, so nothing is written unless every earlier phase
// succeeded. Phases are logged through the logr logger carried by the
// context and timed into the run's metrics.
package pipeline
