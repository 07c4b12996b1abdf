// Package instance models cloud VM descriptions and the sources they are read from.
//
// The record layout follows `gcloud compute instances list --format json`:
// each instance has a name and a list of network interfaces, each with a
// private networkIP and access configs carrying the public natIP. Other
// providers map their servers onto the same [Instance] type.
package instance
