// Package manifest turns cloud instances into cluster Machine manifests.
//
// Two manifest variants are supported:
//
//   - [VariantMachine]: one cluster.k8s.io/v1alpha1 Machine per slot, with a
//     BareMetalMachineProviderSpec carrying the endpoints inline. Machines use
//     metadata.generateName, so the API server picks the final names.
//   - [VariantExistingInfra]: per slot, a cluster.x-k8s.io/v1alpha3 Machine and
//     a cluster.weave.works/v1alpha3 ExistingInfraMachine sharing the name
//     {role}-{publicIP}. The Machine's infrastructureRef points at the companion.
//
// [Assembler] walks a plan's slots, resolves each to an instance and collects
// the built objects in slot order. [Encode] renders them as a v1 List or as a
// multi-document YAML stream, and [Decode] plus [Validate] read them back.
package manifest
