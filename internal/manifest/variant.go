package manifest

import "fmt"

// Variant selects the manifest shape.
type Variant string

const (
	// VariantMachine emits one Machine per slot with the provider spec inline.
	VariantMachine Variant = "machine"
	// VariantExistingInfra emits a Machine and an ExistingInfraMachine per slot.
	VariantExistingInfra Variant = "existinginfra"
)

// Format selects how the manifest list is serialized.
type Format string

const (
	// FormatList renders a single apiVersion v1, kind List document.
	FormatList Format = "list"
	// FormatStream renders one YAML document per object.
	FormatStream Format = "stream"
)

// Variants lists the supported variants.
func Variants() []Variant {
	return []Variant{VariantMachine, VariantExistingInfra}
}

// ParseVariant validates a variant name.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown manifest variant %q (expected machine or existinginfra)", s)
}

// DefaultFormat is the format each variant was designed to be written in.
func (v Variant) DefaultFormat() Format {
	if v == VariantExistingInfra {
		return FormatStream
	}
	return FormatList
}

// ParseFormat validates a format name. An empty string means the variant default.
func ParseFormat(s string, v Variant) (Format, error) {
	switch Format(s) {
	case "":
		return v.DefaultFormat(), nil
	case FormatList, FormatStream:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected list or stream)", s)
	}
}
