package naming

import "fmt"

// VM returns the expected instance name for the given slot ordinal.
func VM(user string, ordinal int) string {
	return fmt.Sprintf("%s-wks-%d", user, ordinal)
}

// InfraMachine returns the name shared by a Machine and its ExistingInfraMachine.
func InfraMachine(role, publicIP string) string {
	return fmt.Sprintf("%s-%s", role, publicIP)
}

// GenerateNamePrefix returns the metadata.generateName prefix for a role.
// The API server appends a random suffix when the object is created.
func GenerateNamePrefix(role string) string {
	return role + "-"
}
