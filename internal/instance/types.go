package instance

// Instance is one cloud VM as reported by the provider.
type Instance struct {
	Name              string             `json:"name"`
	ID                string             `json:"id,omitempty"`
	Zone              string             `json:"zone,omitempty"`
	Status            string             `json:"status,omitempty"`
	Labels            map[string]string  `json:"labels,omitempty"`
	NetworkInterfaces []NetworkInterface `json:"networkInterfaces"`
}

// NetworkInterface is a VM network attachment.
type NetworkInterface struct {
	Name          string         `json:"name,omitempty"`
	Network       string         `json:"network,omitempty"`
	NetworkIP     string         `json:"networkIP"`
	AccessConfigs []AccessConfig `json:"accessConfigs"`
}

// AccessConfig exposes a network interface externally.
type AccessConfig struct {
	Name  string `json:"name,omitempty"`
	Type  string `json:"type,omitempty"`
	NatIP string `json:"natIP"`
}

// PrivateIP returns the address of the first network interface.
func (i *Instance) PrivateIP() (string, error) {
	if len(i.NetworkInterfaces) == 0 {
		return "", &MalformedInstanceError{Name: i.Name, Field: "networkInterfaces[0]"}
	}
	return i.NetworkInterfaces[0].NetworkIP, nil
}

// PublicIP returns the NAT address of the first access config of the first
// network interface.
func (i *Instance) PublicIP() (string, error) {
	if len(i.NetworkInterfaces) == 0 {
		return "", &MalformedInstanceError{Name: i.Name, Field: "networkInterfaces[0]"}
	}
	nic := i.NetworkInterfaces[0]
	if len(nic.AccessConfigs) == 0 {
		return "", &MalformedInstanceError{Name: i.Name, Field: "networkInterfaces[0].accessConfigs[0]"}
	}
	return nic.AccessConfigs[0].NatIP, nil
}

// Find returns the first instance named name, in source order.
func Find(instances []Instance, name string) (*Instance, error) {
	for i := range instances {
		if instances[i].Name == name {
			return &instances[i], nil
		}
	}
	return nil, &NotFoundError{Name: name}
}
