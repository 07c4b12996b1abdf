package hcloud

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/machinegen/internal/instance"
)

// Access config values matching what gcloud reports for an ephemeral
// external address.
const (
	nicName          = "nic0"
	accessConfigName = "External NAT"
	accessConfigType = "ONE_TO_ONE_NAT"
)

// Source lists Hetzner Cloud servers as instances.
type Source struct {
	Client        *Client
	LabelSelector string
}

var _ instance.Source = (*Source)(nil)

// NewSource returns a Source listing servers that match labelSelector.
func NewSource(client *Client, labelSelector string) *Source {
	return &Source{Client: client, LabelSelector: labelSelector}
}

// Instances implements instance.Source. Servers keep the order the API
// returns them in.
func (s *Source) Instances(ctx context.Context) ([]instance.Instance, error) {
	servers, err := s.Client.ListServers(ctx, s.LabelSelector)
	if err != nil {
		if IsUnauthorized(err) {
			err = fmt.Errorf("%w (check that HCLOUD_TOKEN holds a valid API token)", err)
		}
		return nil, &instance.SourceReadError{Path: s.origin(), Err: err}
	}

	instances := make([]instance.Instance, 0, len(servers))
	for _, server := range servers {
		instances = append(instances, ToInstance(server))
	}
	return instances, nil
}

func (s *Source) origin() string {
	if s.LabelSelector == "" {
		return "hcloud"
	}
	return "hcloud (" + s.LabelSelector + ")"
}

// ToInstance maps a server to an instance record. The first private network
// becomes the network interface and the public IPv4 its access config. A
// server without a private network has no interfaces.
func ToInstance(server *hcloud.Server) instance.Instance {
	inst := instance.Instance{
		Name:   server.Name,
		ID:     strconv.FormatInt(server.ID, 10),
		Status: string(server.Status),
		Labels: server.Labels,
	}
	if server.Datacenter != nil && server.Datacenter.Location != nil {
		inst.Zone = server.Datacenter.Location.Name
	}

	private := ServerPrivateIP(server)
	if private == "" {
		return inst
	}

	nic := instance.NetworkInterface{
		Name:          nicName,
		NetworkIP:     private,
		AccessConfigs: []instance.AccessConfig{},
	}
	if network := server.PrivateNet[0].Network; network != nil {
		nic.Network = strconv.FormatInt(network.ID, 10)
		if network.Name != "" {
			nic.Network = network.Name
		}
	}
	if public := ServerIPv4(server); public != "" {
		nic.AccessConfigs = append(nic.AccessConfigs, instance.AccessConfig{
			Name:  accessConfigName,
			Type:  accessConfigType,
			NatIP: public,
		})
	}
	inst.NetworkInterfaces = []instance.NetworkInterface{nic}
	return inst
}
