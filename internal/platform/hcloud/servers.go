package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/machinegen/internal/util/retry"
)

// ListServers returns all servers matching labelSelector. An empty selector
// lists every server in the project.
func (c *Client) ListServers(ctx context.Context, labelSelector string) ([]*hcloud.Server, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.HCloudList)
	defer cancel()

	var servers []*hcloud.Server
	err := retry.WithExponentialBackoff(ctx, func() error {
		res, err := c.client.Server.AllWithOpts(ctx, hcloud.ServerListOpts{
			ListOpts: hcloud.ListOpts{LabelSelector: labelSelector},
		})
		if err != nil {
			if isFatal(err) {
				return retry.Fatal(err)
			}
			return err
		}
		servers = res
		return nil
	},
		retry.WithMaxRetries(c.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(c.timeouts.RetryInitialDelay),
		retry.WithLogger(c.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	return servers, nil
}

// ServerIPv4 extracts the public IPv4 address from a server, or empty string if not set.
func ServerIPv4(s *hcloud.Server) string {
	if s != nil && s.PublicNet.IPv4.IP != nil && !s.PublicNet.IPv4.IP.IsUnspecified() {
		return s.PublicNet.IPv4.IP.String()
	}
	return ""
}

// ServerPrivateIP extracts the IP of the server's first private network, or
// empty string if it is attached to none.
func ServerPrivateIP(s *hcloud.Server) string {
	if s != nil && len(s.PrivateNet) > 0 && s.PrivateNet[0].IP != nil {
		return s.PrivateNet[0].IP.String()
	}
	return ""
}
