package hcloud

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
	"github.com/hetznercloud/hcloud-go/v2/hcloud/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/machinegen/internal/instance"
	"github.com/imamik/machinegen/internal/util/retry"
)

func TestClient_ListServers_LabelSelector(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	ts.handleFunc("/servers", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("label_selector") == "machinegen.io/user=alice" {
			jsonResponse(w, http.StatusOK, schema.ServerListResponse{
				Servers: []schema.Server{
					{ID: 1, Name: "alice-wks-1"},
					{ID: 2, Name: "alice-wks-2"},
				},
			})
			return
		}
		jsonResponse(w, http.StatusOK, schema.ServerListResponse{Servers: []schema.Server{}})
	})

	servers, err := ts.client().ListServers(context.Background(), "machinegen.io/user=alice")
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "alice-wks-1", servers[0].Name)

	servers, err = ts.client().ListServers(context.Background(), "machinegen.io/user=bob")
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestClient_ListServers_RetriesTransientErrors(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var calls atomic.Int32
	ts.handleFunc("/servers", func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			jsonResponse(w, http.StatusInternalServerError, schema.ErrorResponse{
				Error: schema.Error{Code: "server_error", Message: "internal"},
			})
			return
		}
		jsonResponse(w, http.StatusOK, schema.ServerListResponse{
			Servers: []schema.Server{{ID: 1, Name: "alice-wks-1"}},
		})
	})

	servers, err := ts.client().ListServers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, servers, 1)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestClient_ListServers_FatalErrors(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	var calls atomic.Int32
	ts.handleFunc("/servers", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		jsonResponse(w, http.StatusUnauthorized, schema.ErrorResponse{
			Error: schema.Error{Code: "unauthorized", Message: "unable to authenticate"},
		})
	})

	_, err := ts.client().ListServers(context.Background(), "")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.True(t, retry.IsFatal(err))
	assert.Equal(t, int32(1), calls.Load(), "fatal errors must not be retried")
}

func TestClient_ListServers_Cancelled(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.handleFunc("/servers", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusOK, schema.ServerListResponse{Servers: []schema.Server{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ts.client().ListServers(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestServerIPs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		server      *hcloud.Server
		wantPublic  string
		wantPrivate string
	}{
		{
			name:   "nil server",
			server: nil,
		},
		{
			name: "public and private",
			server: &hcloud.Server{
				PublicNet: hcloud.ServerPublicNet{
					IPv4: hcloud.ServerPublicNetIPv4{IP: net.ParseIP("203.0.113.42")},
				},
				PrivateNet: []hcloud.ServerPrivateNet{{IP: net.ParseIP("10.0.1.2")}},
			},
			wantPublic:  "203.0.113.42",
			wantPrivate: "10.0.1.2",
		},
		{
			name:   "no networks",
			server: &hcloud.Server{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantPublic, ServerIPv4(tt.server))
			assert.Equal(t, tt.wantPrivate, ServerPrivateIP(tt.server))
		})
	}
}

func TestIsHCloudErrorCode(t *testing.T) {
	t.Parallel()
	rateLimited := hcloud.Error{Code: hcloud.ErrorCodeRateLimitExceeded}

	assert.True(t, isHCloudErrorCode(rateLimited, hcloud.ErrorCodeRateLimitExceeded))
	assert.False(t, isFatal(rateLimited))
	assert.True(t, isFatal(hcloud.Error{Code: hcloud.ErrorCodeInvalidInput}))
	assert.False(t, isFatal(nil))
	assert.False(t, IsUnauthorized(errors.New("plain")))
}

func TestSource_Instances(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	ts.handleFunc("/servers", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusOK, schema.ServerListResponse{
			Servers: []schema.Server{
				{
					ID:     42,
					Name:   "alice-wks-1",
					Status: "running",
					Labels: map[string]string{"machinegen.io/user": "alice"},
					PublicNet: schema.ServerPublicNet{
						IPv4: schema.ServerPublicNetIPv4{IP: "35.1.2.3"},
					},
					PrivateNet: []schema.ServerPrivateNet{
						{Network: 7, IP: "10.0.0.5"},
					},
				},
				{
					ID:   43,
					Name: "alice-wks-2",
					PublicNet: schema.ServerPublicNet{
						IPv4: schema.ServerPublicNetIPv4{IP: "35.1.2.4"},
					},
				},
			},
		})
	})

	src := NewSource(ts.client(), "machinegen.io/user=alice")
	instances, err := src.Instances(context.Background())
	require.NoError(t, err)
	require.Len(t, instances, 2)

	first := instances[0]
	assert.Equal(t, "alice-wks-1", first.Name)
	assert.Equal(t, "42", first.ID)
	assert.Equal(t, "running", first.Status)

	public, err := first.PublicIP()
	require.NoError(t, err)
	assert.Equal(t, "35.1.2.3", public)
	private, err := first.PrivateIP()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", private)
	assert.Equal(t, "7", first.NetworkInterfaces[0].Network)

	_, err = instances[1].PrivateIP()
	var malformed *instance.MalformedInstanceError
	assert.True(t, errors.As(err, &malformed), "server without a private network has no interfaces")
}

func TestSource_InstancesError(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.handleFunc("/servers", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusForbidden, schema.ErrorResponse{
			Error: schema.Error{Code: "forbidden", Message: "insufficient permissions"},
		})
	})

	_, err := NewSource(ts.client(), "").Instances(context.Background())
	var readErr *instance.SourceReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "hcloud", readErr.Path)
	assert.NotContains(t, err.Error(), "HCLOUD_TOKEN")
}

func TestSource_InstancesUnauthorized(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)
	ts.handleFunc("/servers", func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, schema.ErrorResponse{
			Error: schema.Error{Code: "unauthorized", Message: "unable to authenticate"},
		})
	})

	_, err := NewSource(ts.client(), "machinegen.io/user=alice").Instances(context.Background())
	var readErr *instance.SourceReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "hcloud (machinegen.io/user=alice)", readErr.Path)
	assert.Contains(t, err.Error(), "HCLOUD_TOKEN")
	assert.True(t, IsUnauthorized(err))
}
