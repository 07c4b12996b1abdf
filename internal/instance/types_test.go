package instance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInstance(name, privateIP, publicIP string) Instance {
	return Instance{
		Name: name,
		NetworkInterfaces: []NetworkInterface{{
			NetworkIP:     privateIP,
			AccessConfigs: []AccessConfig{{NatIP: publicIP}},
		}},
	}
}

func TestInstance_Addresses(t *testing.T) {
	t.Parallel()
	inst := newInstance("alice-wks-1", "10.0.0.5", "35.1.2.3")

	public, err := inst.PublicIP()
	require.NoError(t, err)
	assert.Equal(t, "35.1.2.3", public)

	private, err := inst.PrivateIP()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", private)
}

func TestInstance_AddressesUseFirstEntries(t *testing.T) {
	t.Parallel()
	inst := Instance{
		Name: "alice-wks-1",
		NetworkInterfaces: []NetworkInterface{
			{NetworkIP: "10.0.0.5", AccessConfigs: []AccessConfig{{NatIP: "35.1.2.3"}, {NatIP: "35.9.9.9"}}},
			{NetworkIP: "10.1.0.5", AccessConfigs: []AccessConfig{{NatIP: "36.1.2.3"}}},
		},
	}

	public, err := inst.PublicIP()
	require.NoError(t, err)
	assert.Equal(t, "35.1.2.3", public)

	private, err := inst.PrivateIP()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", private)
}

func TestInstance_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		inst         Instance
		publicField  string
		privateField string
	}{
		{
			name:         "no network interfaces",
			inst:         Instance{Name: "bare"},
			publicField:  "networkInterfaces[0]",
			privateField: "networkInterfaces[0]",
		},
		{
			name:        "no access configs",
			inst:        Instance{Name: "internal-only", NetworkInterfaces: []NetworkInterface{{NetworkIP: "10.0.0.9"}}},
			publicField: "networkInterfaces[0].accessConfigs[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.inst.PublicIP()
			var malformed *MalformedInstanceError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.inst.Name, malformed.Name)
			assert.Equal(t, tt.publicField, malformed.Field)
			assert.Contains(t, err.Error(), tt.inst.Name)

			_, err = tt.inst.PrivateIP()
			if tt.privateField == "" {
				assert.NoError(t, err)
				return
			}
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.privateField, malformed.Field)
		})
	}
}

func TestFind(t *testing.T) {
	t.Parallel()
	instances := []Instance{
		newInstance("alice-wks-1", "10.0.0.1", "34.0.0.1"),
		newInstance("alice-wks-2", "10.0.0.2", "34.0.0.2"),
		newInstance("alice-wks-2", "10.0.0.99", "34.0.0.99"),
	}

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		got, err := Find(instances, "alice-wks-1")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.1", got.NetworkInterfaces[0].NetworkIP)
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()
		got, err := Find(instances, "alice-wks-2")
		require.NoError(t, err)
		assert.Equal(t, "10.0.0.2", got.NetworkInterfaces[0].NetworkIP)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		_, err := Find(instances, "alice-wks-3")
		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "alice-wks-3", notFound.Name)
		assert.Equal(t, "instance 'alice-wks-3' not found", err.Error())
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		_, err := Find(nil, "alice-wks-1")
		require.Error(t, err)
	})
}
