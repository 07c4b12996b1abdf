package handlers

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/machinegen/internal/instance"
	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/plan"
)

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func testInstances() []instance.Instance {
	mk := func(name, private, public string) instance.Instance {
		return instance.Instance{
			Name: name,
			NetworkInterfaces: []instance.NetworkInterface{{
				NetworkIP:     private,
				AccessConfigs: []instance.AccessConfig{{NatIP: public}},
			}},
		}
	}
	return []instance.Instance{
		mk("alice-wks-1", "10.0.0.5", "35.1.2.3"),
		mk("alice-wks-2", "10.0.0.6", "35.1.2.4"),
		mk("alice-wks-3", "10.0.0.7", "35.1.2.5"),
	}
}

// encodedManifest returns a valid manifest of the given variant and format.
func encodedManifest(t *testing.T, v manifest.Variant, f manifest.Format) []byte {
	t.Helper()
	b, err := manifest.NewBuilder(v, manifest.Options{})
	require.NoError(t, err)
	objs, err := manifest.Assemble(testInstances(), "alice", plan.Default(), b)
	require.NoError(t, err)
	data, err := manifest.Encode(objs, f)
	require.NoError(t, err)
	return data
}
