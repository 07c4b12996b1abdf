package e2e

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	clusterv1alpha1 "github.com/imamik/machinegen/api/cluster/v1alpha1"
	clusterv1alpha3 "github.com/imamik/machinegen/api/cluster/v1alpha3"
	existinginfrav1alpha3 "github.com/imamik/machinegen/api/existinginfra/v1alpha3"
	"github.com/imamik/machinegen/internal/manifest"
)

// gcloudInstances is trimmed gcloud compute instances list --format json output.
const gcloudInstances = `[
  {
    "id": "4441234567890123001",
    "name": "alice-wks-1",
    "zone": "https://www.googleapis.com/compute/v1/projects/wks/zones/us-central1-a",
    "networkInterfaces": [{
      "name": "nic0",
      "network": "https://www.googleapis.com/compute/v1/projects/wks/global/networks/default",
      "networkIP": "10.128.0.5",
      "accessConfigs": [{"kind": "compute#accessConfig", "name": "External NAT", "natIP": "35.1.2.3", "type": "ONE_TO_ONE_NAT"}]
    }]
  },
  {
    "id": "4441234567890123002",
    "name": "alice-wks-2",
    "networkInterfaces": [{"networkIP": "10.128.0.6", "accessConfigs": [{"natIP": "35.1.2.4"}]}]
  },
  {
    "id": "4441234567890123003",
    "name": "alice-wks-3",
    "networkInterfaces": [{"networkIP": "10.128.0.7", "accessConfigs": [{"natIP": "35.1.2.5"}]}]
  },
  {
    "id": "4441234567890123099",
    "name": "bob-wks-1",
    "networkInterfaces": [{"networkIP": "10.128.0.99", "accessConfigs": [{"natIP": "35.9.9.9"}]}]
  }
]`

var _ = Describe("generate", func() {
	var dir, output string

	BeforeEach(func() {
		dir = workdir(gcloudInstances)
		output = filepath.Join(dir, "machines.yaml")
	})

	generate := func(extra ...string) error {
		args := append([]string{"generate", "-q", "-u", "alice",
			"-i", filepath.Join(dir, "instances.json"), "-o", output}, extra...)
		_, err := run(args...)
		return err
	}

	decode := func() []interface{} {
		data, err := os.ReadFile(output)
		Expect(err).NotTo(HaveOccurred())
		objs, err := manifest.Decode(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		out := make([]interface{}, 0, len(objs))
		for _, obj := range objs {
			out = append(out, obj)
		}
		return out
	}

	Context("machine variant", func() {
		It("writes one master and two workers as a v1 List", func() {
			Expect(generate()).To(Succeed())

			out := readFile(output)
			Expect(out).To(HavePrefix("apiVersion: v1\n"))
			Expect(out).To(ContainSubstring("kind: List"))
			Expect(out).NotTo(ContainSubstring("---"))
			Expect(out).NotTo(ContainSubstring("35.9.9.9"))

			objs := decode()
			Expect(objs).To(HaveLen(3))
			for _, obj := range objs {
				Expect(obj).To(BeAssignableToTypeOf(&clusterv1alpha1.Machine{}))
			}

			master := objs[0].(*clusterv1alpha1.Machine)
			Expect(master.GenerateName).To(Equal("master-"))
			Expect(master.Labels).To(HaveKeyWithValue("set", "master"))
			spec, err := manifest.ProviderSpecOf(master)
			Expect(err).NotTo(HaveOccurred())
			Expect(spec.Public.Address).To(Equal("35.1.2.3"))
			Expect(spec.Private.Address).To(Equal("10.128.0.5"))
			Expect(spec.Public.Port).To(BeEquivalentTo(22))

			Expect(objs[2].(*clusterv1alpha1.Machine).Labels).To(HaveKeyWithValue("set", "worker"))
		})

		It("is byte for byte reproducible", func() {
			Expect(generate()).To(Succeed())
			first := readFile(output)
			Expect(generate()).To(Succeed())
			Expect(readFile(output)).To(Equal(first))
		})

		It("honors the stream format", func() {
			Expect(generate("--format", "stream")).To(Succeed())
			Expect(strings.Count(readFile(output), "---\n")).To(Equal(3))
		})
	})

	Context("existinginfra variant", func() {
		It("pairs every Machine with its ExistingInfraMachine", func() {
			Expect(generate("--variant", "existinginfra", "--namespace", "weavek8sops")).To(Succeed())
			Expect(strings.Count(readFile(output), "---\n")).To(Equal(6))

			objs := decode()
			Expect(objs).To(HaveLen(6))
			for i := 0; i < len(objs); i += 2 {
				m, ok := objs[i].(*clusterv1alpha3.Machine)
				Expect(ok).To(BeTrue())
				infra, ok := objs[i+1].(*existinginfrav1alpha3.ExistingInfraMachine)
				Expect(ok).To(BeTrue())
				Expect(m.Spec.InfrastructureRef.Name).To(Equal(infra.Name))
				Expect(m.Namespace).To(Equal("weavek8sops"))
				Expect(m.Spec.ClusterName).To(Equal("example"))
			}
			Expect(objs[1].(*existinginfrav1alpha3.ExistingInfraMachine).Spec.Public.Address).To(Equal("35.1.2.3"))
		})
	})

	Context("plans", func() {
		It("uses every instance of a larger plan", func() {
			Expect(generate("--masters", "2", "--workers", "1")).To(Succeed())
			out := readFile(output)
			Expect(strings.Count(out, "set: master")).To(Equal(2))
			Expect(strings.Count(out, "set: worker")).To(Equal(1))
		})

		It("fails when the plan needs an instance that does not exist", func() {
			err := generate("--workers", "3")
			Expect(err).To(MatchError(ContainSubstring("instance 'alice-wks-4' not found")))
			Expect(output).NotTo(BeAnExistingFile())
		})

		It("rejects a plan without masters", func() {
			err := generate("--masters", "0")
			Expect(err).To(HaveOccurred())
			Expect(output).NotTo(BeAnExistingFile())
		})
	})

	Context("parameters", func() {
		It("requires a user", func() {
			GinkgoT().Setenv("MACHINEGEN_USER", "")
			_, err := run("generate", "-q", "-i", filepath.Join(dir, "instances.json"), "-o", output)
			Expect(err).To(MatchError("'user' parameter must be provided"))
		})

		It("reads parameters from a config file", func() {
			cfg := filepath.Join(dir, "machinegen.yaml")
			Expect(os.WriteFile(cfg, []byte("user: alice\ninstances: "+filepath.Join(dir, "instances.json")+
				"\noutput: "+output+"\nvariant: existinginfra\nmasters: 1\nworkers: 0\n"), 0600)).To(Succeed())

			_, err := run("generate", "-q", "-c", cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(decode()).To(HaveLen(2))
		})

		It("writes run metrics", func() {
			metrics := filepath.Join(dir, "machinegen.prom")
			Expect(generate("--metrics-file", metrics)).To(Succeed())

			out := readFile(metrics)
			Expect(out).To(ContainSubstring("machinegen_run_success 1"))
			Expect(out).To(ContainSubstring(`machinegen_manifest_slots_resolved{role="master"} 1`))
		})
	})
})
