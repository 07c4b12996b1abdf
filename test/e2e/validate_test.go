package e2e

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("validate", func() {
	var dir string

	BeforeEach(func() {
		dir = workdir(gcloudInstances)
	})

	DescribeTable("accepts generated manifests",
		func(args ...string) {
			output := filepath.Join(dir, "machines.yaml")
			base := []string{"generate", "-q", "-u", "alice", "-i", filepath.Join(dir, "instances.json"), "-o", output}
			_, err := run(append(base, args...)...)
			Expect(err).NotTo(HaveOccurred())

			_, err = run("validate", "-f", output)
			Expect(err).NotTo(HaveOccurred())
		},
		Entry("machine list"),
		Entry("machine stream", "--format", "stream"),
		Entry("existinginfra stream", "--variant", "existinginfra"),
		Entry("existinginfra list", "--variant", "existinginfra", "--format", "list"),
		Entry("existinginfra with kubernetes version", "--variant", "existinginfra", "--kubernetes-version", "1.16.3"),
	)

	It("rejects a manifest without masters", func() {
		path := filepath.Join(dir, "workers.yaml")
		Expect(os.WriteFile(path, []byte(`apiVersion: v1
kind: List
items:
- apiVersion: cluster.k8s.io/v1alpha1
  kind: Machine
  metadata:
    generateName: worker-
    labels:
      set: worker
  spec:
    providerSpec:
      value:
        apiVersion: baremetalproviderspec/v1alpha1
        kind: BareMetalMachineProviderSpec
        public:
          address: 35.1.2.4
          port: 22
        private:
          address: 10.128.0.6
          port: 22
`), 0600)).To(Succeed())

		_, err := run("validate", "-f", path)
		Expect(err).To(MatchError(ContainSubstring("is invalid")))
	})

	It("rejects a Machine whose reference does not match", func() {
		path := filepath.Join(dir, "mismatch.yaml")
		Expect(os.WriteFile(path, []byte(`---
apiVersion: cluster.x-k8s.io/v1alpha3
kind: Machine
metadata:
  name: master-35-1-2-3
  labels:
    set: master
spec:
  clusterName: example
  infrastructureRef:
    apiVersion: cluster.weave.works/v1alpha3
    kind: ExistingInfraMachine
    name: master-35-1-2-4
---
apiVersion: cluster.weave.works/v1alpha3
kind: ExistingInfraMachine
metadata:
  name: master-35-1-2-3
spec:
  public:
    address: 35.1.2.3
    port: 22
  private:
    address: 10.128.0.5
    port: 22
`), 0600)).To(Succeed())

		_, err := run("validate", "-f", path)
		Expect(err).To(HaveOccurred())
	})
})
