package e2e

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/machinegen/internal/platform/s3"
)

var _ = Describe("cloud", func() {
	It("generates from Hetzner Cloud servers", func() {
		user := os.Getenv("MACHINEGEN_E2E_USER")
		if os.Getenv("HCLOUD_TOKEN") == "" || user == "" {
			Skip("HCLOUD_TOKEN or MACHINEGEN_E2E_USER not set")
		}

		output := filepath.Join(GinkgoT().TempDir(), "machines.yaml")
		_, err := run("generate", "-q", "-u", user, "--source", "hcloud", "-o", output)
		Expect(err).NotTo(HaveOccurred())

		_, err = run("validate", "-f", output)
		Expect(err).NotTo(HaveOccurred())
	})

	It("round-trips a manifest through S3", func() {
		bucket := os.Getenv("MACHINEGEN_E2E_S3_BUCKET")
		if bucket == "" {
			Skip("MACHINEGEN_E2E_S3_BUCKET not set")
		}

		client, err := s3.NewClient(os.Getenv("MACHINEGEN_S3_ENDPOINT"), os.Getenv("MACHINEGEN_S3_REGION"),
			os.Getenv("MACHINEGEN_S3_ACCESS_KEY"), os.Getenv("MACHINEGEN_S3_SECRET_KEY"))
		Expect(err).NotTo(HaveOccurred())
		exists, err := client.BucketExists(ctx, bucket)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue(), "bucket %s must exist", bucket)

		dir := workdir(gcloudInstances)
		target := fmt.Sprintf("s3://%s/e2e/%d/machines.yaml", bucket, time.Now().UnixNano())
		_, err = run("generate", "-q", "-u", "alice", "-i", filepath.Join(dir, "instances.json"), "-o", target)
		Expect(err).NotTo(HaveOccurred())

		_, err = run("validate", "-f", target)
		Expect(err).NotTo(HaveOccurred())
	})
})
