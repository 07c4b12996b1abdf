package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/machinegen/cmd/machinegen/handlers"
	"github.com/imamik/machinegen/internal/config"
)

// generateFlags holds the raw flag values of the generate command.
type generateFlags struct {
	configPath    string
	instances     string
	user          string
	output        string
	variant       string
	format        string
	masters       int
	workers       int
	source        string
	labelSelector string
	namespace     string
	clusterName   string
	metricsFile   string
	kubeVersion   string
	quiet         bool
}

// Generate returns the command that writes the machines manifest.
//
// Parameters are resolved from defaults, the config file, environment
// variables and flags, in increasing order of precedence. Only flags given
// on the command line override earlier layers.
//
// Environment variables:
//
//	MACHINEGEN_USER, MACHINEGEN_INSTANCES, MACHINEGEN_OUTPUT
//	HCLOUD_TOKEN: Hetzner Cloud API token (required for --source hcloud)
//	MACHINEGEN_S3_ENDPOINT, MACHINEGEN_S3_REGION,
//	MACHINEGEN_S3_ACCESS_KEY, MACHINEGEN_S3_SECRET_KEY: s3:// output
//	MACHINEGEN_S3_PATH_STYLE: path-style bucket addressing (MinIO)
func Generate() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the machines manifest",
		Long: `Generate the machines manifest for a cluster.

Instances named {user}-wks-1, {user}-wks-2, ... are looked up in the
instance list. The first --masters become masters and the next --workers
become workers.

Examples:
  # Read gcloud compute instances list --format json output
  machinegen generate --user alice

  # Machine + ExistingInfraMachine pairs as a YAML stream
  machinegen generate --user alice --variant existinginfra

  # List servers from Hetzner Cloud and upload the result
  HCLOUD_TOKEN=... machinegen generate --user alice --source hcloud \
    --output s3://clusters/alice/machines.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resolveParams(cmd, f)
			if err != nil {
				return err
			}
			return handlers.Generate(cmd.Context(), p, f.quiet)
		},
	}

	defaults := config.Defaults()
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "Path to configuration file (default: machinegen.yaml if present)")
	flags.StringVarP(&f.instances, "instances", "i", defaults.Instances, "Path to the instance list (JSON or YAML)")
	flags.StringVarP(&f.user, "user", "u", "", "User whose {user}-wks-N instances are used")
	flags.StringVarP(&f.output, "output", "o", defaults.Output, "Output file path or s3://bucket/key")
	flags.StringVar(&f.variant, "variant", defaults.Variant, "Manifest variant: machine or existinginfra")
	flags.StringVar(&f.format, "format", "", "Output format: list or stream (default: per variant)")
	flags.IntVar(&f.masters, "masters", defaults.Masters, "Number of master nodes")
	flags.IntVar(&f.workers, "workers", defaults.Workers, "Number of worker nodes")
	flags.StringVar(&f.source, "source", defaults.Source, "Instance source: file or hcloud")
	flags.StringVar(&f.labelSelector, "hcloud-label-selector", "", "Label selector for Hetzner Cloud servers")
	flags.StringVar(&f.namespace, "namespace", "", "Namespace set on every object")
	flags.StringVar(&f.clusterName, "cluster-name", "", "Cluster name for existinginfra Machines (default: example)")
	flags.StringVar(&f.kubeVersion, "kubernetes-version", "", "Kubernetes version set on existinginfra Machines")
	flags.StringVar(&f.metricsFile, "metrics-file", "", "Write run metrics to this file in Prometheus text format")
	flags.BoolVarP(&f.quiet, "quiet", "q", false, "Do not print a summary")

	_ = cmd.RegisterFlagCompletionFunc("variant", cobra.FixedCompletions(
		[]string{"machine", "existinginfra"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"list", "stream"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("source", cobra.FixedCompletions(
		[]string{config.SourceFile, config.SourceHCloud}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// resolveParams layers the config file, environment and changed flags.
func resolveParams(cmd *cobra.Command, f *generateFlags) (*config.Params, error) {
	p, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	p.ApplyEnv()

	changed := cmd.Flags().Changed
	setString := func(name string, dst *string, val string) {
		if changed(name) {
			*dst = val
		}
	}
	setString("instances", &p.Instances, f.instances)
	setString("user", &p.User, f.user)
	setString("output", &p.Output, f.output)
	setString("variant", &p.Variant, f.variant)
	setString("format", &p.Format, f.format)
	setString("source", &p.Source, f.source)
	setString("hcloud-label-selector", &p.HCloud.LabelSelector, f.labelSelector)
	setString("namespace", &p.Namespace, f.namespace)
	setString("cluster-name", &p.ClusterName, f.clusterName)
	setString("metrics-file", &p.MetricsFile, f.metricsFile)
	setString("kubernetes-version", &p.KubernetesVersion, f.kubeVersion)
	if changed("masters") {
		p.Masters = f.masters
	}
	if changed("workers") {
		p.Workers = f.workers
	}

	return p, nil
}
