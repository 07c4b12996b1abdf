package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/imamik/machinegen/internal/manifest"
	"github.com/imamik/machinegen/internal/plan"
)

// Instance sources.
const (
	SourceFile   = "file"
	SourceHCloud = "hcloud"
)

// Defaults for a generation run.
const (
	DefaultInstances = "instances.json"
	DefaultOutput    = "machines.yaml"
	DefaultSource    = SourceFile
)

// Environment variables read by ApplyEnv.
const (
	EnvUser        = "MACHINEGEN_USER"
	EnvInstances   = "MACHINEGEN_INSTANCES"
	EnvOutput      = "MACHINEGEN_OUTPUT"
	EnvHCloudToken = "HCLOUD_TOKEN"
	EnvS3Endpoint  = "MACHINEGEN_S3_ENDPOINT"
	EnvS3Region    = "MACHINEGEN_S3_REGION"
	EnvS3AccessKey = "MACHINEGEN_S3_ACCESS_KEY"
	EnvS3SecretKey = "MACHINEGEN_S3_SECRET_KEY"
	EnvS3PathStyle = "MACHINEGEN_S3_PATH_STYLE"
)

// Params holds everything a generation run needs. The yaml tags define the
// machinegen.yaml layout. Credentials are never written to the file.
type Params struct {
	Instances   string `yaml:"instances"`
	User        string `yaml:"user,omitempty"`
	Output      string `yaml:"output"`
	Variant     string `yaml:"variant"`
	Format      string `yaml:"format,omitempty"`
	Masters     int    `yaml:"masters"`
	Workers     int    `yaml:"workers"`
	Source      string `yaml:"source"`
	Namespace   string `yaml:"namespace,omitempty"`
	ClusterName string `yaml:"clusterName,omitempty"`
	MetricsFile string `yaml:"metricsFile,omitempty"`

	// KubernetesVersion is set as spec.version on existinginfra Machines.
	KubernetesVersion string `yaml:"kubernetesVersion,omitempty"`

	HCloud HCloudParams `yaml:"hcloud,omitempty"`
	S3     S3Params     `yaml:"s3,omitempty"`
}

// HCloudParams configure the Hetzner Cloud instance source.
type HCloudParams struct {
	Token         string `yaml:"-"`
	LabelSelector string `yaml:"labelSelector,omitempty"`
}

// S3Params configure the s3:// output sink.
type S3Params struct {
	Endpoint  string `yaml:"endpoint,omitempty"`
	Region    string `yaml:"region,omitempty"`
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
	// PathStyle addresses buckets as endpoint/bucket, as MinIO and most
	// S3-compatible services expect.
	PathStyle bool `yaml:"pathStyle,omitempty"`
}

// Defaults returns the built-in parameters.
func Defaults() *Params {
	return &Params{
		Instances: DefaultInstances,
		Output:    DefaultOutput,
		Variant:   string(manifest.VariantMachine),
		Masters:   plan.DefaultMasters,
		Workers:   plan.DefaultWorkers,
		Source:    DefaultSource,
	}
}

// ApplyEnv overrides p with any environment variables that are set.
func (p *Params) ApplyEnv() {
	override := func(dst *string, env string) {
		if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	override(&p.User, EnvUser)
	override(&p.Instances, EnvInstances)
	override(&p.Output, EnvOutput)
	override(&p.HCloud.Token, EnvHCloudToken)
	override(&p.S3.Endpoint, EnvS3Endpoint)
	override(&p.S3.Region, EnvS3Region)
	override(&p.S3.AccessKey, EnvS3AccessKey)
	override(&p.S3.SecretKey, EnvS3SecretKey)

	if v, ok := os.LookupEnv(EnvS3PathStyle); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			p.S3.PathStyle = b
		}
	}
}

// Validate checks the parameters. The user is checked first so a missing
// user is reported before anything else.
func (p *Params) Validate() error {
	if strings.TrimSpace(p.User) == "" {
		return &MissingParameterError{Name: "user"}
	}

	variant, err := manifest.ParseVariant(p.Variant)
	if err != nil {
		return &ValidationError{Field: "variant", Value: p.Variant, Reason: "must be machine or existinginfra"}
	}
	if _, err := manifest.ParseFormat(p.Format, variant); err != nil {
		return &ValidationError{Field: "format", Value: p.Format, Reason: "must be list or stream"}
	}

	if err := p.Plan().Validate(); err != nil {
		return &ValidationError{Field: "plan", Value: p.Plan(), Reason: err.Error()}
	}

	switch p.Source {
	case SourceFile:
		if p.Instances == "" {
			return &MissingParameterError{Name: "instances"}
		}
	case SourceHCloud:
		if p.HCloud.Token == "" {
			return &MissingParameterError{Name: EnvHCloudToken}
		}
	default:
		return &ValidationError{Field: "source", Value: p.Source, Reason: "must be file or hcloud"}
	}

	if p.Output == "" {
		return &MissingParameterError{Name: "output"}
	}
	return nil
}

// Plan returns the slot plan described by p.
func (p *Params) Plan() plan.Plan {
	return plan.Plan{Masters: p.Masters, Workers: p.Workers}
}

// ManifestVariant returns the parsed variant. Call Validate first.
func (p *Params) ManifestVariant() manifest.Variant {
	v, err := manifest.ParseVariant(p.Variant)
	if err != nil {
		return manifest.VariantMachine
	}
	return v
}

// ManifestFormat returns the parsed format, falling back to the variant default.
func (p *Params) ManifestFormat() manifest.Format {
	v := p.ManifestVariant()
	f, err := manifest.ParseFormat(p.Format, v)
	if err != nil {
		return v.DefaultFormat()
	}
	return f
}

// ManifestOptions returns the builder options described by p.
func (p *Params) ManifestOptions() manifest.Options {
	return manifest.Options{
		Namespace:         p.Namespace,
		ClusterName:       p.ClusterName,
		KubernetesVersion: p.KubernetesVersion,
	}
}
