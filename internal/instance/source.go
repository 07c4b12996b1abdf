package instance

import (
	"context"
	"os"

	"sigs.k8s.io/yaml"
)

// Source produces the list of instances machines are looked up in.
type Source interface {
	Instances(ctx context.Context) ([]Instance, error)
}

// FileSource reads instances from a JSON or YAML file holding an array.
type FileSource struct {
	Path string
}

// NewFileSource returns a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Instances implements Source.
func (s *FileSource) Instances(ctx context.Context) ([]Instance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &SourceReadError{Path: s.Path, Err: err}
	}
	return Parse(s.Path, data)
}

// Parse decodes an instance array. JSON is valid YAML, so both encodings work.
func Parse(origin string, data []byte) ([]Instance, error) {
	var instances []Instance
	if err := yaml.Unmarshal(data, &instances); err != nil {
		return nil, &ParseError{Path: origin, Err: err}
	}
	return instances, nil
}
