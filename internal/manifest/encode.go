package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"
)

var separator = []byte("---\n")

// Encode serializes objs in the given format. Keys are emitted in sorted
// order and nothing time- or random-dependent is added, so equal input
// encodes to equal bytes.
func Encode(objs []runtime.Object, format Format) ([]byte, error) {
	switch format {
	case FormatList:
		return encodeList(objs)
	case FormatStream:
		return encodeStream(objs)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func encodeList(objs []runtime.Object) ([]byte, error) {
	list := &metav1.List{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "List"},
		Items:    make([]runtime.RawExtension, 0, len(objs)),
	}
	for _, obj := range objs {
		list.Items = append(list.Items, runtime.RawExtension{Object: obj})
	}

	data, err := yaml.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal list: %w", err)
	}
	return data, nil
}

func encodeStream(objs []runtime.Object) ([]byte, error) {
	var buf bytes.Buffer
	for _, obj := range objs {
		data, err := yaml.Marshal(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", obj.GetObjectKind().GroupVersionKind().Kind, err)
		}
		buf.Write(separator)
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// Decode reads a machines manifest, either a v1 List or a document stream,
// and returns its objects in file order. List items are flattened.
func Decode(r io.Reader) ([]runtime.Object, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(r))
	decoder := Codecs.UniversalDeserializer()

	var objs []runtime.Object
	for {
		doc, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		obj, _, err := decoder.Decode(doc, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", len(objs)+1, err)
		}

		items, isList := listItems(obj)
		if !isList {
			objs = append(objs, obj)
			continue
		}
		for i, item := range items {
			itemObj, _, err := decoder.Decode(item.Raw, nil, nil)
			if err != nil {
				return nil, fmt.Errorf("failed to decode list item %d: %w", i, err)
			}
			objs = append(objs, itemObj)
		}
	}
	return objs, nil
}

func listItems(obj runtime.Object) ([]runtime.RawExtension, bool) {
	switch l := obj.(type) {
	case *corev1.List:
		return l.Items, true
	case *metav1.List:
		return l.Items, true
	default:
		return nil, false
	}
}
