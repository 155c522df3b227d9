package rule

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Resources map[string]Rule `yaml:"resources"`
}

// LoadYAML reads a rules document and registers every resource it declares.
func LoadYAML(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc rulesFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewRegistry(), nil
		}
		return nil, errors.Join(ErrFailedToLoadRules, err)
	}

	reg := NewRegistry()
	for name, r := range doc.Resources {
		if err := reg.Register(name, r); err != nil {
			return nil, errors.Join(ErrFailedToLoadRules, err)
		}
	}
	return reg, nil
}

// LoadFile opens path and passes it to LoadYAML.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadRules, err)
	}
	defer f.Close()

	return LoadYAML(f)
}
