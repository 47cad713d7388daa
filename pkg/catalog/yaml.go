package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a site catalog extension.
type catalogFile struct {
	Version   int             `yaml:"version"`
	Equipment []EquipmentType `yaml:"equipment"`
}

// LoadYAML reads catalog entries from r and registers them, extending or
// overriding the registry's current contents.
func (r *Registry) LoadYAML(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}
	if file.Version != 1 {
		return fmt.Errorf("unsupported catalog version %d", file.Version)
	}

	for _, et := range file.Equipment {
		if err := r.Register(et); err != nil {
			return err
		}
	}
	return nil
}

// LoadYAMLFile loads a site catalog from the given path.
func (r *Registry) LoadYAMLFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return r.LoadYAML(f)
}
