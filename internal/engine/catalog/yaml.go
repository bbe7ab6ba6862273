package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileCategory struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Severity string   `yaml:"severity"`
	Weight   int      `yaml:"weight"`
	Patterns []string `yaml:"patterns"`
	Remedies []string `yaml:"remedies"`
}

type catalogFile struct {
	Categories []fileCategory `yaml:"categories"`
}

// LoadFile reads a YAML category file and compiles it into a Catalog.
// Malformed patterns inside a category degrade the same way Default()
// entries would: skipped with a warning, category kept if anything compiles.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(cf.Categories) == 0 {
		return nil, fmt.Errorf("catalog: %s defines no categories", path)
	}

	specs := make([]Spec, 0, len(cf.Categories))
	for _, c := range cf.Categories {
		specs = append(specs, Spec{
			Key:      c.Key,
			Label:    c.Label,
			Severity: c.Severity,
			Weight:   c.Weight,
			Patterns: c.Patterns,
			Remedies: c.Remedies,
		})
	}
	return New(specs), nil
}
