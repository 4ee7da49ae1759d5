// Package datasets embeds the bundled offline view dumps: simple_ecommerce,
// moderate_analytics, realistic_bi_warehouse, and complex_enterprise.
package datasets

import (
	"bytes"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/robfromboulder/viewmapper/internal/warehouse"
)

//go:embed assets/*.json
var assetFS embed.FS

//go:embed manifest.yaml
var manifestYAML []byte

// ManifestEntry is one bundled dataset's metadata.
type ManifestEntry struct {
	Name          string `yaml:"name"`
	ExpectedLevel string `yaml:"expectedLevel"`
	Description   string `yaml:"description"`
}

type manifest struct {
	Datasets []ManifestEntry `yaml:"datasets"`
}

// Manifest returns the decoded dataset manifest.
func Manifest() ([]ManifestEntry, error) {
	var m manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return nil, fmt.Errorf("decode dataset manifest: %w", err)
	}
	return m.Datasets, nil
}

// Names returns every bundled dataset's name, in manifest order.
func Names() []string {
	entries, err := Manifest()
	if err != nil {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Load decodes the embedded JSON view dump for name.
func Load(name string) (*warehouse.Dataset, error) {
	data, err := assetFS.ReadFile("assets/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown bundled dataset %q: %w", name, err)
	}
	return warehouse.LoadJSON(bytes.NewReader(data))
}
