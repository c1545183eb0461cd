package presets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// LoadFile reads a YAML chart definition. A top-level "preset" key starts from that built-in
// and overlays the remaining fields; without it the chart starts from types.DefaultChartSpec.
//
//	preset: displacement
//	chart:
//	  title: Displacement operator (surface code)
//	  y: {field: runtime_seconds, label: Runtime (s), scale: log}
func LoadFile(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Preset{}, rerrors.NewNotFound(path, err)
		}
		return Preset{}, rerrors.NewInvalidSpec("read %s: %v", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a YAML chart definition; name is used when the document has none.
func Parse(name string, data []byte) (Preset, error) {
	var head struct {
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Preset{}, rerrors.NewInvalidSpec("parse %s: %v", name, err)
	}
	base := Preset{Chart: types.DefaultChartSpec()}
	if head.Preset != "" {
		p, err := Lookup(head.Preset)
		if err != nil {
			return Preset{}, err
		}
		base = p
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Preset{}, rerrors.NewInvalidSpec("parse %s: %v", name, err)
	}
	if base.Name == "" || base.Name == head.Preset {
		base.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if err := base.Validate(); err != nil {
		return Preset{}, err
	}
	return base, nil
}
