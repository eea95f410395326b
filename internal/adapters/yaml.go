package adapters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/weft/internal/dto"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
	"gopkg.in/yaml.v3"
)

// YAMLLoader parses an automaton definition written as a YAML document with
// the keys alphabet, states, accepting, initial and transitions. The document
// is decoded generically and mapped into the definition DTO, so YAML and the
// HTTP JSON body share one decoding path.
type YAMLLoader struct{}

// NewYAMLLoader creates a YAML-format loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load implements ports.AutomatonLoader.
func (l *YAMLLoader) Load(data []byte) (*domain.Automaton, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid definition document: %w", err)
	}

	def, err := dto.Decode(raw)
	if err != nil {
		return nil, err
	}

	return def.ToAutomaton()
}

// ForPath picks the loader matching the file extension: YAML for .yaml/.yml,
// the plain text format for everything else.
func ForPath(path string) ports.AutomatonLoader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLLoader()
	default:
		return NewTextLoader()
	}
}
