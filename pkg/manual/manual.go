package manual

import (
	"encoding/json"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	adapters "github.com/mutablelogic/go-utcp-adapters"
	schema "github.com/mutablelogic/go-utcp-adapters/pkg/schema"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Manual is a UTCP manual document: the set of tool descriptors published
// by one registered provider.
type Manual struct {
	Name          string        `json:"name,omitempty"`
	UTCPVersion   string        `json:"utcp_version,omitempty"`
	ManualVersion string        `json:"manual_version,omitempty"`
	Tools         []schema.Tool `json:"tools"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseJSON decodes a manual document from JSON. Tool names which carry no
// namespace are prefixed with the manual name, and tools without a
// registration record inherit one from the manual.
func ParseJSON(data []byte) (*Manual, error) {
	var manual Manual
	if err := json.Unmarshal(data, &manual); err != nil {
		return nil, adapters.ErrBadParameter.Withf("failed to decode manual: %v", err)
	}
	manual.normalize()
	return &manual, nil
}

// ParseYAML decodes a manual document from YAML, with the same
// normalization as ParseJSON.
func ParseYAML(data []byte) (*Manual, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, adapters.ErrBadParameter.Withf("failed to decode manual: %v", err)
	}

	// Re-encode as JSON so the descriptor unmarshalling rules apply
	encoded, err := json.Marshal(tree)
	if err != nil {
		return nil, adapters.ErrBadParameter.Withf("failed to decode manual: %v", err)
	}
	return ParseJSON(encoded)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m *Manual) String() string {
	return types.Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *Manual) normalize() {
	if m.Name == "" {
		return
	}
	for i := range m.Tools {
		tool := &m.Tools[i]
		if tool.Name != "" && !strings.Contains(tool.Name, schema.NamespaceSeparator) {
			tool.Name = m.Name + schema.NamespaceSeparator + tool.Name
		}
		if tool.CallTemplate == nil {
			tool.CallTemplate = &schema.CallTemplate{Name: m.Name}
		}
	}
}
