package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Metadata describes a wrapped tool to the calling framework. ManualName
// and CallTemplate carry the same value: the latter is a legacy alias kept
// for callers of the previous registry generation.
type Metadata struct {
	ManualName       string   `json:"manual_name"`
	CallTemplate     string   `json:"call_template"`
	CallTemplateType string   `json:"call_template_type"`
	Tags             []string `json:"tags"`
	UTCPTool         bool     `json:"utcp_tool"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMetadata derives metadata from a tool descriptor.
func NewMetadata(tool Tool) Metadata {
	return Metadata{
		ManualName:       tool.Namespace(),
		CallTemplate:     tool.Namespace(),
		CallTemplateType: tool.CallTemplateType(),
		Tags:             tool.Tags,
		UTCPTool:         true,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Metadata) String() string {
	return types.Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Map returns the metadata as a mapping with its fixed keys, including the
// aliases ("provider", "provider_type") emitted by the legacy generation.
func (m Metadata) Map() map[string]any {
	return map[string]any{
		"manual_name":        m.ManualName,
		"call_template":      m.CallTemplate,
		"call_template_type": m.CallTemplateType,
		"provider":           m.ManualName,
		"provider_type":      m.CallTemplateType,
		"tags":               m.Tags,
		"utcp_tool":          m.UTCPTool,
	}
}
