package schema

import (
	"encoding/json"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is a UTCP tool descriptor as produced by the tool source. The name
// may be namespaced as "<manual>.<local>" or un-namespaced. Inputs carries
// the raw JSON-Schema-like tree and may be absent or malformed.
type Tool struct {
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Inputs       json.RawMessage `json:"inputs,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	CallTemplate *CallTemplate   `json:"tool_call_template,omitempty"`
}

// CallTemplate is the registration record of the manual a tool came from.
type CallTemplate struct {
	Name             string `json:"name"`
	CallTemplateType string `json:"call_template_type,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Namespace separator in full tool names
	NamespaceSeparator = "."

	// Namespace returned when a tool name has no separator, or when the
	// registration record is absent
	NamespaceUnknown = "unknown"
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Tool) String() string {
	return types.Stringify(t)
}

func (t CallTemplate) String() string {
	return types.Stringify(t)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

// toolv0 is the legacy wire generation of the descriptor, where the
// registration record was named "tool_provider" with a "provider_type".
type toolv0 struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Inputs      json.RawMessage `json:"inputs,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Provider    *struct {
		Name         string `json:"name"`
		ProviderType string `json:"provider_type,omitempty"`
	} `json:"tool_provider,omitempty"`
}

// UnmarshalJSON accepts both wire generations of the registry: the current
// one with "tool_call_template", and the legacy one with "tool_provider".
func (t *Tool) UnmarshalJSON(data []byte) error {
	type plain Tool
	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Tool(v)
	if t.CallTemplate != nil {
		return nil
	}

	// Fall back to the legacy registration record
	var legacy toolv0
	if err := json.Unmarshal(data, &legacy); err == nil && legacy.Provider != nil {
		t.CallTemplate = &CallTemplate{
			Name:             legacy.Provider.Name,
			CallTemplateType: legacy.Provider.ProviderType,
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Namespace returns the leading segment of the tool's full name, or
// NamespaceUnknown when the name contains no separator.
func (t Tool) Namespace() string {
	if before, _, found := strings.Cut(t.Name, NamespaceSeparator); found {
		return before
	}
	return NamespaceUnknown
}

// LocalName returns the part of the tool name after the namespace, or the
// whole name when un-namespaced.
func (t Tool) LocalName() string {
	if _, after, found := strings.Cut(t.Name, NamespaceSeparator); found {
		return after
	}
	return t.Name
}

// CallTemplateType returns the source-kind label from the registration
// record, or NamespaceUnknown when the record or label is absent.
func (t Tool) CallTemplateType() string {
	if t.CallTemplate != nil && t.CallTemplate.CallTemplateType != "" {
		return t.CallTemplate.CallTemplateType
	}
	return NamespaceUnknown
}

// InputsMap decodes the raw input schema into a generic mapping. A missing
// or malformed schema yields an empty object schema; this never fails.
func (t Tool) InputsMap() map[string]any {
	var result map[string]any
	if len(t.Inputs) > 0 {
		if err := json.Unmarshal(t.Inputs, &result); err == nil && result != nil {
			return result
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}
