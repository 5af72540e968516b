package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SyntaxError reports a document that could not be parsed as YAML at
// all. It is deliberately distinct from ValidationErrors: there is no
// coherent structure to validate or back up beyond the raw bytes.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("manifest: malformed document: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Load parses raw manifest bytes into a nested mapping for validation.
// Empty input, or input that parses to an empty mapping, yields nil with
// no error. Malformed YAML yields a *SyntaxError.
func Load(data []byte) (map[string]interface{}, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	if len(doc) == 0 {
		return nil, nil
	}
	return doc, nil
}

// Dump serializes a manifest to its canonical textual form: declared
// field order, two-space indent, unset fields omitted entirely.
func Dump(m *Manifest) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("manifest: nothing to dump")
	}
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	return []byte(sb.String()), nil
}

// Raw converts a manifest back into the loosely-typed mapping form, as
// if it had been dumped and re-loaded. Useful for merging collected
// fragments over a previous on-disk document.
func Raw(m *Manifest) (map[string]interface{}, error) {
	data, err := Dump(m)
	if err != nil {
		return nil, err
	}
	return Load(data)
}
