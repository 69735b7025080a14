package eval

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/scopepath/parse"
	"github.com/signadot/scopepath/spath"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// LoadData decodes YAML or JSON template data. Empty input is nil data.
func LoadData(d []byte) (any, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, nil
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("error decoding data: %w", err)
	}
	return v, nil
}

func toJSON(d []byte) ([]byte, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return []byte("{}"), nil
	}
	return yaml.YAMLToJSON(d)
}

// MergeOverrides sets each path=value pair of env in data, as a JSON merge
// patch. Paths are dotted, as in `a.b.[c d]`. The result is JSON.
func MergeOverrides(data []byte, env map[string]any) ([]byte, error) {
	doc, err := toJSON(data)
	if err != nil {
		return nil, fmt.Errorf("error converting data to json: %w", err)
	}
	if len(env) == 0 {
		return doc, nil
	}
	patch := map[string]any{}
	for _, k := range slices.Sorted(maps.Keys(env)) {
		p, err := parse.Path(k)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", k, err)
		}
		if err := setPath(patch, p, env[k]); err != nil {
			return nil, fmt.Errorf("override %q: %w", k, err)
		}
	}
	pd, err := yaml.MarshalWithOptions(patch, yaml.JSON())
	if err != nil {
		return nil, err
	}
	return jsonpatch.MergePatch(doc, pd)
}

func setPath(m map[string]any, p spath.Path, v any) error {
	for i, s := range p {
		k := spath.Text(s)
		if spath.IsKeyword(s) || strings.HasSuffix(k, "/") {
			return fmt.Errorf("cannot set %s", k)
		}
		if i == len(p)-1 {
			m[k] = v
			return nil
		}
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	return nil
}

// ApplyPatch applies the RFC 6902 JSON patch to data. Both may be given as
// YAML. The result is JSON.
func ApplyPatch(data, patch []byte) ([]byte, error) {
	doc, err := toJSON(data)
	if err != nil {
		return nil, fmt.Errorf("error converting data to json: %w", err)
	}
	pd, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("error converting patch to json: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return nil, err
	}
	return ops.Apply(doc)
}
