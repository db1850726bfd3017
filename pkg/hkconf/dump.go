package hkconf

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DumpJSON renders cfg as a JSON document, built incrementally with sjson
// rather than a single encoding/json.Marshal call, so the wire shape is
// whatever path set the caller sees below rather than Go's field-name
// defaults.
func DumpJSON(cfg *Config) (string, error) {
	out := "{}"
	var err error

	for i, path := range cfg.Imports {
		if out, err = sjson.Set(out, fmt.Sprintf("imports.%d", i), path); err != nil {
			return "", err
		}
	}
	for i, b := range cfg.Bindings {
		if out, err = setBinding(out, fmt.Sprintf("bindings.%d", i), b); err != nil {
			return "", err
		}
	}
	for i, d := range cfg.Unbinds {
		if out, err = setDefinition(out, fmt.Sprintf("unbinds.%d", i), d); err != nil {
			return "", err
		}
	}
	for i, m := range cfg.Modes {
		if out, err = setMode(out, fmt.Sprintf("modes.%d", i), m); err != nil {
			return "", err
		}
	}
	return out, nil
}

func setDefinition(out, path string, def Definition) (string, error) {
	var err error
	if out, err = sjson.Set(out, path+".key.id", def.Key.ID); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, path+".key.attribute", def.Key.Attribute.String()); err != nil {
		return "", err
	}
	names := make([]string, 0, len(def.Modifiers.Slice()))
	for _, m := range def.Modifiers.Slice() {
		names = append(names, m.String())
	}
	return sjson.Set(out, path+".modifiers", names)
}

func setBinding(out, path string, b Binding) (string, error) {
	out, err := setDefinition(out, path+".definition", b.Definition)
	if err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, path+".command", b.Command); err != nil {
		return "", err
	}
	for i, mi := range b.ModeInstructions {
		instPath := fmt.Sprintf("%s.mode_instructions.%d", path, i)
		kind := "Escape"
		if mi.Kind == 0 {
			kind = "Enter"
		}
		if out, err = sjson.Set(out, instPath+".kind", kind); err != nil {
			return "", err
		}
		if mi.Name != "" {
			if out, err = sjson.Set(out, instPath+".name", mi.Name); err != nil {
				return "", err
			}
		}
	}
	return out, nil
}

func setMode(out, path string, m Mode) (string, error) {
	var err error
	if out, err = sjson.Set(out, path+".name", m.Name); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, path+".one_off", m.OneOff); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, path+".swallow", m.Swallow); err != nil {
		return "", err
	}
	for i, b := range m.Bindings {
		if out, err = setBinding(out, fmt.Sprintf("%s.bindings.%d", path, i), b); err != nil {
			return "", err
		}
	}
	for i, d := range m.Unbinds {
		if out, err = setDefinition(out, fmt.Sprintf("%s.unbinds.%d", path, i), d); err != nil {
			return "", err
		}
	}
	return out, nil
}

// DumpYAML renders cfg as YAML by reinterpreting the same JSON document
// DumpJSON produces as a generic value (via gjson) and re-marshaling that
// with go-yaml, rather than maintaining a parallel YAML builder.
func DumpYAML(cfg *Config) (string, error) {
	doc, err := DumpJSON(cfg)
	if err != nil {
		return "", err
	}
	generic := gjson.Parse(doc).Value()
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
