package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Decode builds a Unified configuration from a nested option map with the
// top-level keys "cli", "device" and "runner".
// Values are weakly typed: "true" decodes into a boolean, "4" into a number.
func Decode(raw map[string]any) (Unified, error) {
	var u Unified
	if err := decode(raw, &u); err != nil {
		return Unified{}, fmt.Errorf("failed to decode unified config: %w", err)
	}
	return u, nil
}

func decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       boolToString,
		TagName:          "mapstructure",
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// boolToString keeps booleans readable when they land in string options
// (weak typing alone would turn true into "1").
func boolToString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Bool && to.Kind() == reflect.String {
		return strconv.FormatBool(data.(bool)), nil
	}
	return data, nil
}

// LoadDocument reads a unified configuration document (YAML or JSON by extension).
func LoadDocument(path string) (Unified, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Unified{}, fmt.Errorf("failed to read unified config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Unified{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Unified{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Decode(raw)
}
