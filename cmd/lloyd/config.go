package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// applyConfigFile sets every flag named in the YAML file that was not given
// on the command line. Unknown keys are rejected.
func applyConfigFile(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	flags := cmd.Flags()
	for key, v := range values {
		f := flags.Lookup(key)
		if f == nil {
			return fmt.Errorf("config %s: unknown key %q for command %q", path, key, cmd.Name())
		}
		if f.Changed {
			continue
		}
		if err := flags.Set(key, configString(v)); err != nil {
			return fmt.Errorf("config %s: key %q: %w", path, key, err)
		}
	}
	return nil
}

func configString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(x)
	}
}
