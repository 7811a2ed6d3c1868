package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Load reads an AST file. JSON is used as is; .yaml and .yml files are
// converted to JSON first.
func Load(path string) (gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read AST %s: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes AST bytes. ext selects YAML (".yaml", ".yml"); anything else
// is treated as JSON.
func Parse(data []byte, ext string) (gjson.Result, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return gjson.Result{}, fmt.Errorf("invalid YAML AST: %w", err)
		}
		converted, err := json.Marshal(tree)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("failed to convert YAML AST: %w", err)
		}
		data = converted
	}

	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("invalid JSON AST")
	}
	return gjson.ParseBytes(data), nil
}
