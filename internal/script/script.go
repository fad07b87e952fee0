/*
Package script loads operation scripts and applies them to a ring.

A script is an ordered list of operations:

	ops:
	  - op: push
	    key: a
	    value: "1"
	  - op: insert_after
	    key: a
	    new_key: b
	    value: "2"
	  - op: print

Scripts are written in YAML or TOML.
*/
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Script formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Operation names.
const (
	OpPush         = "push"
	OpInsertAfter  = "insert_after"
	OpInsertBefore = "insert_before"
	OpRemove       = "remove"
	OpClear        = "clear"
	OpFind         = "find"
	OpCount        = "count"
	OpExists       = "exists"
	OpPrint        = "print"
)

var (
	// ErrUnknownFormat indicates an unsupported script format.
	ErrUnknownFormat = errors.New("unknown script format")
	// ErrUnknownOp indicates an unsupported operation name.
	ErrUnknownOp = errors.New("unknown operation")
)

// Op is a single ring operation.
//
// Occurrence selects among nodes with duplicate keys. The zero value selects the first match.
type Op struct {
	Op         string `yaml:"op"         toml:"op"`
	Key        string `yaml:"key"        toml:"key"`
	NewKey     string `yaml:"new_key"    toml:"new_key"`
	Value      string `yaml:"value"      toml:"value"`
	Occurrence int    `yaml:"occurrence" toml:"occurrence"`
}

// Script is an ordered list of operations.
type Script struct {
	Ops []Op `yaml:"ops" toml:"ops"`
}

// FormatOf returns the script format for a file path by its extension.
func FormatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("extension '%s': %w", ext, ErrUnknownFormat)
	}
}

// Load reads a script file. If format is empty, it is derived from the file extension.
func Load(path, format string) (*Script, error) {
	if format == "" {
		var err error
		if format, err = FormatOf(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes a script. Unknown fields are rejected.
func Parse(data []byte, format string) (*Script, error) {
	var s Script

	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalStrict(data, &s); err != nil {
			return nil, fmt.Errorf("unmarshaling yaml script: %w", err)
		}

	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return nil, fmt.Errorf("decoding toml script: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decoding toml script: unknown fields %v", undecoded)
		}

	default:
		return nil, fmt.Errorf("format '%s': %w", format, ErrUnknownFormat)
	}

	return &s, nil
}
