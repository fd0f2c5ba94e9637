// Package config loads the detektw configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"detektw/internal/maven"
)

// FileNames are searched in order in the base directory.
var FileNames = []string{"detektw.yaml", "detektw.yml", "detektw.toml"}

// ErrUnsupportedFormat is returned for a config file that is neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Load reads the first of FileNames found in dir. Without a config file the
// returned File carries only defaults.
func Load(dir string) (*File, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFrom(path)
		}
	}
	f := &File{}
	f.applyDefaults()
	return f, nil
}

// LoadFrom reads the config file at path, picking the decoder by extension.
func LoadFrom(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var f *File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err = ParseYAML(content)
	case ".toml":
		f, err = ParseTOML(content)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// ParseYAML decodes YAML content into a File.
func ParseYAML(content []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	f.applyDefaults()
	return &f, nil
}

// ParseTOML decodes TOML content into a File.
func ParseTOML(content []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	f.applyDefaults()
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Detekt == nil {
		f.Detekt = map[string]any{}
	}
	if f.Project.POM == "" {
		f.Project.POM = maven.POMFileName
	}
	if f.Project.Plugin == "" {
		f.Project.Plugin = maven.DetektPluginKey
	}
}
