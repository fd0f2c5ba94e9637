package maven

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"detektw/internal/interp"
)

// POMFileName is the conventional project descriptor name.
const POMFileName = "pom.xml"

// defaultPluginGroup is what Maven assumes for a plugin without <groupId>.
const defaultPluginGroup = "org.apache.maven.plugins"

type pomFile struct {
	XMLName    xml.Name      `xml:"project"`
	GroupID    string        `xml:"groupId"`
	ArtifactID string        `xml:"artifactId"`
	Version    string        `xml:"version"`
	Parent     pomParent     `xml:"parent"`
	Properties xmlProperties `xml:"properties"`
	Build      pomBuild      `xml:"build"`
}

type pomParent struct {
	GroupID string `xml:"groupId"`
	Version string `xml:"version"`
}

type pomBuild struct {
	Plugins          []pomPlugin `xml:"plugins>plugin"`
	PluginManagement []pomPlugin `xml:"pluginManagement>plugins>plugin"`
}

type pomPlugin struct {
	GroupID      string          `xml:"groupId"`
	ArtifactID   string          `xml:"artifactId"`
	Version      string          `xml:"version"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// xmlProperties collects the free-form children of <properties>.
type xmlProperties map[string]string

func (p *xmlProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	m := make(map[string]string)
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var v string
			if err := d.DecodeElement(&v, &t); err != nil {
				return err
			}
			m[t.Name.Local] = strings.TrimSpace(v)
		case xml.EndElement:
			*p = m
			return nil
		}
	}
}

// ReadProject loads the project descriptor at path. A missing file yields an
// empty project rooted at the file's directory, not an error.
func ReadProject(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Project{Dir: filepath.Dir(path), Properties: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("failed to read project descriptor: %w", err)
	}
	defer f.Close()

	p, err := ParseProject(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Dir = filepath.Dir(path)
	return p, nil
}

// ParseProject decodes a pom.xml document.
func ParseProject(r io.Reader) (*Project, error) {
	var pf pomFile
	if err := xml.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("invalid project descriptor: %w", err)
	}

	groupID := strings.TrimSpace(pf.GroupID)
	if groupID == "" {
		groupID = strings.TrimSpace(pf.Parent.GroupID)
	}
	version := strings.TrimSpace(pf.Version)
	if version == "" {
		version = strings.TrimSpace(pf.Parent.Version)
	}

	p := &Project{
		GroupID:    groupID,
		ArtifactID: strings.TrimSpace(pf.ArtifactID),
		Version:    version,
		Properties: map[string]string(pf.Properties),
	}
	if p.Properties == nil {
		p.Properties = map[string]string{}
	}

	lookup := p.lookup()
	p.Plugins = convertPlugins(pf.Build.Plugins, lookup)
	p.PluginManagement = convertPlugins(pf.Build.PluginManagement, lookup)
	return p, nil
}

// lookup resolves ${...} against project coordinates and <properties>.
func (p *Project) lookup() interp.Lookup {
	builtins := map[string]string{
		"project.groupId":    p.GroupID,
		"project.artifactId": p.ArtifactID,
		"project.version":    p.Version,
		"pom.version":        p.Version,
		"version":            p.Version,
	}
	return interp.Chain(interp.Map(p.Properties), interp.Map(builtins))
}

func convertPlugins(in []pomPlugin, lookup interp.Lookup) []Plugin {
	if len(in) == 0 {
		return nil
	}
	out := make([]Plugin, 0, len(in))
	for _, pp := range in {
		group := expandTrim(pp.GroupID, lookup)
		if group == "" {
			group = defaultPluginGroup
		}
		pl := Plugin{
			GroupID:    group,
			ArtifactID: expandTrim(pp.ArtifactID, lookup),
			Version:    expandTrim(pp.Version, lookup),
		}
		for _, pd := range pp.Dependencies {
			pl.Dependencies = append(pl.Dependencies, Dependency{
				GroupID:    expandTrim(pd.GroupID, lookup),
				ArtifactID: expandTrim(pd.ArtifactID, lookup),
				Version:    expandTrim(pd.Version, lookup),
			})
		}
		out = append(out, pl)
	}
	return out
}

func expandTrim(s string, lookup interp.Lookup) string {
	return interp.Expand(strings.TrimSpace(s), lookup)
}
