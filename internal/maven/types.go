package maven

import (
	"path/filepath"
	"strings"
)

// DetektPluginKey identifies the Maven plugin whose declared dependencies
// carry detekt rule-set plugins.
const DetektPluginKey = "com.github.ozsie:detekt-maven-plugin"

// Coordinate is a groupId:artifactId pair.
type Coordinate struct {
	GroupID    string
	ArtifactID string
}

// ParseCoordinate splits "groupId:artifactId". It reports false when s does
// not have exactly that shape.
func ParseCoordinate(s string) (Coordinate, bool) {
	group, artifact, ok := strings.Cut(s, ":")
	if !ok || group == "" || artifact == "" || strings.Contains(artifact, ":") {
		return Coordinate{}, false
	}
	return Coordinate{GroupID: group, ArtifactID: artifact}, true
}

func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID
}

// Dependency is a resolved artifact declaration.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Key returns the "groupId:artifactId" form used to match plugin entries.
func (d Dependency) Key() string {
	return d.GroupID + ":" + d.ArtifactID
}

// ArtifactPath returns the location of the dependency's jar inside a local
// repository rooted at root:
//
//	<root>/<groupId as dirs>/<artifactId>/<version>/<artifactId>-<version>.jar
//
// The path is built with forward slashes joined onto root as given; it is not
// cleaned or checked for existence.
func (d Dependency) ArtifactPath(root string) string {
	return root +
		"/" + strings.ReplaceAll(d.GroupID, ".", "/") +
		"/" + d.ArtifactID +
		"/" + d.Version +
		"/" + d.ArtifactID + "-" + d.Version + ".jar"
}

// Plugin is a build plugin declared in a project descriptor.
type Plugin struct {
	GroupID      string
	ArtifactID   string
	Version      string
	Dependencies []Dependency
}

// Key returns the "groupId:artifactId" form of the plugin.
func (p Plugin) Key() string {
	return p.GroupID + ":" + p.ArtifactID
}

// Project is the subset of a Maven project descriptor detektw reads.
type Project struct {
	Dir              string
	GroupID          string
	ArtifactID       string
	Version          string
	Properties       map[string]string
	Plugins          []Plugin
	PluginManagement []Plugin
}

// Plugin looks up a build plugin by "groupId:artifactId". Plugins declared in
// <build><plugins> win; a declared plugin without dependencies inherits them
// from <pluginManagement>. A plugin only present in plugin management is
// returned as well.
func (p *Project) Plugin(key string) (Plugin, bool) {
	if p == nil {
		return Plugin{}, false
	}

	var managed *Plugin
	for i := range p.PluginManagement {
		if p.PluginManagement[i].Key() == key {
			managed = &p.PluginManagement[i]
			break
		}
	}

	for _, pl := range p.Plugins {
		if pl.Key() != key {
			continue
		}
		if len(pl.Dependencies) == 0 && managed != nil {
			pl.Dependencies = managed.Dependencies
		}
		if pl.Version == "" && managed != nil {
			pl.Version = managed.Version
		}
		return pl, true
	}

	if managed != nil {
		return *managed, true
	}
	return Plugin{}, false
}

// DefaultLocalRepository returns ~/.m2/repository for the given home.
func DefaultLocalRepository(home string) string {
	return filepath.Join(home, ".m2", "repository")
}
