package maven

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const samplePOM = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent</artifactId>
    <version>2.1.0</version>
  </parent>
  <artifactId>service</artifactId>
  <properties>
    <detekt.version>1.23.6</detekt.version>
    <rules.version>${project.version}</rules.version>
  </properties>
  <build>
    <pluginManagement>
      <plugins>
        <plugin>
          <groupId>com.github.ozsie</groupId>
          <artifactId>detekt-maven-plugin</artifactId>
          <version>1.23.6</version>
          <dependencies>
            <dependency>
              <groupId>io.gitlab.arturbosch.detekt</groupId>
              <artifactId>detekt-formatting</artifactId>
              <version>${detekt.version}</version>
            </dependency>
          </dependencies>
        </plugin>
      </plugins>
    </pluginManagement>
    <plugins>
      <plugin>
        <artifactId>maven-compiler-plugin</artifactId>
      </plugin>
      <plugin>
        <groupId>com.github.ozsie</groupId>
        <artifactId>detekt-maven-plugin</artifactId>
        <dependencies>
          <dependency>
            <groupId>com.example.rules</groupId>
            <artifactId>house-rules</artifactId>
            <version>${rules.version}</version>
          </dependency>
        </dependencies>
      </plugin>
    </plugins>
  </build>
</project>
`

func TestParseProject(t *testing.T) {
	p, err := ParseProject(strings.NewReader(samplePOM))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.GroupID != "com.example" {
		t.Errorf("GroupID = %q, want inherited com.example", p.GroupID)
	}
	if p.Version != "2.1.0" {
		t.Errorf("Version = %q, want inherited 2.1.0", p.Version)
	}
	if p.Properties["detekt.version"] != "1.23.6" {
		t.Errorf("detekt.version property = %q", p.Properties["detekt.version"])
	}
	if len(p.Plugins) != 2 {
		t.Fatalf("expected 2 build plugins, got %d", len(p.Plugins))
	}
	if p.Plugins[0].GroupID != defaultPluginGroup {
		t.Errorf("plugin without groupId = %q, want %q", p.Plugins[0].GroupID, defaultPluginGroup)
	}
}

func TestProject_Plugin(t *testing.T) {
	p, err := ParseProject(strings.NewReader(samplePOM))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pl, ok := p.Plugin(DetektPluginKey)
	if !ok {
		t.Fatal("detekt plugin not found")
	}
	if pl.Version != "1.23.6" {
		t.Errorf("Version = %q, want managed 1.23.6", pl.Version)
	}
	if len(pl.Dependencies) != 1 {
		t.Fatalf("expected own dependencies to win, got %d", len(pl.Dependencies))
	}
	dep := pl.Dependencies[0]
	if dep.Key() != "com.example.rules:house-rules" {
		t.Errorf("Key = %q", dep.Key())
	}
	if dep.Version != "2.1.0" {
		t.Errorf("Version = %q, want nested interpolation to 2.1.0", dep.Version)
	}

	if _, ok := p.Plugin("org.example:absent"); ok {
		t.Error("absent plugin must not be found")
	}
}

func TestProject_Plugin_InheritsManagedDependencies(t *testing.T) {
	p := &Project{
		Plugins: []Plugin{{GroupID: "g", ArtifactID: "a"}},
		PluginManagement: []Plugin{{
			GroupID:      "g",
			ArtifactID:   "a",
			Version:      "3",
			Dependencies: []Dependency{{GroupID: "x", ArtifactID: "y", Version: "1"}},
		}},
	}

	pl, ok := p.Plugin("g:a")
	if !ok {
		t.Fatal("plugin not found")
	}
	if len(pl.Dependencies) != 1 || pl.Dependencies[0].Key() != "x:y" {
		t.Errorf("Dependencies = %+v, want managed x:y", pl.Dependencies)
	}
}

func TestProject_Plugin_NilProject(t *testing.T) {
	var p *Project
	if _, ok := p.Plugin(DetektPluginKey); ok {
		t.Error("nil project must have no plugins")
	}
}

func TestReadProject_Missing(t *testing.T) {
	dir := t.TempDir()
	p, err := ReadProject(filepath.Join(dir, POMFileName))
	if err != nil {
		t.Fatalf("missing pom must not fail: %v", err)
	}
	if p.Dir != dir {
		t.Errorf("Dir = %q, want %q", p.Dir, dir)
	}
	if len(p.Plugins) != 0 {
		t.Errorf("expected no plugins, got %d", len(p.Plugins))
	}
}

func TestReadProject_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), POMFileName)
	if err := os.WriteFile(path, []byte("<project><build>"), 0644); err != nil {
		t.Fatalf("write pom: %v", err)
	}
	if _, err := ReadProject(path); err == nil {
		t.Error("expected error for malformed pom")
	}
}

func TestDependency_ArtifactPath(t *testing.T) {
	tests := []struct {
		name string
		dep  Dependency
		root string
		want string
	}{
		{
			name: "plain",
			dep:  Dependency{GroupID: "com.example", ArtifactID: "plugin", Version: "1.0"},
			root: "/repo",
			want: "/repo/com/example/plugin/1.0/plugin-1.0.jar",
		},
		{
			name: "nested group",
			dep:  Dependency{GroupID: "io.gitlab.arturbosch.detekt", ArtifactID: "detekt-formatting", Version: "1.23.6"},
			root: "/home/dev/.m2/repository",
			want: "/home/dev/.m2/repository/io/gitlab/arturbosch/detekt/detekt-formatting/1.23.6/detekt-formatting-1.23.6.jar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dep.ArtifactPath(tt.root); got != tt.want {
				t.Errorf("ArtifactPath = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"com.example:plugin", true},
		{"com.example", false},
		{":plugin", false},
		{"com.example:", false},
		{"a:b:c", false},
	}

	for _, tt := range tests {
		c, ok := ParseCoordinate(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseCoordinate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
		}
		if ok && c.String() != tt.in {
			t.Errorf("String() = %q, want %q", c.String(), tt.in)
		}
	}
}

func TestLocalRepository(t *testing.T) {
	home := t.TempDir()

	if got := LocalRepository("", home, nil); got != filepath.Join(home, ".m2", "repository") {
		t.Errorf("default = %q", got)
	}

	if err := os.MkdirAll(filepath.Join(home, ".m2"), 0755); err != nil {
		t.Fatal(err)
	}
	settings := `<settings><localRepository>${env.M2_ROOT}/repo</localRepository></settings>`
	if err := os.WriteFile(SettingsPath(home), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	if got := LocalRepository("", home, []string{"M2_ROOT=/cache"}); got != "/cache/repo" {
		t.Errorf("settings = %q, want /cache/repo", got)
	}
	if got := LocalRepository("${user.home}/alt", home, nil); got != home+"/alt" {
		t.Errorf("override = %q, want %s/alt", got, home)
	}
}

// The repository layout places every dependency under its group directory
// and ends with <artifactId>-<version>.jar.
func TestArtifactPath_Layout_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("path is root/group/artifact/version/artifact-version.jar", prop.ForAll(
		func(groupParts []string, artifact, version string) bool {
			if len(groupParts) == 0 || artifact == "" || version == "" {
				return true
			}
			dep := Dependency{
				GroupID:    strings.Join(groupParts, "."),
				ArtifactID: artifact,
				Version:    version,
			}
			want := "/r/" + strings.Join(groupParts, "/") + "/" + artifact + "/" + version + "/" + artifact + "-" + version + ".jar"
			return dep.ArtifactPath("/r") == want
		},
		gen.SliceOf(gen.Identifier()),
		gen.Identifier(),
		gen.RegexMatch(`[0-9]\.[0-9]{1,2}`),
	))

	properties.TestingRun(t)
}

func TestParseProject_IgnoresDependencyClassifier(t *testing.T) {
	const pom = `<project>
  <build>
    <plugins>
      <plugin>
        <groupId>com.github.ozsie</groupId>
        <artifactId>detekt-maven-plugin</artifactId>
        <dependencies>
          <dependency>
            <groupId>com.example</groupId>
            <artifactId>rules</artifactId>
            <version>1.0</version>
            <classifier>sources</classifier>
          </dependency>
        </dependencies>
      </plugin>
    </plugins>
  </build>
</project>`

	p, err := ParseProject(strings.NewReader(pom))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pl, ok := p.Plugin(DetektPluginKey)
	if !ok || len(pl.Dependencies) != 1 {
		t.Fatalf("plugin = %+v, ok = %v", pl, ok)
	}
	want := "/repo/com/example/rules/1.0/rules-1.0.jar"
	if got := pl.Dependencies[0].ArtifactPath("/repo"); got != want {
		t.Errorf("ArtifactPath = %q, want %q", got, want)
	}
}
