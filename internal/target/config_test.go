package target

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	doc := `
[project]
name = "geo"

[output]
dir = "out"

[targets.cs]
enabled = true
indent = "\t"

[targets.js]
enabled = false
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Project.Name != "geo" {
		t.Errorf("project name = %q", c.Project.Name)
	}
	if c.Output.Dir != "out" {
		t.Errorf("output dir = %q", c.Output.Dir)
	}
	if cs := c.Targets["cs"]; !cs.Enabled || cs.Indent != "\t" {
		t.Errorf("cs target = %+v", cs)
	}
	if got := c.Enabled(); !reflect.DeepEqual(got, []string{"cs"}) {
		t.Errorf("Enabled() = %v", got)
	}
}

func TestLoadDefaultsOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("[project]\nname = \"m\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Output.Dir != "." {
		t.Errorf("output dir = %q", c.Output.Dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	c := Default()
	c.Project.Name = "geo"
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, c) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, c)
	}
}

func TestDefaultEnablesAllTargets(t *testing.T) {
	got := Default().Enabled()
	want := []string{"cs", "java", "js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Enabled() = %v, want %v", got, want)
	}
}
