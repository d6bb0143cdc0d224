package project

import (
	"strings"
	"testing"
)

func TestManifest_GoMod(t *testing.T) {
	manifest := &Manifest{
		Module: "widget-tests",
		Dependencies: map[string]Dependency{
			"example.com/widget": {Path: "/home/user/src/widget"},
			"example.com/extra":  {Version: "v1.2.3"},
			"example.com/local":  {Path: "/home/user/src/local"},
		},
	}

	data, err := manifest.GoMod()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(data)

	if !strings.HasPrefix(text, "module widget-tests\n") {
		t.Errorf("missing module line:\n%s", text)
	}
	if !strings.Contains(text, "go "+goDirective+"\n") {
		t.Errorf("missing go directive:\n%s", text)
	}
	if !strings.Contains(text, "example.com/widget v0.0.0") {
		t.Errorf("path dependency missing placeholder version:\n%s", text)
	}
	if !strings.Contains(text, "example.com/extra v1.2.3") {
		t.Errorf("versioned dependency missing:\n%s", text)
	}
	if !strings.Contains(text, "replace example.com/widget => /home/user/src/widget") {
		t.Errorf("missing replace directive for the unit under test:\n%s", text)
	}
	if !strings.Contains(text, "replace example.com/local => /home/user/src/local") {
		t.Errorf("missing replace directive for local dependency:\n%s", text)
	}
	if strings.Contains(text, "replace example.com/extra") {
		t.Errorf("versioned dependency must not get a replace directive:\n%s", text)
	}

	// Require entries come out sorted by name.
	extraIdx := strings.Index(text, "example.com/extra")
	widgetIdx := strings.Index(text, "example.com/widget")
	if extraIdx > widgetIdx {
		t.Error("require entries are not sorted")
	}
}

func TestManifest_GoMod_Deterministic(t *testing.T) {
	manifest := &Manifest{
		Module: "widget-tests",
		Dependencies: map[string]Dependency{
			"example.com/a": {Version: "v1.0.0"},
			"example.com/b": {Path: "/b"},
			"example.com/c": {Version: "v2.0.0"},
			"example.com/d": {Path: "/d"},
		},
	}

	first, err := manifest.GoMod()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := manifest.GoMod()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(first) != string(again) {
			t.Fatal("serialization is not deterministic across map iteration order")
		}
	}
}

func TestManifest_GoMod_NoModule(t *testing.T) {
	manifest := &Manifest{}
	if _, err := manifest.GoMod(); err == nil {
		t.Error("expected an error for a manifest without a module name")
	}
}
