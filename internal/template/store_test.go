package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/template"
)

func TestLoadParsesDocument(t *testing.T) {
	dir := t.TempDir()
	content := `{"creator_personalization":{"content_style":"punchy"},"hook_options":[{"text":"stop scrolling"}]}`
	if err := os.WriteFile(filepath.Join(dir, "hookResponse.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := template.NewStore(dir).Load(intent.Hook)
	if got := doc.Str("creator_personalization.content_style"); got != "punchy" {
		t.Fatalf("unexpected content_style: %q", got)
	}
	if got := doc.Str("hook_options.0.text"); got != "stop scrolling" {
		t.Fatalf("unexpected hook text: %q", got)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	doc := template.NewStore(t.TempDir()).Load(intent.Hook)
	assertFallbackShape(t, doc)
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ideasResponse.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := template.NewStore(dir).Load(intent.Ideas)
	assertFallbackShape(t, doc)
}

// The fallback must carry at least one personalization field and one
// non-empty primary-content entry so every renderer has something to show.
func assertFallbackShape(t *testing.T, doc template.Document) {
	t.Helper()
	if doc.Str("creator_personalization.content_style") == "" {
		t.Fatal("fallback missing personalization field")
	}
	hooks := doc.List("hook_options")
	if len(hooks) == 0 {
		t.Fatal("fallback missing primary content entries")
	}
	if doc.Str("hook_options.0.text") == "" {
		t.Fatal("fallback primary entry has empty text")
	}
}

func TestDocumentAccessorsTolerateMissingPaths(t *testing.T) {
	doc := template.Document{"a": map[string]any{"b": []any{"x", 2.0}}}

	if got := doc.Str("a.b.0"); got != "x" {
		t.Fatalf("Str list index = %q", got)
	}
	if n, ok := doc.Num("a.b.1"); !ok || n != 2 {
		t.Fatalf("Num = %v %v", n, ok)
	}
	if doc.Str("a.missing.deep") != "" {
		t.Fatal("missing path should yield empty string")
	}
	if doc.Has("a.b.5") {
		t.Fatal("out-of-range index should not resolve")
	}
	if doc.Map("a.b") != nil {
		t.Fatal("list is not a map")
	}
}

func TestDocumentSet(t *testing.T) {
	doc := template.Document{}
	doc.Set("creator_personalization.handle_reference", "hi @glow")
	if got := doc.Str("creator_personalization.handle_reference"); got != "hi @glow" {
		t.Fatalf("Set/Str = %q", got)
	}
}
