package augment_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/influenxers/coachbot/internal/augment"
	"github.com/influenxers/coachbot/internal/imagegen"
	"github.com/influenxers/coachbot/internal/model/card"
	"github.com/influenxers/coachbot/internal/render"
)

type fakeProvider struct {
	calls int
	sizes []string
	err   error
}

func (f *fakeProvider) Generate(ctx context.Context, prompt, size string) ([]byte, error) {
	f.calls++
	f.sizes = append(f.sizes, size)
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png"), nil
}

func testCard(sections int) card.Card {
	c := card.Card{}
	for i := 0; i < sections; i++ {
		c.Sections = append(c.Sections, card.Section{Title: "s"})
	}
	return c
}

func slotsFor(n int) []render.ImageSlot {
	slots := make([]render.ImageSlot, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, render.ImageSlot{SectionIndex: i + 1, Text: "scene", Style: "tiktok"})
	}
	return slots
}

func newCache(t *testing.T) *imagegen.Cache {
	t.Helper()
	cache, err := imagegen.NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return cache
}

func TestApplyCapsAtThree(t *testing.T) {
	provider := &fakeProvider{}
	a := augment.New(provider, newCache(t), true)

	c := testCard(12)
	a.Apply(context.Background(), &c, slotsFor(10), "SkinGlow")

	if provider.calls != 3 {
		t.Fatalf("expected 3 generation calls, got %d", provider.calls)
	}
	attached := 0
	for _, s := range c.Sections {
		if s.Image != nil {
			attached++
		}
	}
	if attached != 3 {
		t.Errorf("expected 3 attached images, got %d", attached)
	}
	for _, size := range provider.sizes {
		if size != "vertical" {
			t.Errorf("tiktok-style slot should request a vertical image, got %q", size)
		}
	}
}

func TestApplyFailureLeavesCardUntouched(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	a := augment.New(provider, newCache(t), true)

	c := testCard(4)
	before := c.Sections
	a.Apply(context.Background(), &c, slotsFor(3), "SkinGlow")

	if !reflect.DeepEqual(c.Sections, before) {
		t.Error("failed generation must not modify the card")
	}
}

func TestApplyDisabled(t *testing.T) {
	provider := &fakeProvider{}
	a := augment.New(provider, newCache(t), false)

	c := testCard(4)
	a.Apply(context.Background(), &c, slotsFor(3), "SkinGlow")

	if provider.calls != 0 {
		t.Fatalf("disabled augmenter must not call the provider, got %d calls", provider.calls)
	}
}

func TestApplySkipsOutOfRangeSlots(t *testing.T) {
	provider := &fakeProvider{}
	a := augment.New(provider, newCache(t), true)

	c := testCard(2)
	a.Apply(context.Background(), &c, []render.ImageSlot{{SectionIndex: 5, Text: "scene"}}, "")

	if provider.calls != 0 {
		t.Fatalf("out-of-range slot should be skipped before generation, got %d calls", provider.calls)
	}
}

func TestPrompt(t *testing.T) {
	p := augment.Prompt(render.ImageSlot{Cue: "close-up of the bottle", Style: "cinematic"}, "SkinGlow serum")
	if !strings.Contains(p, "high-quality cinematic shot with professional lighting") {
		t.Errorf("prompt missing style: %q", p)
	}
	if !strings.Contains(p, "featuring SkinGlow serum") {
		t.Errorf("prompt missing product: %q", p)
	}
	if !strings.Contains(p, "Show a female creator in the scene") {
		t.Errorf("prompt missing creator clause: %q", p)
	}
	if !strings.Contains(p, "clean and minimal, styled like elegant line art") {
		t.Errorf("prompt missing closing framing: %q", p)
	}

	// The generic placeholder never leaks into prompts.
	p = augment.Prompt(render.ImageSlot{Text: "hook text"}, render.DefaultProduct)
	if strings.Contains(p, render.DefaultProduct) {
		t.Errorf("placeholder product leaked into prompt: %q", p)
	}
}

func TestPromptUnknownStyleDefaultsToCinematic(t *testing.T) {
	p := augment.Prompt(render.ImageSlot{Text: "scene", Style: "watercolor"}, "")
	if !strings.Contains(p, "high-quality cinematic shot with professional lighting") {
		t.Errorf("unknown style should fall back to cinematic: %q", p)
	}
}
