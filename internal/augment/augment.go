// Package augment attaches generated images to rendered cards. It is
// best-effort by contract: any generation failure leaves the card exactly
// as the renderer produced it.
package augment

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/influenxers/coachbot/internal/imagegen"
	"github.com/influenxers/coachbot/internal/model/card"
	"github.com/influenxers/coachbot/internal/render"
)

// MaxImages caps how many images one card may carry.
const MaxImages = 3

var styleDescriptions = map[string]string{
	"cinematic": "high-quality cinematic shot with professional lighting",
	"minimal":   "clean, minimalist composition with soft lighting",
	"vibrant":   "vibrant colors with dynamic composition",
	"tiktok":    "vertical format optimized for TikTok, trendy aesthetic",
	"instagram": "polished Instagram-ready composition with perfect lighting",
	"lineart":   "black-and-white minimalist line art illustration, clean professional sketch style",
}

// Augmenter generates and caches images for a card's slots.
type Augmenter struct {
	provider imagegen.Provider
	cache    *imagegen.Cache
	enabled  bool
}

// New returns an augmenter. With enabled false, or a nil provider or
// cache, Apply is a no-op.
func New(provider imagegen.Provider, cache *imagegen.Cache, enabled bool) *Augmenter {
	return &Augmenter{provider: provider, cache: cache, enabled: enabled}
}

// Apply generates up to MaxImages images for the given slots and attaches
// them to the matching card sections.
func (a *Augmenter) Apply(ctx context.Context, c *card.Card, slots []render.ImageSlot, product string) {
	if !a.enabled || a.provider == nil || a.cache == nil {
		return
	}

	attached := 0
	for _, slot := range slots {
		if attached >= MaxImages {
			return
		}
		if slot.SectionIndex < 0 || slot.SectionIndex >= len(c.Sections) {
			continue
		}

		data, err := a.provider.Generate(ctx, Prompt(slot, product), sizeHint(slot.Style))
		if err != nil {
			log.Printf("[augment] generation failed for section %d: %v", slot.SectionIndex, err)
			continue
		}
		name, path, err := a.cache.Save(data)
		if err != nil {
			log.Printf("[augment] cache write failed: %v", err)
			continue
		}

		c.Sections[slot.SectionIndex].Image = &card.ImageRef{
			Name:        name,
			Path:        path,
			Description: slot.Description,
		}
		attached++
	}
}

// sizeHint maps vertical-video styles to a portrait aspect hint.
func sizeHint(style string) string {
	if style == "tiktok" || style == "instagram" {
		return "vertical"
	}
	return "square"
}

// Prompt builds the generation prompt for one slot. The visual cue wins
// over the raw script text when present.
func Prompt(slot render.ImageSlot, product string) string {
	scene := slot.Cue
	if scene == "" {
		scene = slot.Text
	}
	scene = strings.TrimSpace(scene)

	if product != "" && product != render.DefaultProduct {
		scene += " featuring " + product
	}
	scene += ". Show a female creator in the scene"

	style := styleDescriptions[slot.Style]
	if style == "" {
		style = styleDescriptions["cinematic"]
	}
	return fmt.Sprintf(
		"Create a %s of: %s. The image should be clean and minimal, styled like elegant line art suitable for professional content marketing.",
		style, scene)
}
