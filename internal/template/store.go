// Package template loads the static response documents that back each
// content intent. Templates are read-only content; a missing or corrupt
// file degrades to a fallback document instead of failing the request.
package template

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/influenxers/coachbot/internal/intent"
)

// files maps each content intent to its document under the content dir.
var files = map[intent.Tag]string{
	intent.Hook:    "hookResponse.json",
	intent.Script:  "scriptResponse.json",
	intent.Story:   "storyResponse.json",
	intent.Ideas:   "ideasResponse.json",
	intent.Fix:     "fixResponse.json",
	intent.Ready:   "readyResponse.json",
	intent.Analyze: "analysisResponse.json",
}

// Store resolves intent tags to parsed template documents.
type Store struct {
	dir string
}

// NewStore returns a Store reading documents from dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load returns the template for tag. It never fails: unknown tags, missing
// files and parse errors all degrade to the fallback document, and the
// condition is logged with its cause. Each call returns a fresh document
// the caller may mutate.
func (s *Store) Load(tag intent.Tag) Document {
	name, ok := files[tag]
	if !ok {
		log.Printf("[template] no response file mapped for intent %s, using fallback", tag)
		return Fallback()
	}

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[template] failed to read %s for intent %s: %v, using fallback", path, tag, err)
		return Fallback()
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("[template] failed to parse %s for intent %s: %v, using fallback", path, tag, err)
		return Fallback()
	}
	return doc
}

// Fallback is the minimum shape every renderer tolerates: a
// personalization block plus one placeholder primary-content entry.
func Fallback() Document {
	return Document{
		"creator_personalization": map[string]any{
			"content_style":    "Your authentic voice is your strongest asset",
			"audience_insight": "Your audience appreciates your honesty and expertise",
		},
		"hook_options": []any{
			map[string]any{
				"text":                 "Default hook text - response file unavailable",
				"style":                "Default style",
				"predicted_engagement": "Average",
				"strength":             "This is a fallback response as the response file could not be loaded",
			},
		},
		"success_factors": []any{
			"This is a fallback response",
		},
		"content_guidance": map[string]any{
			"key_talking_points": []any{
				"Point 1",
				"Point 2",
				"Point 3",
			},
		},
	}
}
