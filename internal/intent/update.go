package intent

import (
	"regexp"
	"strings"

	"github.com/influenxers/coachbot/internal/model/profile"
)

var updateValuePattern = regexp.MustCompile(`(?i)update\s+(?:my)?\s*(?:tiktok|ig|instagram|product|brief)(?:\s+(?:to|with|as))?\s+(.+)`)

// fieldRule pairs a keyword with the profile field it selects. Checked in
// order; "product" and "brief" both land on the brief.
var fieldRules = []struct {
	keyword string
	field   profile.Field
}{
	{"tiktok", profile.FieldTikTok},
	{"instagram", profile.FieldInstagram},
	{"ig", profile.FieldInstagram},
	{"product", profile.FieldBrief},
	{"brief", profile.FieldBrief},
}

// ExtractUpdate resolves which profile field an update request targets and
// the value to assign. ok is false when no value can be extracted, in which
// case the caller must ask for clarification instead of writing anything.
func ExtractUpdate(text string) (field profile.Field, value string, ok bool) {
	normalized := strings.ToLower(text)

	found := false
	for _, r := range fieldRules {
		if strings.Contains(normalized, r.keyword) {
			field = r.field
			found = true
			break
		}
	}
	if !found {
		return "", "", false
	}

	m := updateValuePattern.FindStringSubmatch(text)
	if m == nil {
		return field, "", false
	}
	value = strings.TrimSpace(m[1])
	if value == "" {
		return field, "", false
	}
	return field, value, true
}
