package intent_test

import (
	"testing"

	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/model/profile"
)

func TestClassifyTable(t *testing.T) {
	cases := []struct {
		text string
		want intent.Tag
	}{
		{"give me a hook for my new SkinGlow serum", intent.Hook},
		{"write me a SCRIPT please", intent.Script},
		{"here is my product brief", intent.Script},
		{"tell a story about my brand", intent.Story},
		{"I need some video ideas", intent.Ideas},
		{"my last video was a flop", intent.Fix},
		{"can you fix this?", intent.Fix},
		{"give me a ready to shoot package", intent.Ready},
		{"analyze this video https://tiktok.com/v/1", intent.Analyze},
		{"please review my content", intent.Analyze},
		{"rate my delivery", intent.Analyze},
		{"update my tiktok to @newhandle", intent.Update},
		{"update my brief to glow serum for teens", intent.Update},
		{"what do you know about me", intent.Profile},
		{"show me my saved info", intent.Profile},
		{"hello there", intent.None},
		{"", intent.None},
	}

	for _, tc := range cases {
		if got := intent.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}

// Precedence is load-bearing: analyze outranks content keywords, update
// outranks everything.
func TestClassifyPrecedence(t *testing.T) {
	if got := intent.Classify("analyze my hook video"); got != intent.Analyze {
		t.Fatalf("expected analyze to win over hook, got %s", got)
	}
	if got := intent.Classify("update my brief with a better hook"); got != intent.Update {
		t.Fatalf("expected update to win over hook, got %s", got)
	}
	// The update rule requires a known field keyword, so this falls
	// through to the hook rule.
	if got := intent.Classify("update my hook"); got != intent.Hook {
		t.Fatalf("expected hook for field-less update, got %s", got)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	if got := intent.Classify("ANALYZE my numbers"); got != intent.Analyze {
		t.Fatalf("expected analyze, got %s", got)
	}
	if got := intent.Classify("Update My TikTok to @x"); got != intent.Update {
		t.Fatalf("expected update, got %s", got)
	}
}

func TestExtractUpdate(t *testing.T) {
	cases := []struct {
		text  string
		field profile.Field
		value string
		ok    bool
	}{
		{"update my tiktok to @newhandle", profile.FieldTikTok, "@newhandle", true},
		{"update my instagram with @glow.daily", profile.FieldInstagram, "@glow.daily", true},
		{"update my ig as @glow", profile.FieldInstagram, "@glow", true},
		{"update my brief to vitamin C serum for sensitive skin", profile.FieldBrief, "vitamin C serum for sensitive skin", true},
		{"update my product SkinGlow serum", profile.FieldBrief, "SkinGlow serum", true},
		{"update my tiktok", profile.FieldTikTok, "", false},
		{"update something", "", "", false},
	}

	for _, tc := range cases {
		field, value, ok := intent.ExtractUpdate(tc.text)
		if ok != tc.ok {
			t.Errorf("ExtractUpdate(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if field != tc.field || value != tc.value {
			t.Errorf("ExtractUpdate(%q) = (%s, %q), want (%s, %q)", tc.text, field, value, tc.field, tc.value)
		}
	}
}
