package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/influenxers/coachbot/internal/template"
)

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// valueString reads a document value as display text, tolerating numbers.
func valueString(doc template.Document, key string) string {
	if s := doc.Str(key); s != "" {
		return s
	}
	if n, ok := doc.Num(key); ok {
		return fmtNum(n)
	}
	return ""
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

func numberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	return strings.Join(lines, "\n")
}

func scoreEmoji(score float64) string {
	switch {
	case score >= 8:
		return "🔥"
	case score >= 6:
		return "👍"
	case score >= 4:
		return "😐"
	default:
		return "👎"
	}
}

func scoreWord(score float64) string {
	switch {
	case score >= 8.5:
		return "Excellent"
	case score >= 7.5:
		return "Very Good"
	case score >= 6.5:
		return "Good"
	case score >= 5.5:
		return "Average"
	case score >= 4.5:
		return "Fair"
	case score >= 3.5:
		return "Needs Work"
	default:
		return "Poor"
	}
}

// DefaultProduct is the placeholder used when no product name can be
// extracted from the brief.
const DefaultProduct = "your product"

var (
	productPattern = regexp.MustCompile(`(?i)product(?:\s+name)?[:\s]+([^\n.,]+)`)
	namePattern    = regexp.MustCompile(`(?i)name[:\s]+([^\n.,]+)`)
	forMyPattern   = regexp.MustCompile(`(?i)\bfor\s+my\s+(?:new\s+)?([^\n.,!?]+)`)
)

// ProductName extracts a product name from a free-text brief, falling back
// to the generic placeholder.
func ProductName(brief string) string {
	if brief == "" {
		return DefaultProduct
	}
	if m := productPattern.FindStringSubmatch(brief); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := namePattern.FindStringSubmatch(brief); m != nil {
		return strings.TrimSpace(m[1])
	}
	return DefaultProduct
}

// ProductFromMessage pulls a product mention like "for my new SkinGlow
// serum" out of the request itself, used when the saved brief yields
// nothing.
func ProductFromMessage(text string) (string, bool) {
	if m := forMyPattern.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name, true
		}
	}
	return "", false
}
