// Package intent maps free-text creator messages onto the fixed set of
// actions the bot knows how to serve. Detection is deterministic keyword
// and pattern matching; rule order is part of the contract and is pinned
// by tests.
package intent

import (
	"regexp"
	"strings"
)

// Tag identifies the classified purpose of an inbound message.
type Tag string

const (
	Hook    Tag = "hook"
	Script  Tag = "script"
	Story   Tag = "story"
	Ideas   Tag = "ideas"
	Fix     Tag = "fix"
	Ready   Tag = "ready"
	Analyze Tag = "analyze"
	Profile Tag = "profile"
	Update  Tag = "update"
	None    Tag = "none"
)

// ContentTags lists the intents that render a content card from a template.
var ContentTags = []Tag{Hook, Script, Story, Ideas, Fix, Ready, Analyze}

var (
	updatePattern  = regexp.MustCompile(`update\s+(my)?\s*(tiktok|ig|instagram|product|brief)`)
	analyzePattern = regexp.MustCompile(`analyze|analysis|evaluate|review|score|rate`)
	profilePattern = regexp.MustCompile(`my info|profile|what do you know|my data|saved info`)
)

// rule is one ordered classification check. First match wins, so later
// rules may use loose substring checks without false-positive risk.
type rule struct {
	tag   Tag
	match func(text string) bool
}

func containsAny(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

// rules holds the precedence order. Update and analyze run before the
// single-keyword content checks: "analyze my hook video" is an analysis
// request, not a hook request.
var rules = []rule{
	{Update, updatePattern.MatchString},
	{Analyze, analyzePattern.MatchString},
	{Hook, containsAny("hook")},
	{Script, containsAny("script", "brief")},
	{Story, containsAny("story")},
	{Ideas, containsAny("idea")},
	{Fix, containsAny("fix", "flop")},
	{Ready, containsAny("ready")},
	{Profile, profilePattern.MatchString},
}

// Classify maps text to exactly one tag. It is total: unrecognized input
// yields None, never an error.
func Classify(text string) Tag {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return None
	}
	for _, r := range rules {
		if r.match(normalized) {
			return r.tag
		}
	}
	return None
}
