// Package render turns a template document plus a creator profile into a
// transport-agnostic card. A single generic renderer walks per-intent
// layout descriptors; the descriptors are data, so section order, colors
// and field placement are auditable here rather than spread across seven
// hand-written builders.
package render

import (
	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/model/card"
)

// Apple-inspired color themes, one gradient per intent.
var colorThemes = map[intent.Tag][]string{
	intent.Hook:    {"#5AC8FA", "#147EFB", "#0A84FF"},
	intent.Script:  {"#FF2D55", "#FF375F", "#FF3B30"},
	intent.Story:   {"#5856D6", "#AF52DE", "#BF5AF2"},
	intent.Ideas:   {"#FFD60A", "#FFCC00", "#FF9500"},
	intent.Fix:     {"#32D74B", "#30D158", "#34C759"},
	intent.Ready:   {"#FF9F0A", "#FF9F0A", "#FF9500"},
	intent.Analyze: {"#64D2FF", "#5AC8FA", "#0A84FF"},
}

const (
	colorGreen     = "#32D74B"
	colorOrange    = "#FF9F0A"
	colorPurple    = "#5856D6"
	colorLightBlue = "#64D2FF"
	colorRed       = "#FF3B30"
	colorBlue      = "#5AC8FA"

	footerText = "Influenxers AI • Your Creator Success Coach"
	footerIcon = "https://cdn-icons-png.flaticon.com/512/6828/6828736.png"
)

var intentEmoji = map[intent.Tag]string{
	intent.Hook:    "🪝",
	intent.Script:  "📝",
	intent.Story:   "📖",
	intent.Ideas:   "💡",
	intent.Fix:     "🔧",
	intent.Ready:   "🎬",
	intent.Analyze: "📊",
}

// LineSpec describes one body line drawn from a document key.
type LineSpec struct {
	Key     string
	Label   string
	Quote   bool
	Bold    bool
	Bullets bool   // the key holds a list rendered as bullet lines
	OwnLine bool   // label on its own line above the value
	Suffix  string // appended to the value, e.g. "/10"
	Default string // substituted when the key is absent
}

// FieldSpec describes one optional section field drawn from a document key.
type FieldSpec struct {
	Key    string
	Name   string
	Inline bool
}

// HeaderField is a personalization entry appended to the header section
// when present in the document.
type HeaderField struct {
	Path      string
	Name      string
	PerfDelta bool // computed current-vs-potential comparison (fix)
}

// ItemSpec describes how one entry of a primary-content list becomes a
// section. Exactly one of TitleFormat and TitleKey is set.
type ItemSpec struct {
	TitleFormat      string            // printf with the 1-based index
	TitleKey         string            // item key whose value titles the item
	TitleKeyFormat   string            // printf applied to the TitleKey value
	EmojiByType      map[string]string // emoji looked up by TitleKey value
	DefaultEmoji     string
	SpaceUnderscores bool
	Lines            []LineSpec
	Sep              string // line separator, default "\n\n"
	Fields           []FieldSpec
	VisualPathFormat string // document path printf'd with the 1-based index
	Max              int    // 0 = unlimited
	ColorOffset      int
}

// BlockKind selects the renderer for one descriptor block.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockItems
	BlockBullets
	BlockKeyValues
	BlockScenes
	BlockAlternatives
	BlockGuidance
	BlockScore
	BlockNextSteps
)

// Block is one descriptor entry producing zero or more sections.
type Block struct {
	Kind       BlockKind
	Path       string
	Title      string
	TitleKey   string // dynamic title suffix for BlockText
	Color      string // "" = palette color at ColorIndex
	ColorIndex int
	Required   bool // missing data is a template-contract violation
	Lines      []LineSpec
	Sep        string // line separator, default "\n\n"
	Fields     []FieldSpec
	Item       ItemSpec
}

// ImagePlan selects the sections eligible for generated images and the
// prompt material for each.
type ImagePlan struct {
	HeroPath        string
	HeroCue         string
	HeroCuePath     string
	HeroStyle       string
	HeroDescription string
	ListPath        string
	ListCueKey      string // per-item cue key (map items)
	ListTextKey     string // per-item text key (map items)
	ZipCuePath      string // cue list zipped by index (string items)
	ListStyle       string
	AllWhenFew      bool // with ≤2 entries: true = all, false = first only
}

// Layout is the full card descriptor for one content intent.
type Layout struct {
	Intent     intent.Tag
	GuardPath  string // list that must be non-empty, else an error card
	GuardTitle string
	GuardBody  string
	Header     []HeaderField
	Blocks     []Block
	Actions    card.ActionRow
	Images     *ImagePlan
}

var segmentEmoji = map[string]string{
	"intro":    "👋",
	"problem":  "❓",
	"solution": "💡",
	"evidence": "✅",
	"cta":      "🔗",
}

var storySegmentEmoji = map[string]string{
	"problem_establishment": "😟",
	"struggle":              "😖",
	"discovery":             "💡",
	"transformation":        "✨",
	"sharing":               "🤝",
}

// feedbackRow is shared by every content card.
var feedbackRow = card.ActionRow{
	{ID: "feedback_love", Label: "❤️ Love it!", Style: card.StyleSecondary},
	{ID: "feedback_meh", Label: "😐 It's OK", Style: card.StyleSecondary},
	{ID: "feedback_help", Label: "🆘 Need Help", Style: card.StyleSecondary},
}

var layouts = map[intent.Tag]Layout{
	intent.Hook: {
		Intent: intent.Hook,
		Header: []HeaderField{
			{Path: "creator_personalization.content_style", Name: "✨ Your Creator Superpower"},
			{Path: "creator_personalization.audience_insight", Name: "👥 Your Audience Insight"},
		},
		Blocks: []Block{
			{Kind: BlockItems, Path: "hook_options", Required: true, Item: ItemSpec{
				TitleFormat: "Hook %d",
				Lines:       []LineSpec{{Key: "text", Quote: true}},
				Fields: []FieldSpec{
					{Key: "style", Name: "🎭 Style", Inline: true},
					{Key: "predicted_engagement", Name: "📈 Predicted Engagement", Inline: true},
				},
				VisualPathFormat: "visual_direction.hook_%d_visuals",
			}},
			{Kind: BlockBullets, Path: "success_factors", Title: "🏆 Why These Will Perform Well", Color: colorGreen},
			{Kind: BlockBullets, Path: "content_guidance.key_talking_points", Title: "🎯 Key Talking Points", Color: colorOrange},
		},
		Actions: card.ActionRow{
			{ID: "more_hooks", Label: "🔄 Generate More", Style: card.StylePrimary},
			{ID: "creator_focus", Label: "👤 More Creator Style", Style: card.StyleSecondary},
			{ID: "save_hook", Label: "💾 Save This Hook", Style: card.StyleSuccess},
		},
	},

	intent.Script: {
		Intent: intent.Script,
		Header: []HeaderField{
			{Path: "creator_personalization.content_style", Name: "✨ Your Content Style"},
		},
		Blocks: []Block{
			{Kind: BlockText, Path: "script_content", Title: "🪝 Opening Hook", Required: true,
				Lines: []LineSpec{{Key: "hook", Quote: true}}},
			{Kind: BlockItems, Path: "script_content.segments", Required: true, Item: ItemSpec{
				TitleKey:     "type",
				EmojiByType:  segmentEmoji,
				DefaultEmoji: "📝",
				Lines:        []LineSpec{{Key: "script", Quote: true}},
				Fields: []FieldSpec{
					{Key: "visual_direction", Name: "🎬 Visual", Inline: true},
					{Key: "on_screen_text", Name: "📝 On-Screen Text", Inline: true},
					{Key: "performance_note", Name: "📊 Performance Note"},
				},
			}},
			{Kind: BlockBullets, Path: "success_factors", Title: "🏆 Why This Will Perform Well", Color: colorGreen},
		},
		Actions: card.ActionRow{
			{ID: "refine_script", Label: "✏️ Refine Script", Style: card.StylePrimary},
			{ID: "add_visuals", Label: "🎨 Add Visual Notes", Style: card.StyleSecondary},
			{ID: "save_script", Label: "💾 Save This Script", Style: card.StyleSuccess},
		},
		Images: &ImagePlan{
			HeroPath:        "script_content.hook",
			HeroCue:         "Opening shot",
			HeroStyle:       "cinematic",
			HeroDescription: "Visual representation of your opening hook",
			ListPath:        "script_content.segments",
			ListCueKey:      "visual_direction",
			ListTextKey:     "script",
			ListStyle:       "tiktok",
			AllWhenFew:      true,
		},
	},

	intent.Story: {
		Intent: intent.Story,
		Header: []HeaderField{
			{Path: "creator_personalization.content_style", Name: "✨ Your Storytelling Strength"},
			{Path: "creator_personalization.audience_insight", Name: "👥 Audience Connection"},
			{Path: "story_content.narrative_theme", Name: "📖 Narrative Theme"},
		},
		Blocks: []Block{
			{Kind: BlockText, Path: "story_content", Title: "🪝 Story Hook", Required: true,
				Lines: []LineSpec{{Key: "hook", Quote: true}}},
			{Kind: BlockItems, Path: "story_content.segments", Required: true, Item: ItemSpec{
				TitleKey:         "type",
				EmojiByType:      storySegmentEmoji,
				DefaultEmoji:     "📝",
				SpaceUnderscores: true,
				Lines:            []LineSpec{{Key: "script", Quote: true}},
				Fields: []FieldSpec{
					{Key: "visual_direction", Name: "🎬 Visual", Inline: true},
					{Key: "emotional_tone", Name: "💓 Emotional Tone", Inline: true},
					{Key: "audience_connection", Name: "👥 Audience Connection"},
				},
			}},
			{Kind: BlockBullets, Path: "authenticity_boosters", Title: "✨ Authenticity Boosters", Color: colorGreen},
		},
		Actions: card.ActionRow{
			{ID: "more_emotional", Label: "❤️ More Emotional", Style: card.StylePrimary},
			{ID: "more_authentic", Label: "✅ More Authentic", Style: card.StyleSecondary},
			{ID: "save_story", Label: "💾 Save This Story", Style: card.StyleSuccess},
		},
	},

	intent.Ideas: {
		Intent:     intent.Ideas,
		GuardPath:  "video_ideas",
		GuardTitle: "❌ Error: No Video Ideas Found",
		GuardBody:  "No video ideas were found in the response data.",
		Header: []HeaderField{
			{Path: "creator_personalization.audience_insight", Name: "👥 Your Audience Insight"},
			{Path: "creator_personalization.content_style", Name: "✨ Your Content Strength"},
		},
		Blocks: []Block{
			{Kind: BlockText, Path: "video_ideas.0", Title: "💡 Featured Concept: %s", TitleKey: "concept", Required: true,
				Lines:  []LineSpec{{Key: "hook", Quote: true}},
				Fields: []FieldSpec{{Key: "audience_alignment", Name: "👥 Audience Alignment"}}},
			{Kind: BlockScenes, Path: "video_ideas.0"},
			{Kind: BlockKeyValues, Path: "video_ideas.0.performance_prediction", Title: "📊 Performance Prediction", Color: colorGreen},
			{Kind: BlockAlternatives, Path: "video_ideas", Title: "🔍 Alternative Concepts", Color: colorOrange},
			{Kind: BlockGuidance, Path: "implementation_guidance", Title: "📋 Implementation Guidance", Color: colorPurple},
		},
		Actions: card.ActionRow{
			{ID: "more_ideas", Label: "🔄 More Ideas", Style: card.StylePrimary},
			{ID: "trending_ideas", Label: "📈 Trending Ideas", Style: card.StyleSecondary},
			{ID: "save_idea", Label: "💾 Save This Idea", Style: card.StyleSuccess},
		},
		Images: &ImagePlan{
			HeroPath:        "video_ideas.0.hook",
			HeroCuePath:     "video_ideas.0.key_visuals.0",
			HeroStyle:       "tiktok",
			HeroDescription: "Visual representation of your featured concept",
			ListPath:        "video_ideas.0.structure",
			ZipCuePath:      "video_ideas.0.key_visuals",
			ListStyle:       "tiktok",
			AllWhenFew:      false,
		},
	},

	intent.Fix: {
		Intent: intent.Fix,
		Header: []HeaderField{
			{Path: "creator_personalization.content_style", Name: "✨ Your Content Strength"},
			{Path: "creator_personalization.success_pattern", Name: "📈 Your Success Pattern"},
			{Name: "📊 Performance Impact", PerfDelta: true},
		},
		Blocks: []Block{
			{Kind: BlockText, Path: "improvement_plan.hook_revision", Title: "🪝 Hook Improvement", Required: true,
				Lines: []LineSpec{
					{Key: "original", Label: "Original", OwnLine: true, Quote: true},
					{Key: "improved", Label: "Improved", OwnLine: true, Quote: true},
					{Key: "explanation", Label: "Explanation", OwnLine: true},
				},
				Fields: []FieldSpec{{Key: "impact_prediction", Name: "📈 Expected Impact"}}},
			{Kind: BlockItems, Path: "improvement_plan.structure_improvements", Required: true, Item: ItemSpec{
				TitleFormat: "🔧 Structure Fix %d",
				ColorOffset: 1,
				Lines: []LineSpec{
					{Key: "issue", Label: "Issue"},
					{Key: "fix", Label: "Fix"},
					{Key: "example", Label: "Example"},
				},
				Fields: []FieldSpec{
					{Key: "impact_prediction", Name: "📈 Expected Impact"},
					{Key: "visual_direction", Name: "🎬 Visual Direction"},
				},
			}},
			{Kind: BlockText, Path: "improvement_plan.cta_improvements", Title: "🔗 Call-to-Action Improvement", Required: true,
				Lines: []LineSpec{
					{Key: "original", Label: "Original", OwnLine: true, Quote: true},
					{Key: "improved", Label: "Improved", OwnLine: true, Quote: true},
					{Key: "explanation", Label: "Explanation", OwnLine: true, Default: "More engaging and action-oriented"},
				},
				Fields: []FieldSpec{{Key: "impact_prediction", Name: "📈 Expected Impact"}}},
			{Kind: BlockText, Title: "📝 Revised Script", Color: colorPurple, Required: true,
				Lines: []LineSpec{{Key: "revised_script"}}},
			{Kind: BlockText, Path: "success_metrics", Title: "📊 Success Metrics", Color: colorGreen,
				Lines: []LineSpec{
					{Key: "expected_improvement", Bold: true},
					{Key: "primary_indicator", Label: "Primary Impact"},
					{Key: "secondary_indicators", Label: "Secondary Indicators", Bullets: true, OwnLine: true},
				}},
		},
		Actions: card.ActionRow{
			{ID: "apply_fixes", Label: "🛠️ Apply All Fixes", Style: card.StylePrimary},
			{ID: "explain_more", Label: "❓ Explain More", Style: card.StyleSecondary},
			{ID: "save_fixes", Label: "💾 Save These Fixes", Style: card.StyleSuccess},
		},
	},

	intent.Ready: {
		Intent: intent.Ready,
		Header: []HeaderField{
			{Path: "creator_personalization.content_style", Name: "✨ Your Content Style"},
			{Path: "creator_personalization.audience_insight", Name: "👥 Audience Insight"},
			{Path: "production_package.concept_overview", Name: "💡 Concept Overview"},
		},
		Blocks: []Block{
			{Kind: BlockText, Path: "production_package.hook_options.0", Title: "🪝 Recommended Hook", Required: true,
				Lines: []LineSpec{{Key: "text", Quote: true}},
				Fields: []FieldSpec{
					{Key: "audience_alignment", Name: "👥 Audience Alignment"},
					{Key: "visual_direction", Name: "🎬 Visual Direction"},
				}},
			{Kind: BlockItems, Path: "production_package.shot_list", Required: true, Item: ItemSpec{
				TitleKey:       "shot_number",
				TitleKeyFormat: "🎬 Shot %s",
				Max:            5,
				Sep:            "\n",
				Lines: []LineSpec{
					{Key: "description", Label: "Description"},
					{Key: "duration", Label: "Duration"},
					{Key: "camera_angle", Label: "Camera"},
					{Key: "on_screen_text", Label: "Text"},
				},
				Fields: []FieldSpec{{Key: "performance_note", Name: "📊 Performance Note"}},
			}},
			{Kind: BlockText, Path: "production_package.script", Title: "📝 Complete Script", Color: colorPurple, Required: true,
				Lines: []LineSpec{
					{Key: "hook", Label: "Hook", Quote: true},
					{Key: "body", Label: "Body", Quote: true},
				}},
			{Kind: BlockKeyValues, Path: "production_package.technical_recommendations", Title: "🔧 Technical Tips", Color: colorLightBlue},
			{Kind: BlockBullets, Path: "success_factors", Title: "🏆 Why This Will Perform Well", Color: colorGreen},
		},
		Actions: card.ActionRow{
			{ID: "download_package", Label: "📥 Download Package", Style: card.StylePrimary},
			{ID: "refine_shots", Label: "🎯 Refine Shots", Style: card.StyleSecondary},
			{ID: "calendar_add", Label: "📅 Add to Calendar", Style: card.StyleSuccess},
		},
	},

	intent.Analyze: {
		Intent: intent.Analyze,
		Header: []HeaderField{
			{Path: "creator_personalization.content_style", Name: "✨ Your Content Style"},
			{Path: "creator_personalization.competitive_edge", Name: "🏆 Your Competitive Edge"},
		},
		Blocks: []Block{
			{Kind: BlockText, Path: "performance_summary", Title: "📊 Performance Overview", Required: true,
				Lines: []LineSpec{
					{Key: "overall_score", Label: "Overall Score", Suffix: "/10"},
					{Key: "potential_improvement", Label: "Potential Improvement"},
					{Key: "strongest_element", Label: "Strongest Element"},
					{Key: "focus_area", Label: "Focus Area"},
				},
				Sep: "\n"},
			{Kind: BlockScore, Path: "benchmark_data.voice_delivery", Title: "🎤 Voice & Delivery", ColorIndex: 1},
			{Kind: BlockScore, Path: "benchmark_data.hook", Title: "🪝 Hook", ColorIndex: 2},
			{Kind: BlockBullets, Path: "audience_specific_insights", Title: "👥 Your Audience Insights", Color: colorOrange},
			{Kind: BlockNextSteps, Title: "🚀 Next Steps", Color: colorGreen},
		},
		Actions: card.ActionRow{
			{ID: "deep_insights", Label: "🔍 Deeper Insights", Style: card.StylePrimary},
			{ID: "fix_issues", Label: "🔧 Fix Issues", Style: card.StyleSecondary},
			{ID: "save_analysis", Label: "💾 Save Analysis", Style: card.StyleSuccess},
		},
	},
}

// LayoutFor returns the descriptor for a content intent.
func LayoutFor(tag intent.Tag) (Layout, bool) {
	l, ok := layouts[tag]
	return l, ok
}
