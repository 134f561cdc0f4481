package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/influenxers/coachbot/internal/intent"
	"github.com/influenxers/coachbot/internal/model/card"
	"github.com/influenxers/coachbot/internal/model/profile"
	"github.com/influenxers/coachbot/internal/template"
)

// ImageSlot marks one card section as eligible for a generated image,
// together with the prompt material derived from its content.
type ImageSlot struct {
	SectionIndex int
	Text         string
	Cue          string
	Style        string
	Description  string
}

// Card renders the content card for tag. It panics when the document
// violates the layout's required shape; callers recover that into an
// apology reply. The returned slots are ordered by priority for the image
// augmenter.
func Card(tag intent.Tag, doc template.Document, prof profile.Profile, product string) (card.Card, []ImageSlot) {
	layout, ok := LayoutFor(tag)
	if !ok {
		panic(fmt.Sprintf("no layout for intent %s", tag))
	}

	colors := colorThemes[tag]
	c := card.Card{
		Fallback: fmt.Sprintf("%s %s for %s", intentEmoji[tag], capitalize(string(tag)), product),
	}
	c.Sections = append(c.Sections, headerSection(layout, doc, prof, product, colors))

	// Guarded layouts degrade to an explicit error card instead of a
	// partial render with an empty featured block.
	if layout.GuardPath != "" && len(doc.List(layout.GuardPath)) == 0 {
		c.Sections = append(c.Sections, card.Section{
			Color: colorRed,
			Title: layout.GuardTitle,
			Body:  layout.GuardBody,
		})
		return c, nil
	}

	for _, b := range layout.Blocks {
		c.Sections = append(c.Sections, renderBlock(b, doc, colors)...)
	}

	c.Rows = []card.ActionRow{layout.Actions, feedbackRow}
	return c, imageSlots(layout, doc, len(c.Sections))
}

func headerSection(l Layout, doc template.Document, prof profile.Profile, product string, colors []string) card.Section {
	s := card.Section{
		Color:  colors[0],
		Title:  fmt.Sprintf("%s %s for %s", intentEmoji[l.Intent], capitalize(string(l.Intent)), product),
		Body:   fmt.Sprintf("Hi %s, I've created this personalized %s to help your content stand out.", prof.Handle(), l.Intent),
		Footer: footerText + " • " + time.Now().UTC().Format("Jan 2, 2006"),
	}
	for _, hf := range l.Header {
		if hf.PerfDelta {
			if v := perfDelta(doc); v != "" {
				s.Fields = append(s.Fields, card.Field{Name: hf.Name, Value: v})
			}
			continue
		}
		if v := doc.Str(hf.Path); v != "" {
			s.Fields = append(s.Fields, card.Field{Name: hf.Name, Value: v})
		}
	}
	return s
}

// perfDelta builds the current-vs-potential comparison used by the fix
// header from the template metadata.
func perfDelta(doc template.Document) string {
	current := doc.Map("metadata.original_video_metrics")
	potential := doc.Map("metadata.potential_performance")
	if current == nil || potential == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Current vs Potential Performance:**\n")
	pairs := []struct{ key, label string }{
		{"estimated_watch_time", "Watch Time"},
		{"estimated_engagement_rate", "Engagement Rate"},
		{"conversion_rate", "Conversion"},
	}
	for _, pair := range pairs {
		from := valueString(current, pair.key)
		to := valueString(potential, pair.key)
		if from != "" && to != "" {
			fmt.Fprintf(&b, "%s: %s → %s\n", pair.label, from, to)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBlock(b Block, doc template.Document, colors []string) []card.Section {
	switch b.Kind {
	case BlockText:
		return renderText(b, doc, colors)
	case BlockItems:
		return renderItems(b, doc, colors)
	case BlockBullets:
		return renderBullets(b, doc, colors)
	case BlockKeyValues:
		return renderKeyValues(b, doc, colors)
	case BlockScenes:
		return renderScenes(b, doc, colors)
	case BlockAlternatives:
		return renderAlternatives(b, doc)
	case BlockGuidance:
		return renderGuidance(b, doc)
	case BlockScore:
		return renderScore(b, doc, colors)
	case BlockNextSteps:
		return renderNextSteps(b, doc)
	}
	return nil
}

func blockColor(b Block, colors []string) string {
	if b.Color != "" {
		return b.Color
	}
	return colors[b.ColorIndex%len(colors)]
}

func scopeAt(doc template.Document, path string) template.Document {
	if path == "" {
		return doc
	}
	return doc.Map(path)
}

func renderText(b Block, doc template.Document, colors []string) []card.Section {
	scope := scopeAt(doc, b.Path)
	if scope == nil {
		if b.Required {
			panic(fmt.Sprintf("template missing required block %q", b.Path))
		}
		return nil
	}

	title := b.Title
	if b.TitleKey != "" {
		title = fmt.Sprintf(b.Title, scope.Str(b.TitleKey))
	}

	body := renderLines(scope, b.Lines, b.Sep)
	if body == "" {
		if b.Required {
			panic(fmt.Sprintf("template block %q rendered empty", b.Path))
		}
		return nil
	}

	s := card.Section{
		Color:  blockColor(b, colors),
		Title:  title,
		Body:   body,
		Fields: renderFields(scope, b.Fields, doc, 0, ""),
	}
	return []card.Section{s}
}

func renderItems(b Block, doc template.Document, colors []string) []card.Section {
	list := doc.List(b.Path)
	if len(list) == 0 {
		if b.Required {
			panic(fmt.Sprintf("template missing required list %q", b.Path))
		}
		return nil
	}

	spec := b.Item
	max := len(list)
	if spec.Max > 0 && spec.Max < max {
		max = spec.Max
	}

	sections := make([]card.Section, 0, max)
	for i := 0; i < max; i++ {
		item, ok := list[i].(map[string]any)
		if !ok {
			continue
		}
		itemDoc := template.Document(item)

		sections = append(sections, card.Section{
			Color:  colors[(i+spec.ColorOffset)%len(colors)],
			Title:  itemTitle(spec, itemDoc, i),
			Body:   renderLines(itemDoc, spec.Lines, spec.Sep),
			Fields: renderFields(itemDoc, spec.Fields, doc, i, spec.VisualPathFormat),
		})
	}
	return sections
}

func itemTitle(spec ItemSpec, item template.Document, idx int) string {
	if spec.TitleFormat != "" {
		return fmt.Sprintf(spec.TitleFormat, idx+1)
	}

	raw := valueString(item, spec.TitleKey)
	if spec.TitleKeyFormat != "" {
		return fmt.Sprintf(spec.TitleKeyFormat, raw)
	}

	emoji := spec.EmojiByType[raw]
	if emoji == "" {
		emoji = spec.DefaultEmoji
	}
	display := raw
	if spec.SpaceUnderscores {
		display = strings.ReplaceAll(display, "_", " ")
	}
	return emoji + " " + capitalize(display)
}

func renderLines(scope template.Document, lines []LineSpec, sep string) string {
	if sep == "" {
		sep = "\n\n"
	}

	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Bullets {
			items := scope.Strings(line.Key)
			if len(items) == 0 {
				continue
			}
			parts = append(parts, fmt.Sprintf("**%s:**\n%s", line.Label, bulletList(items)))
			continue
		}

		value := valueString(scope, line.Key)
		if value == "" {
			value = line.Default
		}
		if value == "" {
			continue
		}
		value += line.Suffix
		if line.Quote {
			value = `"` + value + `"`
		}
		if line.Bold {
			value = "**" + value + "**"
		}

		switch {
		case line.Label == "":
			parts = append(parts, value)
		case line.OwnLine:
			parts = append(parts, fmt.Sprintf("**%s:**\n%s", line.Label, value))
		default:
			parts = append(parts, fmt.Sprintf("**%s:** %s", line.Label, value))
		}
	}
	return strings.Join(parts, sep)
}

// renderFields resolves the optional fields of a section; absent values
// are omitted, never rendered empty. visualPathFormat pulls the per-item
// visual direction stored beside the list in the document root.
func renderFields(scope template.Document, specs []FieldSpec, root template.Document, idx int, visualPathFormat string) []card.Field {
	var fields []card.Field
	for _, fs := range specs {
		if v := valueString(scope, fs.Key); v != "" {
			fields = append(fields, card.Field{Name: fs.Name, Value: v, Inline: fs.Inline})
		}
		if fs.Key == "predicted_engagement" && visualPathFormat != "" {
			if v := root.Str(fmt.Sprintf(visualPathFormat, idx+1)); v != "" {
				fields = append(fields, card.Field{Name: "🎬 Visual Direction", Value: v})
			}
		}
	}
	return fields
}

func renderBullets(b Block, doc template.Document, colors []string) []card.Section {
	items := doc.Strings(b.Path)
	if len(items) == 0 {
		return nil
	}
	return []card.Section{{
		Color: blockColor(b, colors),
		Title: b.Title,
		Body:  bulletList(items),
	}}
}

func renderKeyValues(b Block, doc template.Document, colors []string) []card.Section {
	m := doc.Map(b.Path)
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		label := capitalize(strings.ReplaceAll(k, "_", " "))
		lines = append(lines, fmt.Sprintf("• **%s:** %s", label, valueString(m, k)))
	}

	return []card.Section{{
		Color: blockColor(b, colors),
		Title: b.Title,
		Body:  strings.Join(lines, "\n"),
	}}
}

// renderScenes zips the featured idea's structure with its key visuals,
// capped at four scenes.
func renderScenes(b Block, doc template.Document, colors []string) []card.Section {
	idea := doc.Map(b.Path)
	if idea == nil {
		return nil
	}
	structure := idea.Strings("structure")
	if len(structure) == 0 {
		return nil
	}
	visuals := idea.Strings("key_visuals")

	max := len(structure)
	if max > 4 {
		max = 4
	}
	sections := make([]card.Section, 0, max)
	for i := 0; i < max; i++ {
		body := fmt.Sprintf("**Script:** %s\n", structure[i])
		if len(visuals) > 0 {
			body += fmt.Sprintf("**Visual:** %s\n", visuals[i%len(visuals)])
		}
		sections = append(sections, card.Section{
			Color: colors[i%len(colors)],
			Title: fmt.Sprintf("🎬 Scene %d", i+1),
			Body:  strings.TrimRight(body, "\n"),
		})
	}
	return sections
}

func renderAlternatives(b Block, doc template.Document) []card.Section {
	ideas := doc.List(b.Path)
	if len(ideas) <= 1 {
		return nil
	}

	end := len(ideas)
	if end > 4 {
		end = 4
	}
	var body strings.Builder
	for i, raw := range ideas[1:end] {
		idea, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		d := template.Document(idea)
		fmt.Fprintf(&body, "### Option %d: %s\n", i+1, d.Str("concept"))
		fmt.Fprintf(&body, "Hook: %q\n\n", d.Str("hook"))
		if v := d.Str("audience_alignment"); v != "" {
			fmt.Fprintf(&body, "**Audience Alignment:** %s\n\n", v)
		}
	}

	return []card.Section{{
		Color: b.Color,
		Title: b.Title,
		Body:  strings.TrimRight(body.String(), "\n"),
	}}
}

func renderGuidance(b Block, doc template.Document) []card.Section {
	g := doc.Map(b.Path)
	if g == nil {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "**Recommended Concept:** %s\n", g.Str("recommended_concept"))
	fmt.Fprintf(&body, "**Reasoning:** %s\n", g.Str("reasoning"))
	if tips := g.Strings("execution_tips"); len(tips) > 0 {
		body.WriteString("\n**Execution Tips:**\n")
		body.WriteString(bulletList(tips))
	}

	return []card.Section{{
		Color: b.Color,
		Title: b.Title,
		Body:  strings.TrimRight(body.String(), "\n"),
	}}
}

func renderScore(b Block, doc template.Document, colors []string) []card.Section {
	d := doc.Map(b.Path)
	if d == nil {
		return nil
	}

	score, _ := d.Num("your_score")
	var body strings.Builder
	fmt.Fprintf(&body, "**Your Score:** %s/10 (%s %s)\n", fmtNum(score), scoreEmoji(score), scoreWord(score))
	if avg, ok := d.Num("industry_avg"); ok {
		fmt.Fprintf(&body, "**Industry Average:** %s/10\n", fmtNum(avg))
	}
	if pct, ok := d.Num("percentile"); ok {
		fmt.Fprintf(&body, "**Percentile:** %s%%\n", fmtNum(pct))
	}
	if strengths := d.Strings("strengths"); len(strengths) > 0 {
		body.WriteString("\n**Strengths:**\n")
		body.WriteString(bulletList(strengths))
	}
	if opps := d.Strings("opportunities"); len(opps) > 0 {
		body.WriteString("\n\n**Opportunities:**\n")
		body.WriteString(bulletList(opps))
	}

	return []card.Section{{
		Color: blockColor(b, colors),
		Title: b.Title,
		Body:  body.String(),
	}}
}

// renderNextSteps turns the analysis focus area into concrete
// recommendations pulled from the matching benchmark block.
func renderNextSteps(b Block, doc template.Document) []card.Section {
	focus := doc.Str("performance_summary.focus_area")
	if focus == "" {
		return nil
	}

	var data template.Document
	lower := strings.ToLower(focus)
	switch {
	case strings.Contains(lower, "hook"):
		data = doc.Map("benchmark_data.hook")
	case strings.Contains(lower, "voice"):
		data = doc.Map("benchmark_data.voice_delivery")
	}

	body := fmt.Sprintf("Focus first on enhancing your **%s** with these specific recommendations:\n\n", focus)
	if opps := data.Strings("opportunities"); len(opps) > 0 {
		body += numberedList(opps)
	} else {
		body += "• Implement the opportunities noted in your focus area section."
	}

	return []card.Section{{
		Color: b.Color,
		Title: b.Title,
		Body:  body,
	}}
}

// imageSlots derives the augmenter's targets: the hero section plus the
// first and last structural entries when more than two exist.
func imageSlots(l Layout, doc template.Document, sectionCount int) []ImageSlot {
	if l.Images == nil {
		return nil
	}
	plan := l.Images

	var slots []ImageSlot
	if text := doc.Str(plan.HeroPath); text != "" && sectionCount > 1 {
		cue := plan.HeroCue
		if cue == "" {
			cue = doc.Str(plan.HeroCuePath)
		}
		slots = append(slots, ImageSlot{
			SectionIndex: 1,
			Text:         text,
			Cue:          cue,
			Style:        plan.HeroStyle,
			Description:  plan.HeroDescription,
		})
	}

	list := doc.List(plan.ListPath)
	var picks []int
	switch {
	case len(list) > 2:
		picks = []int{0, len(list) - 1}
	case plan.AllWhenFew:
		for i := range list {
			picks = append(picks, i)
		}
	case len(list) > 0:
		picks = []int{0}
	}

	cues := doc.Strings(plan.ZipCuePath)
	for _, idx := range picks {
		slot := ImageSlot{SectionIndex: 2 + idx, Style: plan.ListStyle}
		if plan.ListCueKey != "" {
			item, ok := list[idx].(map[string]any)
			if !ok {
				continue
			}
			d := template.Document(item)
			slot.Text = d.Str(plan.ListTextKey)
			slot.Cue = d.Str(plan.ListCueKey)
			slot.Description = fmt.Sprintf("Visual for %s segment", d.Str("type"))
		} else {
			s, ok := list[idx].(string)
			if !ok {
				continue
			}
			slot.Text = s
			if len(cues) > 0 {
				slot.Cue = cues[idx%len(cues)]
			}
			slot.Description = fmt.Sprintf("Visual for Scene %d", idx+1)
		}
		// Sections past the render cap cannot take an attachment.
		if slot.SectionIndex >= sectionCount {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
