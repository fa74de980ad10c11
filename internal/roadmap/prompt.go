package roadmap

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// SystemPrompt frames the model for roadmap generation.
const SystemPrompt = "You are a pragmatic goal-planning coach. Follow the requested output format exactly."

// PromptInput is everything the roadmap prompt is built from.
type PromptInput struct {
	Title       string
	Category    string
	Description string
	Answers     domain.DimensionMap
	Profile     domain.DimensionMap
}

// BuildPrompt renders the roadmap request. Dimensions are written in
// canonical order so identical inputs always produce identical prompts.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder
	b.WriteString("The user has the following goal:\n")
	fmt.Fprintf(&b, "Title: %s\n", in.Title)
	fmt.Fprintf(&b, "Category: %s\n", in.Category)
	fmt.Fprintf(&b, "Description: %s\n\n", in.Description)

	b.WriteString("Their assessment answers by dimension are:\n")
	b.WriteString(renderDimensions(in.Answers, false))
	b.WriteString("\n\nTheir personality profile is:\n")
	b.WriteString(renderDimensions(in.Profile, true))
	b.WriteString("\n\n")

	b.WriteString("Please generate a 1-year roadmap for this user, broken into 5 milestones " +
		"(Start, 3 months, 6 months, 9 months, 12 months) and a detailed full plan. Format as:\n")
	b.WriteString("Milestones:\n")
	b.WriteString("- Start: ...\n")
	b.WriteString("- 3 months: ...\n")
	b.WriteString("- 6 months: ...\n")
	b.WriteString("- 9 months: ...\n")
	b.WriteString("- 12 months: ...\n\n")
	b.WriteString("Full Plan:\n...\n")
	return b.String()
}

// renderDimensions writes m as {key: value, ...}. With all set, every
// dimension is listed even when empty.
func renderDimensions(m domain.DimensionMap, all bool) string {
	parts := make([]string, 0, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		v, ok := m[d]
		if !all && (!ok || v == "") {
			continue
		}
		parts = append(parts, fmt.Sprintf("%q: %q", string(d), v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
