// Package roadmap builds roadmap prompts and extracts milestone fields from
// model replies.
package roadmap

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

var (
	milestonesMarker = regexp.MustCompile(`(?i)milestones:`)
	fullPlanMarker   = regexp.MustCompile(`(?i)full plan:`)
)

type milestoneMarker struct {
	re  *regexp.Regexp
	set func(r *domain.Roadmap, v string)
}

// Fixed sequence; each field ends at the earliest later marker.
var milestoneMarkers = []milestoneMarker{
	{anchor("- Start:"), func(r *domain.Roadmap, v string) { r.MilestoneStart = v }},
	{anchor("- 3 months:"), func(r *domain.Roadmap, v string) { r.Milestone3Months = v }},
	{anchor("- 6 months:"), func(r *domain.Roadmap, v string) { r.Milestone6Months = v }},
	{anchor("- 9 months:"), func(r *domain.Roadmap, v string) { r.Milestone9Months = v }},
	{anchor("- 12 months:"), func(r *domain.Roadmap, v string) { r.Milestone12Months = v }},
}

func anchor(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label))
}

// Parse extracts the five milestones and the full plan from raw model text.
//
// The milestones span runs from the first "Milestones:" to the next
// "Full Plan:" after it; without a "Full Plan:" marker the span is empty and
// every milestone stays empty. The full plan is everything after the last
// "Full Plan:" marker. Markers match case-insensitively and every field is
// trimmed. Parse never panics; on internal failure it returns an empty
// Roadmap.
func Parse(raw string) (r domain.Roadmap) {
	defer func() {
		if p := recover(); p != nil {
			r = domain.Roadmap{}
		}
	}()

	r.FullPlan = fullPlan(raw)

	span := milestonesSpan(raw)
	if span == "" {
		return r
	}
	for i, m := range milestoneMarkers {
		loc := m.re.FindStringIndex(span)
		if loc == nil {
			continue
		}
		rest := span[loc[1]:]
		end := len(rest)
		for _, later := range milestoneMarkers[i+1:] {
			if l := later.re.FindStringIndex(rest); l != nil && l[0] < end {
				end = l[0]
			}
		}
		m.set(&r, strings.TrimSpace(rest[:end]))
	}
	return r
}

func milestonesSpan(raw string) string {
	start := milestonesMarker.FindStringIndex(raw)
	if start == nil {
		return ""
	}
	rest := raw[start[1]:]
	end := fullPlanMarker.FindStringIndex(rest)
	if end == nil {
		return ""
	}
	return rest[:end[0]]
}

func fullPlan(raw string) string {
	all := fullPlanMarker.FindAllStringIndex(raw, -1)
	if len(all) == 0 {
		return ""
	}
	last := all[len(all)-1]
	return strings.TrimSpace(raw[last[1]:])
}

// Missing lists the names of roadmap fields that came back empty.
func Missing(r domain.Roadmap) []string {
	var out []string
	for _, f := range r.Fields() {
		if f[1] == "" {
			out = append(out, f[0])
		}
	}
	return out
}
