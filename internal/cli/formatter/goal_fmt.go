package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// FormatGoalList renders the user's goals as a table.
func FormatGoalList(goals []*domain.Goal) string {
	if len(goals) == 0 {
		return Dim("No goals yet. Add one with: pathwise goal add \"Learn Go\"") + "\n"
	}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		roadmap := Dim("none")
		if g.RoadmapGeneratedAt != nil {
			roadmap = StyleBlue.Render("ready")
		}
		rows = append(rows, []string{
			TruncID(g.ID),
			Truncate(g.Title, 40),
			Category(g.Category),
			GoalStatusPill(g.IsCompleted),
			roadmap,
		})
	}
	return RenderTable([]string{"ID", "TITLE", "CATEGORY", "STATUS", "ROADMAP"}, rows)
}

var milestoneLabels = [5]string{"Start", "3 months", "6 months", "9 months", "12 months"}

// FormatRoadmap renders the milestones followed by the full plan.
func FormatRoadmap(r domain.Roadmap) string {
	if r.IsEmpty() {
		return Dim("No roadmap yet. Generate one with: pathwise roadmap GOAL_ID") + "\n"
	}
	values := [5]string{r.MilestoneStart, r.Milestone3Months, r.Milestone6Months, r.Milestone9Months, r.Milestone12Months}

	var b strings.Builder
	b.WriteString(Header("Milestones"))
	b.WriteString("\n")
	for i, label := range milestoneLabels {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render(fmt.Sprintf("%-10s", label)), values[i])
	}
	b.WriteString("\n")
	b.WriteString(Header("Full plan"))
	b.WriteString("\n")
	b.WriteString(r.FullPlan)
	b.WriteString("\n")
	return b.String()
}

// FormatGoalDetail renders one goal with its roadmap and steps.
func FormatGoalDetail(g *domain.Goal, steps []*domain.RoadmapStep) string {
	var body strings.Builder
	fmt.Fprintf(&body, "%s  %s\n", Bold(g.Title), GoalStatusPill(g.IsCompleted))
	fmt.Fprintf(&body, "%s %s   %s %s\n", Dim("Category:"), Category(g.Category), Dim("Created:"), HumanDate(g.CreatedAt))
	if g.Description != "" {
		fmt.Fprintf(&body, "\n%s\n", g.Description)
	}

	var b strings.Builder
	b.WriteString(RenderBox("Goal "+shortID(g.ID), strings.TrimRight(body.String(), "\n")))
	b.WriteString("\n\n")
	b.WriteString(FormatRoadmap(g.Roadmap))

	if len(steps) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Steps"))
		b.WriteString("\n")
		for _, s := range steps {
			mark := StyleBlue.Render("○")
			if s.Completed {
				mark = StyleGreen.Render("✔")
			}
			line := fmt.Sprintf("%s %s", mark, s.Text)
			if s.DueDate != nil {
				line += Dim(" (due " + s.DueDate.Format("2006-01-02") + ")")
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
