package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/gamification"
)

// FormatAchievements shows points and every badge, earned or not.
func FormatAchievements(s *domain.UserStats) string {
	var b strings.Builder
	b.WriteString(Header("Achievements"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s\n\n",
		Dim("Points:"), StyleYellow.Render(fmt.Sprint(s.Points)),
		Dim("Goals completed:"), StyleGreen.Render(fmt.Sprint(s.GoalsCompleted)))

	rows := make([][]string, 0, len(gamification.Badges))
	for _, rule := range gamification.Badges {
		status := Dim("locked")
		if s.HasBadge(rule.Code) {
			status = StyleGreen.Render("★ earned")
		}
		rows = append(rows, []string{rule.Title, rule.Description, status})
	}
	b.WriteString(RenderTable([]string{"BADGE", "HOW", "STATUS"}, rows))
	return b.String()
}

// FormatCompletion reports what completing a goal earned.
func FormatCompletion(title string, awarded bool, points int, badges []domain.Badge, total int) string {
	if !awarded {
		return Dim(fmt.Sprintf("%q was already completed; no points awarded.", title)) + "\n"
	}
	var b strings.Builder
	b.WriteString(Success(fmt.Sprintf("Completed %q: +%d points (total %d)", title, points, total)))
	b.WriteString("\n")
	for _, badge := range badges {
		rule, _ := gamification.Lookup(badge.Code)
		fmt.Fprintf(&b, "%s %s\n", StylePurple.Render("★ New badge:"), rule.Title)
	}
	return b.String()
}
