package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// DimensionLabel turns "problem_solving" into "Problem solving".
func DimensionLabel(d domain.Dimension) string {
	s := strings.ReplaceAll(string(d), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatProfile lists every dimension in canonical order; unanswered ones
// show as a dim dash.
func FormatProfile(p *domain.PersonalityProfile) string {
	rows := make([][]string, 0, len(domain.AllDimensions))
	answered := 0
	for _, d := range domain.AllDimensions {
		v := p.Get(d)
		if v == "" {
			v = Dim("–")
		} else {
			answered++
		}
		rows = append(rows, []string{DimensionLabel(d), v})
	}

	var b strings.Builder
	b.WriteString(Header("Personality profile"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable([]string{"DIMENSION", "VALUE"}, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d dimensions answered", answered, len(domain.AllDimensions))))
	b.WriteString("\n")
	return b.String()
}

// FormatQuestions renders the catalog with lettered options.
func FormatQuestions(qs []domain.AssessmentQuestion) string {
	var b strings.Builder
	b.WriteString(Header("Assessment"))
	b.WriteString("\n")
	for _, q := range qs {
		fmt.Fprintf(&b, "\n%s %s\n", StyleBlue.Render(fmt.Sprintf("%2d.", q.QuestionID)), Bold(q.Text))
		for i, letter := range domain.OptionLetters {
			fmt.Fprintf(&b, "    %s %s\n", StyleYellow.Render(string(letter)+")"), q.Options[i].Label)
		}
	}
	return b.String()
}
