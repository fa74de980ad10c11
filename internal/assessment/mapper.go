// Package assessment turns multiple-choice answers into a personality
// dimension mapping.
package assessment

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// ErrUnknownQuestion is returned when a submission references a question id
// that is not in the catalog. The whole batch is rejected.
var ErrUnknownQuestion = errors.New("unknown assessment question")

// Submission is a raw (question id, letter) pair as received from a client.
type Submission struct {
	QuestionID int
	Letter     domain.OptionLetter
}

// ScoredAnswer pairs a catalog question with the chosen letter.
type ScoredAnswer struct {
	Question *domain.AssessmentQuestion
	Letter   domain.OptionLetter
}

// Catalog indexes questions by id.
type Catalog map[int]*domain.AssessmentQuestion

// NewCatalog builds a Catalog. Later duplicates of an id replace earlier ones.
func NewCatalog(questions []domain.AssessmentQuestion) Catalog {
	c := make(Catalog, len(questions))
	for i := range questions {
		q := questions[i]
		c[q.QuestionID] = &q
	}
	return c
}

// Ordered returns the catalog questions sorted by id.
func (c Catalog) Ordered() []domain.AssessmentQuestion {
	out := make([]domain.AssessmentQuestion, 0, len(c))
	for _, q := range c {
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out
}

// ResolveAnswers looks up every submission in the catalog, preserving input
// order. If any question id is unknown nothing is resolved and the error lists
// every offending id.
func ResolveAnswers(catalog Catalog, subs []Submission) ([]ScoredAnswer, error) {
	var missing []string
	out := make([]ScoredAnswer, 0, len(subs))
	for _, s := range subs {
		q, ok := catalog[s.QuestionID]
		if !ok {
			missing = append(missing, strconv.Itoa(s.QuestionID))
			continue
		}
		out = append(out, ScoredAnswer{Question: q, Letter: s.Letter})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, strings.Join(missing, ", "))
	}
	return out, nil
}

// MapAnswers builds the dimension mapping for a batch of answers.
//
// The result always holds all fifteen dimensions, initialised to "". Each
// answer writes question.Value(letter) to its question's dimension; when
// several answers target one dimension the last in input order wins, even if
// its letter resolves to "". Questions tagged with an unknown dimension are
// ignored.
func MapAnswers(answers []ScoredAnswer) domain.DimensionMap {
	result := domain.NewDimensionMap()
	for _, a := range answers {
		if a.Question == nil {
			continue
		}
		dim := a.Question.Dimension
		if !dim.IsKnown() {
			continue
		}
		result[dim] = a.Question.Value(a.Letter)
	}
	return result
}

// Summarize returns the populated dimensions of the answers, used to describe
// a user's raw assessment choices in a roadmap prompt.
func Summarize(answers []ScoredAnswer) domain.DimensionMap {
	return MapAnswers(answers).NonEmpty()
}
