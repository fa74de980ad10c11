package domain

// Option is one answer choice: the label shown to the user and the value it
// contributes to the question's dimension.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AssessmentQuestion is an immutable catalog entry.
type AssessmentQuestion struct {
	QuestionID int
	Dimension  Dimension
	Text       string
	Options    [4]Option
}

// Value resolves the dimension value for the chosen letter. Letters outside
// a-d resolve to the empty string.
func (q *AssessmentQuestion) Value(letter OptionLetter) string {
	i := letter.Index()
	if i < 0 {
		return ""
	}
	return q.Options[i].Value
}

// Label returns the option label for the chosen letter, or "" when the letter
// is invalid.
func (q *AssessmentQuestion) Label(letter OptionLetter) string {
	i := letter.Index()
	if i < 0 {
		return ""
	}
	return q.Options[i].Label
}
