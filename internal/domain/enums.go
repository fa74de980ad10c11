package domain

// Dimension is one of the fifteen fixed personality-trait categories.
type Dimension string

const (
	DimProblemSolving        Dimension = "problem_solving"
	DimGoalEnergy            Dimension = "goal_energy"
	DimStrengths             Dimension = "strengths"
	DimChangeResponse        Dimension = "change_response"
	DimGoalMotivation        Dimension = "goal_motivation"
	DimDailyMotivation       Dimension = "daily_motivation"
	DimCoreBelief            Dimension = "core_belief"
	DimTimeStructure         Dimension = "time_structure"
	DimEnvironmentPreference Dimension = "environment_preference"
	DimProgressBlock         Dimension = "progress_block"
	DimObstacleType          Dimension = "obstacle_type"
	DimFutureFocus           Dimension = "future_focus"
	DimSuccessDefinition     Dimension = "success_definition"
	DimProjectStyle          Dimension = "project_style"
	DimSupportType           Dimension = "support_type"
)

// AllDimensions lists every dimension in canonical order. Prompts, tables and
// storage columns follow this order.
var AllDimensions = []Dimension{
	DimProblemSolving,
	DimGoalEnergy,
	DimStrengths,
	DimChangeResponse,
	DimGoalMotivation,
	DimDailyMotivation,
	DimCoreBelief,
	DimTimeStructure,
	DimEnvironmentPreference,
	DimProgressBlock,
	DimObstacleType,
	DimFutureFocus,
	DimSuccessDefinition,
	DimProjectStyle,
	DimSupportType,
}

var knownDimensions = func() map[Dimension]bool {
	m := make(map[Dimension]bool, len(AllDimensions))
	for _, d := range AllDimensions {
		m[d] = true
	}
	return m
}()

// IsKnown reports whether d is one of the fifteen recognised dimensions.
func (d Dimension) IsKnown() bool {
	return knownDimensions[d]
}

// OptionLetter identifies one of the four answer options of a question.
type OptionLetter string

const (
	OptionA OptionLetter = "a"
	OptionB OptionLetter = "b"
	OptionC OptionLetter = "c"
	OptionD OptionLetter = "d"
)

// OptionLetters is the fixed option sequence, indexed the same way as
// AssessmentQuestion.Options.
var OptionLetters = [4]OptionLetter{OptionA, OptionB, OptionC, OptionD}

// Index returns the option table slot for the letter, or -1 when the letter
// is not exactly one of a, b, c or d.
func (l OptionLetter) Index() int {
	switch l {
	case OptionA:
		return 0
	case OptionB:
		return 1
	case OptionC:
		return 2
	case OptionD:
		return 3
	default:
		return -1
	}
}

// Valid reports whether the letter addresses an option slot.
func (l OptionLetter) Valid() bool {
	return l.Index() >= 0
}
