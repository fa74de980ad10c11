package assessment

import "github.com/alexanderramin/pathwise/internal/domain"

func q(id int, dim domain.Dimension, text string, opts ...string) domain.AssessmentQuestion {
	// opts alternates label, value for a..d.
	var o [4]domain.Option
	for i := range o {
		o[i] = domain.Option{Label: opts[i*2], Value: opts[i*2+1]}
	}
	return domain.AssessmentQuestion{QuestionID: id, Dimension: dim, Text: text, Options: o}
}

// DefaultCatalog returns the fifteen-question assessment, one question per
// dimension, ordered by question id.
func DefaultCatalog() []domain.AssessmentQuestion {
	return []domain.AssessmentQuestion{
		q(1, domain.DimProblemSolving, "How do you most naturally approach problems?",
			"I brainstorm creatively and look for novel ideas", "creative",
			"I gather all the data and analyze the patterns", "analytical",
			"I ask for advice or feedback from others", "collaborative",
			"I take immediate action and iterate as I go", "action-oriented"),
		q(2, domain.DimGoalEnergy, "When working toward a goal, what energizes you most?",
			"Collaborating with others", "social",
			"Seeing visible progress", "progress-focused",
			"Learning and mastering new skills", "growth-focused",
			"Picturing the long-term vision", "vision-focused"),
		q(3, domain.DimStrengths, "Which of the following best describes your natural strengths?",
			"Communication & empathy", "empathy",
			"Structure & discipline", "discipline",
			"Strategic thinking", "strategy",
			"Adaptability under pressure", "adaptability"),
		q(4, domain.DimChangeResponse, "How do you handle uncertainty or change?",
			"I get overwhelmed and prefer stability", "stability-seeking",
			"I research and plan a way forward", "planner",
			"I stay calm and adjust quickly", "resilient",
			"I see it as an opportunity to reinvent", "opportunistic"),
		q(5, domain.DimGoalMotivation, "Why do you want to achieve your goal?",
			"To prove something to myself or others", "prove_self",
			"To create a better life for people I care about", "others",
			"To live a life aligned with my values", "values",
			"To feel accomplished and successful", "accomplishment"),
		q(6, domain.DimDailyMotivation, "What motivates you more in your day-to-day efforts?",
			"Recognition and external reward", "external_reward",
			"Personal growth and self-improvement", "growth",
			"A sense of impact or contribution", "impact",
			"Competition and outperforming others", "competition"),
		q(7, domain.DimCoreBelief, "Which phrase best reflects your belief system?",
			`"Discipline beats motivation."`, "discipline",
			`"Stay curious and keep growing."`, "curiosity",
			`"Together, we go further."`, "community",
			`"Clarity of purpose unlocks everything."`, "purpose"),
		q(8, domain.DimTimeStructure, "How do you prefer to structure your time?",
			"I follow a clear daily or weekly schedule", "routine",
			"I work in bursts of energy and flow", "flow",
			"I need external accountability to stay focused", "accountability",
			"I like setting intentions but staying flexible", "flexibility"),
		q(9, domain.DimEnvironmentPreference, "What kind of environment brings out your best work?",
			"Quiet, focused spaces where I control the flow", "quiet_focus",
			"High-energy, collaborative atmospheres", "collaborative",
			"Flexible setups with room for creativity", "creative_flex",
			"Challenging environments that push me", "high_challenge"),
		q(10, domain.DimProgressBlock, "When you're struggling with progress, what's most helpful?",
			"A system or checklist to follow", "structure_needed",
			"Encouragement and positive feedback", "support",
			"Time alone to regroup and refocus", "solitude",
			"A bold challenge to re-spark momentum", "challenge"),
		q(11, domain.DimObstacleType, "What's the biggest challenge you've faced while chasing a goal?",
			"Staying consistent long term", "consistency",
			"Knowing where to start", "starting",
			"Believing in myself", "self_doubt",
			"Navigating distractions or doubt", "distractions"),
		q(12, domain.DimFutureFocus, "When you picture your future success, what do you focus on first?",
			"The lifestyle and freedom it brings", "freedom",
			"The milestones you'll reach", "milestones",
			"The recognition and respect earned", "recognition",
			"The way you'll feel fulfilled and proud", "fulfillment"),
		q(13, domain.DimSuccessDefinition, "How do you define success?",
			"Fulfillment in life and relationships", "relationships",
			"Mastery of your craft or mission", "mastery",
			"Financial freedom and time control", "freedom",
			"Making a meaningful impact", "impact"),
		q(14, domain.DimProjectStyle, "When you're assigned a large project or task, what do you do first?",
			"Break it down into smaller, manageable chunks", "break_down",
			"Create a timeline or plan", "timeline",
			"Seek advice or look for examples", "research",
			"Dive in and adjust along the way", "just_start"),
		q(15, domain.DimSupportType, "What kind of support helps you thrive most on your journey?",
			"A mentor or coach guiding me", "mentor",
			"A community of like-minded peers", "community",
			"Tools, templates, and structured plans", "tools",
			"Time and space to work solo and reflect", "independent"),
	}
}
