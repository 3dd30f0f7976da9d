package generation

import (
	"fmt"
	"strings"

	"github.com/dferenc/hireflow/internal/domain"
)

// fallbackInterviewGuide composes a structured interview guide from the
// context slots. Question focus shifts with seniority and the cultural-fit
// section shifts with company stage.
func fallbackInterviewGuide(hc domain.HiringContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Interview Guide: %s\n\n", roleTitle(hc))

	b.WriteString("## Structure\n")
	b.WriteString("- Opening and role overview (5-10 min)\n")
	b.WriteString("- Background and experience (15-20 min)\n")
	fmt.Fprintf(&b, "- %s (20-25 min)\n", focusSectionLabel(hc.RoleType()))
	b.WriteString("- Role-specific scenarios (15-20 min)\n")
	b.WriteString("- Cultural fit and ways of working (10-15 min)\n")
	b.WriteString("- Candidate questions and close (5-10 min)\n")

	b.WriteString("\n## Key Questions\n")
	for _, q := range interviewQuestions(hc) {
		fmt.Fprintf(&b, "- %s\n", q)
	}

	b.WriteString("\n## Evaluation\n")
	b.WriteString("Score each area 1-4: Excellent (4), Good (3), Adequate (2), Poor (1).\n")
	b.WriteString("- Core competence for the role\n")
	b.WriteString("- Depth and complexity of past work\n")
	b.WriteString("- Communication and collaboration\n")
	fmt.Fprintf(&b, "- %s\n", stageFitCriterion(hc.CompanyStage()))

	b.WriteString("\n## Red Flags\n")
	b.WriteString("- Cannot walk through a concrete example of claimed experience\n")
	b.WriteString("- Takes sole credit for team outcomes\n")
	b.WriteString("- No questions about the company or the role\n")

	return b.String()
}

// interviewQuestions selects behavioral and situational questions matched to
// the seniority of the hire.
func interviewQuestions(hc domain.HiringContext) []string {
	questions := []string{
		"Walk me through the project you are proudest of. What was your specific contribution?",
		"Tell me about a time something you owned went wrong. What did you do?",
	}

	seniority := domain.SeniorityMid
	if s := hc.Slot(domain.SlotSeniority); s.State == domain.SlotKnown {
		seniority = domain.Seniority(s.Value)
	}

	switch seniority {
	case domain.SeniorityJunior:
		questions = append(questions,
			"Describe something new you learned recently. How did you approach it?",
			"When you get stuck, what do you do before asking for help?",
		)
	case domain.SenioritySenior, domain.SeniorityLead:
		questions = append(questions,
			"Tell me about a technical or strategic decision you drove against disagreement.",
			"How have you grown the people around you? Give a concrete example.",
		)
	case domain.SeniorityExecutive:
		questions = append(questions,
			"How would you assess this function in your first 90 days?",
			"Describe a bet you made that shaped the direction of a company.",
		)
	default:
		questions = append(questions,
			"Describe a tradeoff you made under time pressure and how it played out.",
		)
	}

	if stack := hc.Slot(domain.SlotTechStack); stack.State == domain.SlotKnown {
		questions = append(questions,
			fmt.Sprintf("Describe the most complex system you built with %s.", stack.Value))
	}

	return questions
}

func focusSectionLabel(role domain.RoleType) string {
	switch role {
	case domain.RoleEngineering:
		return "Technical deep dive"
	case domain.RoleDesign:
		return "Portfolio review"
	case domain.RoleExecutive:
		return "Strategy and leadership deep dive"
	default:
		return "Functional deep dive"
	}
}

func stageFitCriterion(stage domain.CompanyStage) string {
	switch stage {
	case domain.StageSeed:
		return "Adaptability and comfort with ambiguity"
	case domain.StageSeriesA:
		return "Experience scaling past the first version"
	case domain.StageGrowth, domain.StageEnterprise:
		return "Working effectively within established process"
	default:
		return "Fit with the company's ways of working"
	}
}
