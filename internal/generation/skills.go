package generation

import (
	"fmt"
	"strings"

	"github.com/dferenc/hireflow/internal/domain"
)

// requiredSkills derives the skill requirements for a hire from the context
// slots. The list feeds both the model briefing and the template job
// description, so the two renditions agree on what the role demands.
func requiredSkills(hc domain.HiringContext) []string {
	var skills []string

	if stack := hc.Slot(domain.SlotTechStack); stack.State == domain.SlotKnown {
		for _, tech := range splitTechStack(stack.Value) {
			skills = append(skills, "Experience with "+tech)
		}
	}

	skills = append(skills, roleCoreSkills(hc.RoleType())...)

	if s := hc.Slot(domain.SlotSeniority); s.State == domain.SlotKnown {
		switch domain.Seniority(s.Value) {
		case domain.SenioritySenior:
			skills = append(skills, "Track record of mentoring and raising the bar for peers")
		case domain.SeniorityLead:
			skills = append(skills, "Experience leading a team and owning delivery")
		case domain.SeniorityExecutive:
			skills = append(skills, "Experience building and running a function at scale")
		}
	}

	if scope := hc.Slot(domain.SlotLeadershipScope); scope.State == domain.SlotKnown {
		skills = append(skills, fmt.Sprintf("People leadership: %s", scope.Value))
	}

	switch hc.CompanyStage() {
	case domain.StageSeed:
		skills = append(skills, "Comfort with ambiguity and wearing multiple hats")
	case domain.StageSeriesA:
		skills = append(skills, "Experience scaling systems and processes past the first version")
	case domain.StageGrowth, domain.StageEnterprise:
		skills = append(skills, "Experience working within established processes across teams")
	}

	skills = append(skills, "Strong communication and ownership")
	return skills
}

// splitTechStack breaks a free-form stack answer ("Go, Postgres and React")
// into individual technologies. Unsplittable input passes through whole.
func splitTechStack(value string) []string {
	normalized := strings.NewReplacer(" and ", ",", "/", ",", ";", ",").Replace(value)
	var techs []string
	for _, part := range strings.Split(normalized, ",") {
		if p := strings.TrimSpace(part); p != "" {
			techs = append(techs, p)
		}
	}
	return techs
}

func roleCoreSkills(role domain.RoleType) []string {
	switch role {
	case domain.RoleEngineering:
		return []string{
			"Shipping production software end to end",
			"Debugging and operating the systems you build",
		}
	case domain.RoleMarketing:
		return []string{
			"Running measurable growth campaigns",
			"Positioning and messaging for a technical product",
		}
	case domain.RoleSales:
		return []string{
			"Owning a quota and a full sales cycle",
			"Building pipeline from cold outreach",
		}
	case domain.RoleExecutive:
		return []string{
			"Setting strategy and owning outcomes for a function",
			"Hiring and developing senior talent",
		}
	case domain.RoleOperations:
		return []string{
			"Designing and running cross-functional processes",
			"Vendor and tooling management",
		}
	case domain.RoleDesign:
		return []string{
			"Taking designs from research through polished UI",
			"Working in and evolving a design system",
		}
	default:
		return []string{"Taking ownership of an ambiguous problem space"}
	}
}
