package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/dferenc/hireflow/internal/domain"
)

// FallbackGenerator composes artifacts from templates filled with the known
// context slots. It never calls out and never fails, so it serves both as
// the primary generator when no model is configured and as the fallback when
// the model is unreachable or the retry budget is spent. It does not mark
// its output degraded; the state machine flags artifacts as degraded only
// when templates stand in for a model that was supposed to answer.
type FallbackGenerator struct{}

func NewFallbackGenerator() *FallbackGenerator {
	return &FallbackGenerator{}
}

func (g *FallbackGenerator) Generate(_ context.Context, hc domain.HiringContext) (*domain.Artifacts, error) {
	weeks := timelineWeeks(hc)
	return &domain.Artifacts{
		JobDescription: fallbackJobDescription(hc),
		Checklist:      fallbackChecklist(hc),
		Timeline:       fallbackTimeline(hc, weeks),
		InterviewGuide: fallbackInterviewGuide(hc),
	}, nil
}

// roleTitle derives a display title from the seniority and role slots,
// falling back to a generic title when the role is unresolved.
func roleTitle(hc domain.HiringContext) string {
	role := hc.RoleType()
	seniority := hc.Slot(domain.SlotSeniority)

	var base string
	switch role {
	case domain.RoleEngineering:
		base = "Engineer"
	case domain.RoleMarketing:
		base = "Marketing Hire"
	case domain.RoleSales:
		base = "Sales Hire"
	case domain.RoleExecutive:
		base = "Executive Leader"
	case domain.RoleOperations:
		base = "Operations Hire"
	case domain.RoleDesign:
		base = "Designer"
	default:
		base = "New Team Member"
	}

	if seniority.State == domain.SlotKnown && role != domain.RoleExecutive {
		switch domain.Seniority(seniority.Value) {
		case domain.SeniorityJunior:
			return "Junior " + base
		case domain.SenioritySenior:
			return "Senior " + base
		case domain.SeniorityLead:
			return "Lead " + base
		}
	}
	return base
}

func fallbackJobDescription(hc domain.HiringContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", roleTitle(hc))
	b.WriteString("## About the Role\n")

	stage := hc.Slot(domain.SlotCompanyStage)
	if stage.State == domain.SlotKnown {
		fmt.Fprintf(&b, "We are a %s company looking for our next hire.\n\n", stageLabel(domain.CompanyStage(stage.Value)))
	} else {
		b.WriteString("We are looking for our next hire.\n\n")
	}

	b.WriteString("## Responsibilities\n")
	for _, r := range roleResponsibilities(hc.RoleType()) {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	b.WriteString("\n## Requirements\n")
	for _, skill := range requiredSkills(hc) {
		fmt.Fprintf(&b, "- %s\n", skill)
	}

	if budget := hc.Slot(domain.SlotBudget); budget.State == domain.SlotKnown {
		fmt.Fprintf(&b, "\n## Compensation\n%s\n", budget.Value)
	}

	return b.String()
}

func roleResponsibilities(role domain.RoleType) []string {
	switch role {
	case domain.RoleEngineering:
		return []string{
			"Design, build, and ship product features end to end",
			"Review code and raise the engineering bar",
			"Own reliability of the systems you build",
		}
	case domain.RoleMarketing:
		return []string{
			"Own growth channels and campaign execution",
			"Measure and report on channel performance",
			"Shape positioning and messaging",
		}
	case domain.RoleSales:
		return []string{
			"Own the full sales cycle from prospect to close",
			"Build and maintain a healthy pipeline",
			"Feed customer insight back into the product",
		}
	case domain.RoleExecutive:
		return []string{
			"Set direction and own outcomes for your function",
			"Build and develop the team",
			"Partner with the founders on company strategy",
		}
	case domain.RoleOperations:
		return []string{
			"Build and run the processes that keep the company moving",
			"Identify and remove operational bottlenecks",
			"Own tooling and vendor relationships",
		}
	case domain.RoleDesign:
		return []string{
			"Own the design process from research to polished UI",
			"Partner with engineering on implementation",
			"Maintain and evolve the design system",
		}
	default:
		return []string{
			"Take ownership of your area end to end",
			"Collaborate closely with the founding team",
			"Help define the role as the company grows",
		}
	}
}

func stageLabel(s domain.CompanyStage) string {
	switch s {
	case domain.StageSeed:
		return "seed-stage"
	case domain.StageSeriesA:
		return "Series A"
	case domain.StageGrowth:
		return "growth-stage"
	case domain.StageEnterprise:
		return "enterprise"
	default:
		return "growing"
	}
}

func fallbackChecklist(hc domain.HiringContext) string {
	var b strings.Builder
	b.WriteString("# Hiring Checklist\n\n")
	b.WriteString("- [ ] Finalize job description and post to channels\n")
	b.WriteString("- [ ] Define interview loop and assign interviewers\n")
	b.WriteString("- [ ] Source candidates and review inbound applications\n")
	b.WriteString("- [ ] Run screening calls\n")
	b.WriteString("- [ ] Run interview loop\n")

	if hc.RoleType() == domain.RoleExecutive {
		b.WriteString("- [ ] Schedule founder and board conversations\n")
		b.WriteString("- [ ] Run references with former reports and peers\n")
	} else {
		b.WriteString("- [ ] Check references\n")
	}

	b.WriteString("- [ ] Prepare and extend offer\n")
	b.WriteString("- [ ] Plan onboarding for the first 30 days\n")
	return b.String()
}

// timelineWeeks estimates total weeks-to-hire. Senior roles take longer to
// source and close, later-stage companies run longer loops, and urgency
// compresses or stretches the whole plan. The floor is two weeks.
func timelineWeeks(hc domain.HiringContext) int {
	weeks := 6
	if s := hc.Slot(domain.SlotSeniority); s.State == domain.SlotKnown {
		switch domain.Seniority(s.Value) {
		case domain.SeniorityJunior:
			weeks = 4
		case domain.SeniorityMid:
			weeks = 6
		case domain.SenioritySenior:
			weeks = 8
		case domain.SeniorityLead:
			weeks = 10
		case domain.SeniorityExecutive:
			weeks = 14
		}
	}

	switch hc.CompanyStage() {
	case domain.StageSeed:
		weeks--
	case domain.StageGrowth, domain.StageEnterprise:
		weeks += 2
	}

	switch hc.Urgency() {
	case domain.UrgencyHigh:
		weeks = weeks * 3 / 4
	case domain.UrgencyLow:
		weeks = weeks * 5 / 4
	}

	if weeks < 2 {
		weeks = 2
	}
	return weeks
}

func fallbackTimeline(hc domain.HiringContext, total int) string {
	// Rough split: 40% sourcing, 40% interviewing, the rest closing.
	sourcing := total * 2 / 5
	if sourcing < 1 {
		sourcing = 1
	}
	interviews := total * 2 / 5
	if interviews < 1 {
		interviews = 1
	}
	closing := total - sourcing - interviews
	if closing < 1 {
		closing = 1
	}

	var b strings.Builder
	b.WriteString("# Hiring Timeline\n\n")
	fmt.Fprintf(&b, "Estimated time to hire: %d weeks\n\n", total)
	fmt.Fprintf(&b, "- Weeks 1-%d: sourcing and screening\n", sourcing)
	fmt.Fprintf(&b, "- Weeks %d-%d: interview loop\n", sourcing+1, sourcing+interviews)
	fmt.Fprintf(&b, "- Weeks %d-%d: offer, references, and close\n", sourcing+interviews+1, sourcing+interviews+closing)

	if t := hc.Slot(domain.SlotTimelineNeed); t.State == domain.SlotKnown {
		fmt.Fprintf(&b, "\nStated need: %s\n", t.Value)
	}
	return b.String()
}
