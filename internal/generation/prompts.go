package generation

import (
	"fmt"
	"strings"

	"github.com/dferenc/hireflow/internal/domain"
)

const artifactsSystemPrompt = `You are a hiring operations assistant. You write concise,
practical hiring artifacts for startup founders and hiring managers.

Respond with a single JSON object and nothing else:
{"job_description": "...", "checklist": "...", "timeline": "..."}

Each field is markdown text. Do not invent facts the briefing does not
contain; when a detail is missing, keep the artifact generic rather than
fabricating specifics.`

// slotLabels maps slot names to the human-readable labels used in prompts
// and rendered output.
var slotLabels = map[domain.SlotName]string{
	domain.SlotRoleType:        "Role",
	domain.SlotCompanyStage:    "Company stage",
	domain.SlotUrgencyLevel:    "Urgency",
	domain.SlotBudget:          "Budget",
	domain.SlotTimelineNeed:    "Timeline need",
	domain.SlotSeniority:       "Seniority",
	domain.SlotTeamSize:        "Team size",
	domain.SlotLeadershipScope: "Leadership scope",
	domain.SlotTechStack:       "Tech stack",
	domain.SlotLocation:        "Location",
}

// writeBriefing renders the hiring context as a briefing. Ambiguous slots
// are flagged so the model hedges instead of committing to a guess.
func writeBriefing(b *strings.Builder, hc domain.HiringContext) {
	b.WriteString("Hiring briefing:\n")

	for _, name := range domain.AllSlots {
		slot := hc.Slot(name)
		label := slotLabels[name]
		switch slot.State {
		case domain.SlotKnown:
			fmt.Fprintf(b, "- %s: %s\n", label, slot.Value)
		case domain.SlotAmbiguous:
			fmt.Fprintf(b, "- %s: unclear (candidate reading: %s)\n", label, slot.Value)
		}
	}
}

func buildArtifactsPrompt(hc domain.HiringContext) string {
	var b strings.Builder
	writeBriefing(&b, hc)

	if skills := requiredSkills(hc); len(skills) > 0 {
		b.WriteString("\nRequired skills to cover in the job description:\n")
		for _, s := range skills {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	b.WriteString(`
Produce three artifacts for this hire:
1. job_description: a job description with title, about-the-role, responsibilities, and requirements sections.
2. checklist: a hiring process checklist from sourcing to offer.
3. timeline: a week-by-week hiring timeline.
`)
	return b.String()
}

const interviewSystemPrompt = `You are an experienced interviewer and hiring coach. You design
practical, structured interview guides for startup hiring managers.

Respond with the guide as markdown text and nothing else. Include a timed
interview structure, key questions matched to the seniority of the hire, an
evaluation rubric with a 4-point scale, and red flags to watch for. Do not
invent facts the briefing does not contain.`

func buildInterviewPrompt(hc domain.HiringContext) string {
	var b strings.Builder
	writeBriefing(&b, hc)
	b.WriteString("\nWrite an interview guide for this hire.\n")
	return b.String()
}
