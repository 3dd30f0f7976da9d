package formatter

import (
	"fmt"
	"strings"

	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/domain"
)

// FormatTurnResponse formats the outcome of one conversation turn into a
// styled CLI string.
func FormatTurnResponse(resp *contract.TurnResponse) string {
	if resp.Reprompt != "" {
		return StyleYellow.Render(resp.Reprompt) + "\n"
	}

	if resp.Artifacts != nil {
		return FormatArtifacts(resp.Artifacts)
	}

	var b strings.Builder

	b.WriteString(Header("A few questions first"))
	b.WriteString("\n\n")
	for i, q := range resp.Questions {
		b.WriteString(fmt.Sprintf("%s %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(q.Prompt),
		))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Dim("Briefing:"),
		ScoreBar(resp.Score),
		ScorePercent(resp.Score),
	))

	return b.String()
}

// FormatArtifacts renders the generated hiring artifacts as titled sections.
func FormatArtifacts(a *domain.Artifacts) string {
	var b strings.Builder

	if a.Degraded {
		b.WriteString(StyleYellow.Render(
			"Generated from templates — the language model was unavailable."))
		b.WriteString("\n\n")
	}

	b.WriteString(Header("Job Description"))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(strings.TrimRight(a.JobDescription, "\n")))
	b.WriteString("\n\n")

	b.WriteString(Header("Hiring Checklist"))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(strings.TrimRight(a.Checklist, "\n")))
	b.WriteString("\n\n")

	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	b.WriteString(StyleFg.Render(strings.TrimRight(a.Timeline, "\n")))
	b.WriteString("\n")

	if a.InterviewGuide != "" {
		b.WriteString("\n")
		b.WriteString(Header("Interview Guide"))
		b.WriteString("\n")
		b.WriteString(StyleFg.Render(strings.TrimRight(a.InterviewGuide, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTurnError renders a turn error with a retry hint when applicable.
func FormatTurnError(err *contract.TurnError) string {
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("Error: %s", err.Message)))
	b.WriteString("\n")
	if err.Retryable {
		b.WriteString(Dim("Send your message again to retry."))
		b.WriteString("\n")
	}
	return b.String()
}
