package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dferenc/hireflow/internal/contract"
	"github.com/dferenc/hireflow/internal/domain"
)

var slotLabels = map[domain.SlotName]string{
	domain.SlotRoleType:        "Role type",
	domain.SlotCompanyStage:    "Company stage",
	domain.SlotUrgencyLevel:    "Urgency",
	domain.SlotBudget:          "Budget",
	domain.SlotTimelineNeed:    "Timeline",
	domain.SlotSeniority:       "Seniority",
	domain.SlotTeamSize:        "Team size",
	domain.SlotLeadershipScope: "Leadership scope",
	domain.SlotTechStack:       "Tech stack",
	domain.SlotLocation:        "Location",
}

// FormatSessionList renders session summaries as a boxed table.
func FormatSessionList(items []contract.SessionListItem) string {
	if len(items) == 0 {
		return Dim("No sessions found.") + "\n"
	}

	headers := []string{"ID", "PHASE", "SCORE", "TURNS", "UPDATED"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		id := TruncID(item.ID)
		if item.Archived {
			id += " " + Dim("(archived)")
		}
		rows = append(rows, []string{
			id,
			PhasePill(item.Phase),
			ScorePercent(item.Score),
			fmt.Sprintf("%d", item.TurnCount),
			formatUpdatedAt(item.UpdatedAt),
		})
	}

	return RenderBox("Sessions", RenderTable(headers, rows))
}

// FormatSessionDetail renders the full state of one session: phase, slot
// resolution, transcript, and artifacts when present.
func FormatSessionDetail(d *contract.SessionDetail) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s", TruncID(d.ID), PhasePill(d.Phase)))
	if d.Archived {
		b.WriteString("  " + Dim("(archived)"))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n\n",
		Dim("Briefing:"), ScoreBar(d.Score), ScorePercent(d.Score)))

	b.WriteString(Header("What we know"))
	b.WriteString("\n")
	for _, name := range domain.AllSlots {
		slot := d.Context.Slot(name)
		label := slotLabels[name]
		switch slot.State {
		case domain.SlotKnown:
			b.WriteString(fmt.Sprintf("%s %s: %s\n",
				SlotStateIndicator(slot.State), label, StyleFg.Render(slot.Value)))
		case domain.SlotAmbiguous:
			b.WriteString(fmt.Sprintf("%s %s: %s %s\n",
				SlotStateIndicator(slot.State), label,
				StyleYellow.Render(slot.Value), Dim("(unclear)")))
		default:
			b.WriteString(fmt.Sprintf("%s %s\n",
				SlotStateIndicator(slot.State), Dim(label)))
		}
	}

	if len(d.Turns) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Conversation"))
		b.WriteString("\n")
		for _, turn := range d.Turns {
			who := StylePurple.Render("you")
			if turn.Role == domain.TurnAssistant {
				who = StyleBlue.Render("hireflow")
			}
			b.WriteString(fmt.Sprintf("%s %s\n", who, StyleFg.Render(turn.Text)))
		}
	}

	if d.Artifacts != nil {
		b.WriteString("\n")
		b.WriteString(FormatArtifacts(d.Artifacts))
	}

	return RenderBox("Session", b.String())
}

func formatUpdatedAt(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return Dim(raw)
	}
	return HumanTimestamp(t)
}
