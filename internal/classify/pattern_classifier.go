package classify

import (
	"regexp"
	"strings"

	"github.com/dferenc/hireflow/internal/domain"
)

// PatternClassifier is the heuristic Classifier implementation. It matches
// normalized text against the pattern tables in patterns.go. Role detection
// is hierarchical: executive titles override functional-area signals, which
// override generic signals.
type PatternClassifier struct{}

// NewPatternClassifier returns the default heuristic classifier.
func NewPatternClassifier() *PatternClassifier {
	return &PatternClassifier{}
}

var (
	budgetRe   = regexp.MustCompile(`\$\s?\d[\d,]*(\.\d+)?\s?k?|\b\d{2,3}k\b`)
	durationRe = regexp.MustCompile(`\b\d+\s*(weeks?|months?|days?)\b`)
	teamSizeRe = regexp.MustCompile(`\bteam of \d+\b|\b\d+\s*(employees|people|engineers|person team)\b`)
)

// fixed iteration orders so classification is deterministic
var (
	roleOrder      = []domain.RoleType{domain.RoleEngineering, domain.RoleMarketing, domain.RoleSales, domain.RoleOperations, domain.RoleDesign}
	stageOrder     = []domain.CompanyStage{domain.StageSeriesA, domain.StageGrowth, domain.StageEnterprise, domain.StageSeed}
	urgencyOrder   = []domain.UrgencyLevel{domain.UrgencyHigh, domain.UrgencyLow, domain.UrgencyMedium}
	seniorityOrder = []domain.Seniority{domain.SeniorityLead, domain.SenioritySenior, domain.SeniorityJunior, domain.SeniorityMid}
)

func (c *PatternClassifier) Classify(text string, prior domain.HiringContext) (ContextDelta, error) {
	norm := normalize(text)
	if norm == "" {
		return ContextDelta{}, ErrEmptyInput
	}

	var delta ContextDelta
	add := func(f SlotFinding) {
		delta.Findings = append(delta.Findings, f)
	}

	c.classifyRole(norm, add)
	c.classifyStage(norm, add)
	c.classifyUrgency(norm, add)
	c.classifyBudget(text, norm, add)
	c.classifyTimeline(norm, add)
	c.classifySeniority(norm, add)
	c.classifyScalars(norm, add)

	return delta, nil
}

func (c *PatternClassifier) classifyRole(norm string, add func(SlotFinding)) {
	// Executive titles take precedence over everything else.
	if phrase, ok := matchAny(norm, executiveTitles); ok {
		add(SlotFinding{
			Slot: domain.SlotRoleType, State: domain.SlotKnown,
			Value: string(domain.RoleExecutive), Evidence: phrase, Confidence: 0.9,
		})
		add(SlotFinding{
			Slot: domain.SlotSeniority, State: domain.SlotKnown,
			Value: string(domain.SeniorityExecutive), Evidence: phrase, Confidence: 0.9,
		})
		return
	}

	// IC indicators are more specific than functional areas, so they carry
	// full weight; functional areas count at 0.8.
	bestRole := domain.RoleUnknown
	bestScore := 0.0
	bestEvidence := ""
	for _, role := range roleOrder {
		score := 0.0
		evidence := ""
		for _, p := range icRoleIndicators[role] {
			if containsPhrase(norm, p) {
				score += float64(phraseWeight(p))
				if evidence == "" {
					evidence = p
				}
			}
		}
		for _, p := range functionalAreas[role] {
			if containsPhrase(norm, p) {
				score += 0.8 * float64(phraseWeight(p))
				if evidence == "" {
					evidence = p
				}
			}
		}
		if score > bestScore {
			bestRole, bestScore, bestEvidence = role, score, evidence
		}
	}
	if bestRole != domain.RoleUnknown {
		conf := bestScore / 3.0
		if conf > 1.0 {
			conf = 1.0
		}
		add(SlotFinding{
			Slot: domain.SlotRoleType, State: domain.SlotKnown,
			Value: string(bestRole), Evidence: bestEvidence, Confidence: conf,
		})
		return
	}

	// A hiring need with no resolvable function classifies as generic
	// rather than guessing a specific role.
	if phrase, ok := matchAny(norm, genericRoleSignals); ok {
		add(SlotFinding{
			Slot: domain.SlotRoleType, State: domain.SlotKnown,
			Value: string(domain.RoleGeneric), Evidence: phrase, Confidence: 0.3,
		})
	}
}

func (c *PatternClassifier) classifyStage(norm string, add func(SlotFinding)) {
	// Qualifier+stage phrases like "growing startup" are deliberately left
	// ambiguous. Guessing a concrete stage here would be wrong more often
	// than not, and an ambiguous slot feeds the question prioritizer.
	if phrase, ok := matchAny(norm, ambiguousStagePhrases); ok {
		add(SlotFinding{
			Slot: domain.SlotCompanyStage, State: domain.SlotAmbiguous,
			Evidence: phrase, Confidence: 0.3,
		})
		return
	}

	bestStage := domain.StageUnknown
	bestScore := 0
	bestEvidence := ""
	for _, stage := range stageOrder {
		score := 0
		evidence := ""
		for _, p := range stageIndicators[stage] {
			if containsPhrase(norm, p) {
				score += phraseWeight(p)
				if evidence == "" {
					evidence = p
				}
			}
		}
		if score > bestScore {
			bestStage, bestScore, bestEvidence = stage, score, evidence
		}
	}
	if bestStage != domain.StageUnknown {
		conf := float64(bestScore) / 3.0
		if conf > 1.0 {
			conf = 1.0
		}
		add(SlotFinding{
			Slot: domain.SlotCompanyStage, State: domain.SlotKnown,
			Value: string(bestStage), Evidence: bestEvidence, Confidence: conf,
		})
	}
}

func (c *PatternClassifier) classifyUrgency(norm string, add func(SlotFinding)) {
	for _, level := range urgencyOrder {
		if phrase, ok := matchAny(norm, urgencyIndicators[level]); ok {
			add(SlotFinding{
				Slot: domain.SlotUrgencyLevel, State: domain.SlotKnown,
				Value: string(level), Evidence: phrase, Confidence: 0.7,
			})
			return
		}
	}
}

func (c *PatternClassifier) classifyBudget(raw, norm string, add func(SlotFinding)) {
	if m := budgetRe.FindString(raw); m != "" {
		add(SlotFinding{
			Slot: domain.SlotBudget, State: domain.SlotKnown,
			Value: strings.TrimSpace(m), Evidence: m, Confidence: 0.8,
		})
		return
	}
	// A compensation mention without an amount is evidence, not an answer.
	if phrase, ok := matchAny(norm, []string{"budget", "salary", "compensation", "pay range"}); ok {
		add(SlotFinding{
			Slot: domain.SlotBudget, State: domain.SlotAmbiguous,
			Evidence: phrase, Confidence: 0.3,
		})
	}
}

func (c *PatternClassifier) classifyTimeline(norm string, add func(SlotFinding)) {
	if m := durationRe.FindString(norm); m != "" {
		add(SlotFinding{
			Slot: domain.SlotTimelineNeed, State: domain.SlotKnown,
			Value: m, Evidence: m, Confidence: 0.8,
		})
		return
	}
	if phrase, ok := matchAny(norm, timelineIndicators); ok {
		add(SlotFinding{
			Slot: domain.SlotTimelineNeed, State: domain.SlotKnown,
			Value: phrase, Evidence: phrase, Confidence: 0.7,
		})
	}
}

func (c *PatternClassifier) classifySeniority(norm string, add func(SlotFinding)) {
	for _, s := range seniorityOrder {
		if phrase, ok := matchAny(norm, seniorityIndicators[s]); ok {
			add(SlotFinding{
				Slot: domain.SlotSeniority, State: domain.SlotKnown,
				Value: string(s), Evidence: phrase, Confidence: 0.7,
			})
			return
		}
	}
}

func (c *PatternClassifier) classifyScalars(norm string, add func(SlotFinding)) {
	if m := teamSizeRe.FindString(norm); m != "" {
		add(SlotFinding{
			Slot: domain.SlotTeamSize, State: domain.SlotKnown,
			Value: m, Evidence: m, Confidence: 0.7,
		})
	}
	if phrase, ok := matchAny(norm, leadershipIndicators); ok {
		add(SlotFinding{
			Slot: domain.SlotLeadershipScope, State: domain.SlotKnown,
			Value: phrase, Evidence: phrase, Confidence: 0.7,
		})
	}
	if matches := matchAll(norm, techStackIndicators); len(matches) > 0 {
		add(SlotFinding{
			Slot: domain.SlotTechStack, State: domain.SlotKnown,
			Value: strings.Join(matches, ", "), Evidence: matches[0], Confidence: 0.7,
		})
	}
	if phrase, ok := matchAny(norm, locationIndicators); ok {
		add(SlotFinding{
			Slot: domain.SlotLocation, State: domain.SlotKnown,
			Value: phrase, Evidence: phrase, Confidence: 0.7,
		})
	}
}

// normalize lowercases text and strips punctuation that would break phrase
// matching. '$', digits and hyphens survive so budget amounts and terms
// like "pre-seed" stay intact.
func normalize(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '$', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// containsPhrase matches p as a whole word or whole phrase within normalized
// text, never as a substring of a longer word.
func containsPhrase(norm, p string) bool {
	return strings.Contains(" "+norm+" ", " "+p+" ")
}

func matchAny(norm string, patterns []string) (string, bool) {
	for _, p := range patterns {
		if containsPhrase(norm, p) {
			return p, true
		}
	}
	return "", false
}

func matchAll(norm string, patterns []string) []string {
	var out []string
	for _, p := range patterns {
		if containsPhrase(norm, p) {
			out = append(out, p)
		}
	}
	return out
}

func phraseWeight(p string) int {
	return len(strings.Fields(p))
}
