package classify

import "github.com/dferenc/hireflow/internal/domain"

// Pattern tables for the heuristic classifier. Multi-word phrases are
// matched as whole phrases on normalized text; single words match whole
// words only, so "technical" never matches "tech".

var executiveTitles = []string{
	"ceo", "chief executive", "chief executive officer",
	"cto", "chief technology officer", "chief technical officer",
	"cfo", "chief financial officer",
	"cmo", "chief marketing officer",
	"coo", "chief operating officer",
	"vp", "vp of", "vice president",
	"director of", "managing director",
	"head of",
}

var functionalAreas = map[domain.RoleType][]string{
	domain.RoleEngineering: {"engineering", "technology", "tech", "development"},
	domain.RoleMarketing:   {"marketing", "brand", "demand generation", "acquisition"},
	domain.RoleSales:       {"sales", "revenue", "business development", "partnerships"},
	domain.RoleOperations:  {"operations", "ops", "operational", "logistics", "supply chain"},
	domain.RoleDesign:      {"design", "ux", "ui", "product design", "creative"},
}

var icRoleIndicators = map[domain.RoleType][]string{
	domain.RoleEngineering: {
		"developer", "engineer", "programmer", "software engineer",
		"backend engineer", "frontend engineer", "full stack", "devops", "sre",
	},
	domain.RoleMarketing: {
		"marketing manager", "growth marketer", "content manager",
		"digital marketer", "seo specialist", "demand gen manager",
	},
	domain.RoleSales: {
		"sales rep", "account manager", "sales manager", "bdr", "sdr",
		"account executive",
	},
	domain.RoleOperations: {
		"operations manager", "ops manager", "project manager",
		"program manager",
	},
	domain.RoleDesign: {
		"designer", "ux designer", "ui designer", "product designer",
		"graphic designer",
	},
}

// genericRoleSignals indicate a hiring need without a resolvable function.
// They produce a low-confidence generic role rather than a guess.
var genericRoleSignals = []string{
	"technical", "someone technical", "technical person", "somebody",
	"a person", "an employee", "a hire", "first hire",
}

var stageIndicators = map[domain.CompanyStage][]string{
	domain.StageSeed: {
		"seed", "pre-seed", "early stage", "just starting", "founder",
		"pre-revenue", "mvp", "startup",
	},
	domain.StageSeriesA: {
		"series a", "product market fit", "raised funding", "post-seed",
	},
	domain.StageGrowth: {
		"growth stage", "scaling operations", "profitable",
		"multiple products", "series b", "series c",
	},
	domain.StageEnterprise: {
		"enterprise", "large company", "corporate", "established business",
		"multiple offices", "fortune 500",
	},
}

// ambiguousStagePhrases are qualifier+stage patterns that must leave the
// stage slot ambiguous instead of guessing a concrete stage.
var ambiguousStagePhrases = []string{
	"growing startup", "growing company", "scaling startup",
	"expanding startup", "growing team", "scaling company",
}

var urgencyIndicators = map[domain.UrgencyLevel][]string{
	domain.UrgencyHigh: {
		"asap", "urgent", "urgently", "immediately", "blocking", "critical",
		"right away", "yesterday",
	},
	domain.UrgencyLow: {
		"eventually", "no rush", "when possible", "planning ahead",
		"down the road", "next year",
	},
	domain.UrgencyMedium: {
		"soon", "quickly", "few weeks", "next month", "this quarter",
	},
}

var seniorityIndicators = map[domain.Seniority][]string{
	domain.SenioritySenior: {"senior", "sr", "experienced", "seasoned"},
	domain.SeniorityJunior: {"junior", "jr", "entry level", "entry-level", "graduate"},
	domain.SeniorityLead:   {"lead", "staff", "principal", "tech lead"},
	domain.SeniorityMid:    {"mid level", "mid-level", "midlevel"},
}

var leadershipIndicators = []string{
	"manage a team", "managing a team", "lead a team", "leading a team",
	"direct reports", "build a team", "build the team", "org of",
	"leadership", "people management",
}

var techStackIndicators = []string{
	"backend", "frontend", "full stack", "python", "django", "react",
	"typescript", "node", "java", "rust", "kubernetes", "aws", "gcp",
	"terraform", "postgres", "api", "mobile", "ios", "android", "ml",
	"data pipeline",
}

var locationIndicators = []string{
	"remote", "hybrid", "onsite", "on-site", "in office", "in-office",
	"relocation",
}

var timelineIndicators = []string{
	"asap", "deadline", "by end of", "start date", "immediately",
}
