package domain

type RoleType string

const (
	RoleEngineering RoleType = "engineering"
	RoleMarketing   RoleType = "marketing"
	RoleSales       RoleType = "sales"
	RoleExecutive   RoleType = "executive"
	RoleOperations  RoleType = "operations"
	RoleDesign      RoleType = "design"
	RoleGeneric     RoleType = "generic"
	RoleUnknown     RoleType = "unknown"
)

type CompanyStage string

const (
	StageSeed       CompanyStage = "seed"
	StageSeriesA    CompanyStage = "series_a"
	StageGrowth     CompanyStage = "growth"
	StageEnterprise CompanyStage = "enterprise"
	StageUnknown    CompanyStage = "unknown"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

type Seniority string

const (
	SeniorityJunior    Seniority = "junior"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityExecutive Seniority = "executive"
	SeniorityUnknown   Seniority = "unknown"
)

// ValidRoleTypes is the canonical set of accepted role type strings.
var ValidRoleTypes = map[string]bool{
	"engineering": true, "marketing": true, "sales": true, "executive": true,
	"operations": true, "design": true, "generic": true, "unknown": true,
}

// ValidCompanyStages is the canonical set of accepted company stage strings.
var ValidCompanyStages = map[string]bool{
	"seed": true, "series_a": true, "growth": true, "enterprise": true, "unknown": true,
}

type Phase string

const (
	PhaseAnalyzing        Phase = "ANALYZING"
	PhaseQuestioning      Phase = "QUESTIONING"
	PhaseAwaitingAnswer   Phase = "AWAITING_ANSWER"
	PhaseGenerating       Phase = "GENERATING"
	PhaseComplete         Phase = "COMPLETE"
	PhaseDegradedComplete Phase = "DEGRADED_COMPLETE"
)

// Terminal reports whether no further turns are accepted in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseDegradedComplete
}
