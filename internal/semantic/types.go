package semantic

// Intent is the coarse kind of work a request asks for.
type Intent string

const (
	IntentArchitecture Intent = "architecture"
	IntentDevelopment  Intent = "development"
	IntentTesting      Intent = "testing"
	IntentDeployment   Intent = "deployment"
	IntentMonitoring   Intent = "monitoring"
	IntentSecurity     Intent = "security"
	IntentPerformance  Intent = "performance"
	IntentGeneral      Intent = "general"
)

// Domain is the subject-matter area of a request.
type Domain string

const (
	DomainWeb      Domain = "web"
	DomainMobile   Domain = "mobile"
	DomainData     Domain = "data"
	DomainDevOps   Domain = "devops"
	DomainAPI      Domain = "api"
	DomainSecurity Domain = "security"
	DomainGeneral  Domain = "general"
)

// Complexity is a coarse size bucket of the request text.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Features is what the router knows about a request after analysis.
type Features struct {
	Keywords   []string   `json:"keywords"`
	Intent     Intent     `json:"intent"`
	Domain     Domain     `json:"domain"`
	Complexity Complexity `json:"complexity"`
	Confidence float64    `json:"confidence"`
}

// Extractor turns request text into Features.
type Extractor interface {
	Extract(content string) Features
}

type intentRule struct {
	intent   Intent
	triggers []string
}

type domainRule struct {
	domain   Domain
	triggers []string
}
