package semantic

// Extraction confidence
const (
	ExtractionConfidence = 0.85
	FailedConfidence     = 0.1
)

// Complexity thresholds, in bytes of content.
const (
	LowComplexityMaxLen    = 50
	MediumComplexityMaxLen = 200
)

// technicalTerms is reported in this order.
var technicalTerms = []string{
	"architect", "design", "develop", "test", "deploy", "monitor",
	"api", "database", "frontend", "backend", "microservice",
	"docker", "kubernetes", "ci/cd", "security", "performance",
}

// intentRules is evaluated top to bottom; the first hit wins.
var intentRules = []intentRule{
	{IntentArchitecture, []string{"architect", "design", "structure", "pattern"}},
	{IntentDevelopment, []string{"develop", "code", "implement", "build"}},
	{IntentTesting, []string{"test", "verify", "validate", "check"}},
	{IntentDeployment, []string{"deploy", "release", "publish", "launch"}},
	{IntentMonitoring, []string{"monitor", "observe", "track", "analyze"}},
	{IntentSecurity, []string{"security", "secure", "protect", "vulnerability"}},
	{IntentPerformance, []string{"performance", "optimize", "speed", "efficiency"}},
}

// domainRules is evaluated top to bottom; the first hit wins.
// api sits above security: "auth" is a substring of most api requests.
var domainRules = []domainRule{
	{DomainWeb, []string{"web", "frontend", "backend", "html", "css", "javascript"}},
	{DomainMobile, []string{"mobile", "ios", "android", "app", "react native"}},
	{DomainData, []string{"data", "database", "sql", "analytics", "ml", "ai"}},
	{DomainDevOps, []string{"devops", "docker", "kubernetes", "ci/cd", "deployment"}},
	{DomainAPI, []string{"api", "rest", "graphql", "microservice", "service"}},
	{DomainSecurity, []string{"security", "auth", "encryption", "vulnerability"}},
}

// Intents lists every intent the extractor can produce, general last.
func Intents() []Intent {
	out := make([]Intent, 0, len(intentRules)+1)
	for _, r := range intentRules {
		out = append(out, r.intent)
	}
	return append(out, IntentGeneral)
}

// Domains lists every domain the extractor can produce, general last.
func Domains() []Domain {
	out := make([]Domain, 0, len(domainRules)+1)
	for _, r := range domainRules {
		out = append(out, r.domain)
	}
	return append(out, DomainGeneral)
}
