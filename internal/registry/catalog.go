package registry

import "agent-router/internal/semantic"

// DefaultProfiles is the built-in agent catalogue used when no profile file is configured.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			AgentName:        "architect_agent",
			SupportedIntents: []semantic.Intent{semantic.IntentArchitecture},
			SupportedDomains: []semantic.Domain{semantic.DomainWeb, semantic.DomainMobile, semantic.DomainAPI, semantic.DomainGeneral},
			CapabilityTags:   []string{"system_design", "architecture_review", "pattern_recommendation"},
			DeclaredLoad:     0.3,
			PerformanceScore: 0.9,
		},
		{
			AgentName:        "developer_agent",
			SupportedIntents: []semantic.Intent{semantic.IntentDevelopment, semantic.IntentGeneral},
			SupportedDomains: []semantic.Domain{semantic.DomainWeb, semantic.DomainMobile, semantic.DomainAPI, semantic.DomainData},
			CapabilityTags:   []string{"code_generation", "implementation", "refactoring"},
			DeclaredLoad:     0.5,
			PerformanceScore: 0.85,
		},
		{
			AgentName:        "test_agent",
			SupportedIntents: []semantic.Intent{semantic.IntentTesting},
			SupportedDomains: []semantic.Domain{semantic.DomainWeb, semantic.DomainMobile, semantic.DomainAPI, semantic.DomainGeneral},
			CapabilityTags:   []string{"test_design", "automation", "quality_assurance"},
			DeclaredLoad:     0.2,
			PerformanceScore: 0.88,
		},
		{
			AgentName:        "deploy_agent",
			SupportedIntents: []semantic.Intent{semantic.IntentDeployment},
			SupportedDomains: []semantic.Domain{semantic.DomainDevOps, semantic.DomainWeb, semantic.DomainAPI},
			CapabilityTags:   []string{"deployment", "ci_cd", "infrastructure"},
			DeclaredLoad:     0.4,
			PerformanceScore: 0.92,
		},
		{
			AgentName:        "security_agent",
			SupportedIntents: []semantic.Intent{semantic.IntentSecurity},
			SupportedDomains: []semantic.Domain{semantic.DomainSecurity, semantic.DomainWeb, semantic.DomainAPI},
			CapabilityTags:   []string{"security_analysis", "vulnerability_scan", "compliance"},
			DeclaredLoad:     0.1,
			PerformanceScore: 0.95,
		},
		{
			AgentName:        "monitor_agent",
			SupportedIntents: []semantic.Intent{semantic.IntentMonitoring, semantic.IntentPerformance},
			SupportedDomains: []semantic.Domain{semantic.DomainDevOps, semantic.DomainWeb, semantic.DomainAPI},
			CapabilityTags:   []string{"monitoring", "alerting", "performance_analysis"},
			DeclaredLoad:     0.3,
			PerformanceScore: 0.87,
		},
	}
}
