package registry

import "agent-router/internal/semantic"

// DefaultService is the owning service of agents registered without one.
const DefaultService = "agent_squad"

// Profile is the declared capability profile of an agent.
type Profile struct {
	AgentName        string            `json:"agent_name" yaml:"name" toml:"name"`
	ServiceName      string            `json:"service_name" yaml:"service" toml:"service"`
	SupportedIntents []semantic.Intent `json:"supported_intents" yaml:"intents" toml:"intents"`
	SupportedDomains []semantic.Domain `json:"supported_domains" yaml:"domains" toml:"domains"`
	CapabilityTags   []string          `json:"capability_tags" yaml:"capabilities" toml:"capabilities"`
	DeclaredLoad     float64           `json:"declared_load" yaml:"load" toml:"load"`
	PerformanceScore float64           `json:"performance_score" yaml:"performance" toml:"performance"`
}

// SupportsIntent reports whether intent is declared by the profile.
func (p Profile) SupportsIntent(intent semantic.Intent) bool {
	for _, i := range p.SupportedIntents {
		if i == intent {
			return true
		}
	}
	return false
}

// SupportsDomain reports whether domain is declared by the profile.
func (p Profile) SupportsDomain(domain semantic.Domain) bool {
	for _, d := range p.SupportedDomains {
		if d == domain {
			return true
		}
	}
	return false
}

// HasTag reports whether the profile declares the capability tag.
func (p Profile) HasTag(tag string) bool {
	for _, t := range p.CapabilityTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAllTags reports whether every tag in tags is declared.
func (p Profile) HasAllTags(tags []string) bool {
	for _, t := range tags {
		if !p.HasTag(t) {
			return false
		}
	}
	return true
}

func (p Profile) clone() Profile {
	p.SupportedIntents = append([]semantic.Intent(nil), p.SupportedIntents...)
	p.SupportedDomains = append([]semantic.Domain(nil), p.SupportedDomains...)
	p.CapabilityTags = append([]string(nil), p.CapabilityTags...)
	return p
}

// ServiceInfo describes a service (MCP) that owns agents.
type ServiceInfo struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Endpoint    string            `json:"endpoint"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Counts is the size of the registry at one instant.
type Counts struct {
	Agents   int
	Services int
}
