package registry_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"agent-router/internal/registry"
	"agent-router/internal/semantic"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func architect() registry.Profile {
	return registry.Profile{
		SupportedIntents: []semantic.Intent{semantic.IntentArchitecture},
		SupportedDomains: []semantic.Domain{semantic.DomainAPI, semantic.DomainWeb},
		CapabilityTags:   []string{"system_design"},
		DeclaredLoad:     0.3,
		PerformanceScore: 0.9,
	}
}

func TestRegisterAgent(t *testing.T) {
	r := registry.New()

	created, err := r.RegisterAgent("architect_agent", architect())
	require.NoError(t, err)
	assert.True(t, created)

	created, err = r.RegisterAgent("architect_agent", architect())
	require.NoError(t, err)
	assert.False(t, created, "re-registration replaces")

	p, ok := r.Agent("architect_agent")
	require.True(t, ok)
	assert.Equal(t, "architect_agent", p.AgentName)
	assert.Equal(t, registry.DefaultService, p.ServiceName)
	assert.Equal(t, registry.Counts{Agents: 1}, r.Counts())
}

func TestRegisterAgentValidation(t *testing.T) {
	tests := []struct {
		name    string
		agent   string
		mutate  func(*registry.Profile)
		wantErr error
	}{
		{"empty name", "", func(*registry.Profile) {}, registry.ErrEmptyName},
		{"negative load", "a", func(p *registry.Profile) { p.DeclaredLoad = -0.1 }, registry.ErrInvalidLoad},
		{"load above one", "a", func(p *registry.Profile) { p.DeclaredLoad = 1.5 }, registry.ErrInvalidLoad},
		{"zero performance", "a", func(p *registry.Profile) { p.PerformanceScore = 0 }, registry.ErrInvalidPerformance},
		{"performance above one", "a", func(p *registry.Profile) { p.PerformanceScore = 1.01 }, registry.ErrInvalidPerformance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := registry.New()
			p := architect()
			tt.mutate(&p)
			_, err := r.RegisterAgent(tt.agent, p)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			assert.Equal(t, 0, r.Counts().Agents)
		})
	}
}

func TestProfilesAreCopies(t *testing.T) {
	r := registry.New()
	_, err := r.RegisterAgent("architect_agent", architect())
	require.NoError(t, err)

	ps := r.Profiles()
	ps[0].CapabilityTags[0] = "mutated"
	ps[0].SupportedIntents[0] = semantic.IntentGeneral

	p, _ := r.Agent("architect_agent")
	assert.Equal(t, "system_design", p.CapabilityTags[0])
	assert.Equal(t, semantic.IntentArchitecture, p.SupportedIntents[0])
}

func TestProfilesSortedByName(t *testing.T) {
	r := registry.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := r.RegisterAgent(name, architect())
		require.NoError(t, err)
	}

	var names []string
	for _, p := range r.Profiles() {
		names = append(names, p.AgentName)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestDeregisterAgent(t *testing.T) {
	r := registry.New()
	_, err := r.RegisterAgent("architect_agent", architect())
	require.NoError(t, err)

	require.NoError(t, r.DeregisterAgent("architect_agent"))
	assert.ErrorIs(t, r.DeregisterAgent("architect_agent"), registry.ErrAgentNotFound)

	_, ok := r.Agent("architect_agent")
	assert.False(t, ok)
}

func TestRegisterService(t *testing.T) {
	r := registry.New()

	created, err := r.RegisterService("agent_squad", registry.ServiceInfo{Endpoint: "http://squad"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = r.RegisterService("agent_squad", registry.ServiceInfo{Endpoint: "http://squad-2"})
	require.NoError(t, err)
	assert.False(t, created)

	_, err = r.RegisterService("", registry.ServiceInfo{})
	assert.ErrorIs(t, err, registry.ErrEmptyName)

	services := r.Services()
	require.Len(t, services, 1)
	assert.Equal(t, "agent_squad", services[0].Name)
	assert.Equal(t, "http://squad-2", services[0].Endpoint)
}

func TestConcurrentAccess(t *testing.T) {
	r := registry.New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.RegisterAgent("architect_agent", architect())
		}()
		go func() {
			defer wg.Done()
			_ = r.Profiles()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, r.Counts().Agents)
}

func TestDefaultProfilesAreValid(t *testing.T) {
	profiles := registry.DefaultProfiles()
	require.Len(t, profiles, 6)
	for _, p := range profiles {
		p.ServiceName = registry.DefaultService
		assert.NoError(t, registry.Validate(p), p.AgentName)
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "agents.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
agents:
  - name: architect_agent
    intents: [architecture]
    domains: [api, web]
    capabilities: [system_design]
    load: 0.3
    performance: 0.9
  - name: security_agent
    service: sec_mcp
    intents: [security]
    domains: [api]
    load: 0.1
    performance: 0.95
`), 0o600))

	tomlPath := filepath.Join(dir, "agents.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(`
[[agents]]
name = "architect_agent"
intents = ["architecture"]
domains = ["api", "web"]
capabilities = ["system_design"]
load = 0.3
performance = 0.9

[[agents]]
name = "security_agent"
service = "sec_mcp"
intents = ["security"]
domains = ["api"]
load = 0.1
performance = 0.95
`), 0o600))

	for _, path := range []string{yamlPath, tomlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			profiles, err := registry.LoadProfiles(path)
			require.NoError(t, err)
			require.Len(t, profiles, 2)

			assert.Equal(t, "architect_agent", profiles[0].AgentName)
			assert.Equal(t, registry.DefaultService, profiles[0].ServiceName)
			assert.Equal(t, []semantic.Domain{semantic.DomainAPI, semantic.DomainWeb}, profiles[0].SupportedDomains)
			assert.InDelta(t, 0.9, profiles[0].PerformanceScore, 1e-9)
			assert.Equal(t, "sec_mcp", profiles[1].ServiceName)
		})
	}
}

func TestLoadProfilesErrors(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "agents.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0o600))
	_, err := registry.LoadProfiles(jsonPath)
	assert.ErrorIs(t, err, registry.ErrUnsupportedFormat)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("agents:\n  - name: x\n    load: 2\n    performance: 0.5\n"), 0o600))
	_, err = registry.LoadProfiles(badPath)
	assert.ErrorIs(t, err, registry.ErrInvalidLoad)

	_, err = registry.LoadProfiles(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
