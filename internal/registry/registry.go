package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds agent profiles and services. Routing reads take the shared
// lock; registration takes the exclusive one.
type Registry struct {
	mu       sync.RWMutex
	agents   map[string]Profile
	services map[string]ServiceInfo
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		agents:   make(map[string]Profile),
		services: make(map[string]ServiceInfo),
	}
}

// Validate checks a profile before it is stored.
func Validate(p Profile) error {
	if p.AgentName == "" {
		return ErrEmptyName
	}
	if p.DeclaredLoad < 0 || p.DeclaredLoad > 1 {
		return fmt.Errorf("agent %s: %w", p.AgentName, ErrInvalidLoad)
	}
	if p.PerformanceScore <= 0 || p.PerformanceScore > 1 {
		return fmt.Errorf("agent %s: %w", p.AgentName, ErrInvalidPerformance)
	}
	return nil
}

// RegisterAgent adds or replaces the profile under name. It returns true when
// the agent was not registered before.
func (r *Registry) RegisterAgent(name string, p Profile) (bool, error) {
	p.AgentName = name
	if p.ServiceName == "" {
		p.ServiceName = DefaultService
	}
	if err := Validate(p); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.agents[name]
	r.agents[name] = p.clone()
	return !exists, nil
}

// RegisterService adds or replaces a service. It returns true when new.
func (r *Registry) RegisterService(name string, info ServiceInfo) (bool, error) {
	if name == "" {
		return false, ErrEmptyName
	}
	info.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.services[name]
	r.services[name] = info
	return !exists, nil
}

// DeregisterAgent removes an agent.
func (r *Registry) DeregisterAgent(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agents[name]; !ok {
		return ErrAgentNotFound
	}
	delete(r.agents, name)
	return nil
}

// Agent returns a copy of the named profile.
func (r *Registry) Agent(name string) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.agents[name]
	if !ok {
		return Profile{}, false
	}
	return p.clone(), true
}

// Profiles returns a copy of every profile sorted by agent name.
func (r *Registry) Profiles() []Profile {
	r.mu.RLock()
	out := make([]Profile, 0, len(r.agents))
	for _, p := range r.agents {
		out = append(out, p.clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].AgentName < out[j].AgentName })
	return out
}

// Services returns every registered service sorted by name.
func (r *Registry) Services() []ServiceInfo {
	r.mu.RLock()
	out := make([]ServiceInfo, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Counts returns the number of agents and services.
func (r *Registry) Counts() Counts {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Counts{Agents: len(r.agents), Services: len(r.services)}
}
