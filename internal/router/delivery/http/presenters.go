package http

import (
	"time"

	"agent-router/internal/registry"
	"agent-router/internal/router"
	"agent-router/internal/semantic"
	"agent-router/internal/stats"
	"agent-router/pkg/response"
)

// --- Request DTOs ---

type routeReq struct {
	ID                   string            `json:"id"`
	Content              string            `json:"content"`
	Context              map[string]any    `json:"context"`
	Priority             int               `json:"priority"   binding:"omitempty,min=1,max=10"`
	TimeoutMs            int               `json:"timeout_ms" binding:"omitempty,min=1,max=300000"`
	RequiredCapabilities []string          `json:"required_capabilities"`
	Metadata             map[string]string `json:"metadata"`
	Strategy             string            `json:"strategy"`
}

func (r routeReq) validate() (router.Strategy, error) {
	return router.ParseStrategy(r.Strategy)
}

func (r routeReq) toInput() router.RouteRequest {
	return router.RouteRequest{
		ID:                   r.ID,
		Content:              r.Content,
		Context:              r.Context,
		Priority:             r.Priority,
		Timeout:              time.Duration(r.TimeoutMs) * time.Millisecond,
		RequiredCapabilities: r.RequiredCapabilities,
		Metadata:             r.Metadata,
	}
}

// ---

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) limit() int {
	if r.Limit <= 0 || r.Limit > 1000 {
		return 50
	}
	return r.Limit
}

// ---

type agentReq struct {
	Name             string   `json:"name"              binding:"required"`
	Service          string   `json:"service"`
	Intents          []string `json:"intents"`
	Domains          []string `json:"domains"`
	Capabilities     []string `json:"capabilities"`
	DeclaredLoad     float64  `json:"declared_load"     binding:"min=0,max=1"`
	PerformanceScore float64  `json:"performance_score" binding:"required,gt=0,max=1"`
}

func (r agentReq) toInput() registry.Profile {
	p := registry.Profile{
		AgentName:        r.Name,
		ServiceName:      r.Service,
		CapabilityTags:   r.Capabilities,
		DeclaredLoad:     r.DeclaredLoad,
		PerformanceScore: r.PerformanceScore,
	}
	for _, i := range r.Intents {
		p.SupportedIntents = append(p.SupportedIntents, semantic.Intent(i))
	}
	for _, d := range r.Domains {
		p.SupportedDomains = append(p.SupportedDomains, semantic.Domain(d))
	}
	return p
}

// ---

type serviceReq struct {
	Name        string            `json:"name"     binding:"required"`
	Description string            `json:"description"`
	Endpoint    string            `json:"endpoint"`
	Metadata    map[string]string `json:"metadata"`
}

func (r serviceReq) toInput() registry.ServiceInfo {
	return registry.ServiceInfo{
		Name:        r.Name,
		Description: r.Description,
		Endpoint:    r.Endpoint,
		Metadata:    r.Metadata,
	}
}

// --- Response DTOs ---

type alternativeResp struct {
	AgentName         string  `json:"agent_name"`
	ServiceName       string  `json:"service_name"`
	MatchScore        float64 `json:"match_score"`
	LoadAdjustedScore float64 `json:"load_adjusted_score"`
}

type routeResp struct {
	RequestID         string            `json:"request_id"`
	TargetAgent       string            `json:"target_agent"`
	TargetService     string            `json:"target_service"`
	Confidence        float64           `json:"confidence"`
	Reasoning         string            `json:"reasoning"`
	EstimatedTimeMs   int64             `json:"estimated_time_ms"`
	AlternativeRoutes []alternativeResp `json:"alternative_routes"`
	Strategy          string            `json:"strategy"`
	Outcome           string            `json:"outcome"`
	Features          semantic.Features `json:"features"`
}

func (h *handler) newRouteResp(out router.RouteResult) routeResp {
	alts := make([]alternativeResp, len(out.AlternativeRoutes))
	for i, a := range out.AlternativeRoutes {
		alts[i] = alternativeResp{
			AgentName:         a.AgentName,
			ServiceName:       a.ServiceName,
			MatchScore:        a.MatchScore,
			LoadAdjustedScore: a.LoadAdjustedScore,
		}
	}
	return routeResp{
		RequestID:         out.RequestID,
		TargetAgent:       out.TargetAgent,
		TargetService:     out.TargetService,
		Confidence:        out.Confidence,
		Reasoning:         out.Reasoning,
		EstimatedTimeMs:   out.EstimatedTime.Milliseconds(),
		AlternativeRoutes: alts,
		Strategy:          out.Strategy.String(),
		Outcome:           string(out.Outcome),
		Features:          out.Features,
	}
}

type statsResp struct {
	TotalRequests         uint64          `json:"total_requests"`
	SuccessfulRoutes      uint64          `json:"successful_routes"`
	FailedRoutes          uint64          `json:"failed_routes"`
	AverageResponseTimeMs response.Millis `json:"average_response_time_ms"`
	RouteAccuracy         float64         `json:"route_accuracy"`
	RegisteredAgents      int             `json:"registered_agents"`
	RegisteredServices    int             `json:"registered_services"`
	HistorySize           int             `json:"history_size"`
	DroppedRecords        uint64          `json:"dropped_records"`
}

func (h *handler) newStatsResp(s stats.Snapshot) statsResp {
	return statsResp{
		TotalRequests:         s.TotalRequests,
		SuccessfulRoutes:      s.SuccessfulRoutes,
		FailedRoutes:          s.FailedRoutes,
		AverageResponseTimeMs: response.Millis(s.AverageResponseTime),
		RouteAccuracy:         s.RouteAccuracy,
		RegisteredAgents:      s.RegisteredAgents,
		RegisteredServices:    s.RegisteredServices,
		HistorySize:           s.HistorySize,
		DroppedRecords:        s.DroppedRecords,
	}
}

type historyItemResp struct {
	Timestamp     response.DateTime `json:"timestamp"`
	RequestID     string            `json:"request_id"`
	TargetAgent   string            `json:"target_agent"`
	TargetService string            `json:"target_service"`
	Confidence    float64           `json:"confidence"`
	LatencyMs     response.Millis   `json:"latency_ms"`
	Success       bool              `json:"success"`
	Strategy      string            `json:"strategy"`
	Outcome       string            `json:"outcome"`
}

type historyResp struct {
	Items []historyItemResp `json:"items"`
	Count int               `json:"count"`
}

func (h *handler) newHistoryResp(records []stats.Record) historyResp {
	items := make([]historyItemResp, len(records))
	for i, r := range records {
		items[i] = historyItemResp{
			Timestamp:     response.DateTime(r.Timestamp),
			RequestID:     r.RequestID,
			TargetAgent:   r.TargetAgent,
			TargetService: r.TargetService,
			Confidence:    r.Confidence,
			LatencyMs:     response.Millis(r.Latency),
			Success:       r.Success,
			Strategy:      r.Strategy,
			Outcome:       r.Outcome,
		}
	}
	return historyResp{Items: items, Count: len(items)}
}

type agentResp struct {
	Name             string   `json:"name"`
	Service          string   `json:"service"`
	Intents          []string `json:"intents"`
	Domains          []string `json:"domains"`
	Capabilities     []string `json:"capabilities"`
	DeclaredLoad     float64  `json:"declared_load"`
	PerformanceScore float64  `json:"performance_score"`
}

func newAgentResp(p registry.Profile) agentResp {
	r := agentResp{
		Name:             p.AgentName,
		Service:          p.ServiceName,
		Intents:          make([]string, 0, len(p.SupportedIntents)),
		Domains:          make([]string, 0, len(p.SupportedDomains)),
		Capabilities:     append([]string{}, p.CapabilityTags...),
		DeclaredLoad:     p.DeclaredLoad,
		PerformanceScore: p.PerformanceScore,
	}
	for _, i := range p.SupportedIntents {
		r.Intents = append(r.Intents, string(i))
	}
	for _, d := range p.SupportedDomains {
		r.Domains = append(r.Domains, string(d))
	}
	return r
}

type listAgentsResp struct {
	Agents []agentResp `json:"agents"`
	Count  int         `json:"count"`
}

func (h *handler) newListAgentsResp(profiles []registry.Profile) listAgentsResp {
	agents := make([]agentResp, len(profiles))
	for i, p := range profiles {
		agents[i] = newAgentResp(p)
	}
	return listAgentsResp{Agents: agents, Count: len(agents)}
}

type registerResp struct {
	Name    string `json:"name"`
	Created bool   `json:"created"`
}
