package usecase

import (
	"context"

	"agent-router/internal/registry"
	"agent-router/internal/router"
)

func (uc *implUseCase) RegisterAgent(ctx context.Context, name string, p registry.Profile) (bool, error) {
	created, err := uc.registry.RegisterAgent(name, p)
	if err != nil {
		uc.l.Warnf(ctx, "%s.Agent: %v", router.LogPrefixRegister, err)
		return false, err
	}

	if created {
		uc.l.Infof(ctx, "%s.Agent: registered %s", router.LogPrefixRegister, name)
	} else {
		uc.l.Infof(ctx, "%s.Agent: replaced %s", router.LogPrefixRegister, name)
	}
	uc.refreshRegistryGauges()
	return created, nil
}

func (uc *implUseCase) RegisterService(ctx context.Context, name string, info registry.ServiceInfo) (bool, error) {
	created, err := uc.registry.RegisterService(name, info)
	if err != nil {
		uc.l.Warnf(ctx, "%s.Service: %v", router.LogPrefixRegister, err)
		return false, err
	}

	uc.l.Infof(ctx, "%s.Service: %s (new=%t)", router.LogPrefixRegister, name, created)
	uc.refreshRegistryGauges()
	return created, nil
}

func (uc *implUseCase) DeregisterAgent(ctx context.Context, name string) error {
	if err := uc.registry.DeregisterAgent(name); err != nil {
		return err
	}
	uc.l.Infof(ctx, "%s.Deregister: removed %s", router.LogPrefixRegister, name)
	uc.refreshRegistryGauges()
	return nil
}

func (uc *implUseCase) Agents(ctx context.Context) []registry.Profile {
	return uc.registry.Profiles()
}

func (uc *implUseCase) refreshRegistryGauges() {
	counts := uc.registry.Counts()
	uc.tracker.Metrics().SetRegistry(counts.Agents, counts.Services)
}
