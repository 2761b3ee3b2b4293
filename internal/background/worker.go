package background

import (
	"github.com/tabnote/tabnote/internal/config"
)

// Worker bundles the background handlers with their host bindings.
type Worker struct {
	store    SettingsStore
	tabs     TabOpener
	injector ScriptInjector

	onboardingURL string
	scriptFiles   []string
}

// New creates a worker bound to the given settings store and host.
func New(store SettingsStore, tabs TabOpener, injector ScriptInjector, agentCfg config.Agent) *Worker {
	return &Worker{
		store:         store,
		tabs:          tabs,
		injector:      injector,
		onboardingURL: agentCfg.OnboardingURL,
		scriptFiles:   agentCfg.ScriptFiles,
	}
}
