package background

import (
	"github.com/rs/zerolog/log"
)

// HandleInstalled reacts to an extension lifecycle event. Only a fresh
// install opens the onboarding page; updates and reloads are ignored.
// A failed tab open is logged and not retried.
func (w *Worker) HandleInstalled(ev InstallEvent) {
	if ev.Reason != ReasonInstall {
		return
	}

	if err := w.tabs.OpenTab(w.onboardingURL); err != nil {
		log.Error().Err(err).Str("url", w.onboardingURL).Msg("failed to open onboarding tab")
	}
}
