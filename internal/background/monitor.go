package background

import (
	"net/url"

	"github.com/rs/zerolog/log"
)

// HandleNavigation is the injection monitor. A single pass over the guard
// chain decides whether the content scripts are injected into the tab:
// the navigation must be complete with a resolved http(s) URL, and the
// stored enabled flag must be set. Injection failures (typically pages the
// host forbids) are logged as warnings; there are no retries and no
// per-tab state.
func (w *Worker) HandleNavigation(ev NavigationEvent) {
	if ev.Status != NavigationComplete || ev.URL == "" {
		return
	}

	if !injectableURL(ev.URL) {
		return
	}

	if !w.store.Enabled() {
		return
	}

	if err := w.injector.InjectScript(ev.TabID, w.scriptFiles); err != nil {
		log.Warn().Err(err).Int("tabId", ev.TabID).Str("url", ev.URL).Msg("script injection failed")
		injectionCounter().WithLabelValues("failed").Inc()

		return
	}

	injectionCounter().WithLabelValues("ok").Inc()
}

// injectableURL excludes browser-internal, file and blank pages where
// injection is disallowed or meaningless.
func injectableURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return u.Scheme == "http" || u.Scheme == "https"
}
