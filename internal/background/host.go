package background

import (
	"github.com/tabnote/tabnote/internal/settings"
)

// TabOpener opens a new browser tab at the given URL.
type TabOpener interface {
	OpenTab(url string) error
}

// ScriptInjector runs the given script files inside a tab's page context.
type ScriptInjector interface {
	InjectScript(tabID int, files []string) error
}

// SettingsStore is the settings accessor the handlers read and write.
type SettingsStore interface {
	Get() settings.Record
	Save(candidate any) settings.SaveResult
	Enabled() bool
}
