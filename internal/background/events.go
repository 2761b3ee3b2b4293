// Package background implements the extension background-worker handlers:
// the install handler, the message responder and the injection monitor.
// Handlers are invoked by an external dispatcher (the native-messaging
// bridge or the web API); the package keeps no state between events.
package background

// Install event reasons as reported by the extension runtime.
const (
	ReasonInstall = "install"
	ReasonUpdate  = "update"
)

// NavigationComplete is the status of a finished tab navigation.
const NavigationComplete = "complete"

// Message action tags.
const (
	ActionGetSettings  = "getSettings"
	ActionSaveSettings = "saveSettings"
)

// InstallEvent is fired once per extension lifecycle change.
type InstallEvent struct {
	Reason string `json:"reason"`
}

// NavigationEvent describes a tab navigation status change.
type NavigationEvent struct {
	TabID  int    `json:"tabId"`
	Status string `json:"status"`
	URL    string `json:"url"`
}

// Message is an inbound request from another extension surface
// (popup UI or content script).
type Message struct {
	Action   string `json:"action"`
	Settings any    `json:"settings,omitempty"`
}
