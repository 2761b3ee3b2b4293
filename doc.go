// Package main provides the entry point for the Tabnote background agent.
// The agent is the native backend of the Tabnote browser extension: it owns
// the persisted settings record, answers the extension's getSettings and
// saveSettings messages, opens the onboarding page on first install, and
// requests content-script injection into finished http(s) navigations while
// the enabled flag is set. Settings are persisted with gorm; the extension
// popup talks to a small Fiber JSON API, the extension service worker to a
// native-messaging bridge on stdin/stdout.
package main
