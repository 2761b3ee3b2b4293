package background

// HandleMessage answers a single inbound request. The returned payload is
// nil for unknown or absent actions, which the transport translates into
// "no response" (the reply channel closes without data). Each message is
// handled independently; there is no ordering or correlation across calls.
func (w *Worker) HandleMessage(msg Message) any {
	switch msg.Action {
	case ActionGetSettings:
		return w.store.Get()
	case ActionSaveSettings:
		return w.store.Save(msg.Settings)
	default:
		return nil
	}
}
