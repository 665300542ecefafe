package store

// Notifier receives transient, user-visible notifications. The UI implements
// it as a toast/status line; tests implement it as a recorder.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
