package services

// Notifier delivers blocking, user-visible alerts. Every provider failure and
// every local validation failure ends up here; nothing propagates past the
// operation boundary.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) { f(message) }
