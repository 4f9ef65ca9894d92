package gamification

//go:generate mockgen -source=notifier.go -destination=../mocks/gamification/mock_notifier.go -package=mock_gamification

// Notifier receives user-facing celebration and alert events.
type Notifier interface {
	Toast(message, severity string)
	Confetti()
	NotificationDot(pending bool)
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) Toast(string, string)   {}
func (NopNotifier) Confetti()              {}
func (NopNotifier) NotificationDot(bool)   {}
