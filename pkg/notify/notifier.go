package notify

import "log"

// Notifier delivers a short notification to the user. Actual push/desktop
// delivery is an external collaborator; the default implementation just logs.
type Notifier interface {
	Notify(subject, detail string)
}

type logNotifier struct{}

func NewLog() Notifier { return &logNotifier{} }

func (logNotifier) Notify(subject, detail string) {
	log.Printf("[notify] %s: %s", subject, detail)
}
