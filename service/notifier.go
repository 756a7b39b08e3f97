package service

import "log"

// Notifier delivers user-facing email notifications. The console
// implementation stands in until an SMTP or provider integration is
// wired up.
type Notifier interface {
	Notify(recipient, subject, message string) error
}

// ConsoleNotifier logs notifications instead of sending them.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (c *ConsoleNotifier) Notify(recipient, subject, message string) error {
	log.Printf("[notify] to=%s subject=%q %s", recipient, subject, message)
	return nil
}
