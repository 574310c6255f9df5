package notifier

// Notifier defines the interface for delivering operator messages
type Notifier interface {
	// Notify delivers one formatted text message
	Notify(message string) error
}
