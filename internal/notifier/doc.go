// Package notifier abstracts the operator notification channel.
// Delivery is best-effort: callers log failures and move on.
package notifier
