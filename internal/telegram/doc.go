// Package telegram implements the Telegram Bot API client and the
// HTML message formatters for availability alerts, run summaries,
// startup announcements and error reports.
package telegram
