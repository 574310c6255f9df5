package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/Handoyofan/joffre-monitor/internal/classify"
	"github.com/Handoyofan/joffre-monitor/internal/park"
)

// SummaryEntry is one unit's outcome as rendered in the run summary.
type SummaryEntry struct {
	Park      park.Park
	Date      park.DateTarget
	Available bool
}

// FormatAlert formats the availability alert for one positive page.
// At most two matched phrases are quoted as evidence.
func FormatAlert(p park.Park, d park.DateTarget, sourceURL string, ev classify.Evidence, now time.Time) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("%s <b>%s AVAILABLE!</b> 🎉\n\n", p.Emoji, strings.ToUpper(p.Name)))
	msg.WriteString(fmt.Sprintf("📅 <b>Date:</b> %s\n", d.Display))
	msg.WriteString(fmt.Sprintf("🗓️ <b>Day:</b> %s\n", d.Weekday))
	msg.WriteString(fmt.Sprintf("⏰ <b>When:</b> %s\n\n", strings.Title(d.Label)))
	msg.WriteString("🎫 <b>Status:</b> Availability detected\n")
	msg.WriteString(fmt.Sprintf("🔗 <b>BOOK NOW:</b> %s\n\n", sourceURL))

	if len(ev.AvailabilityPhrases) > 0 {
		phrases := ev.AvailabilityPhrases
		if len(phrases) > 2 {
			phrases = phrases[:2]
		}
		msg.WriteString(fmt.Sprintf("✅ <b>Indicators:</b> %s\n", strings.Join(phrases, ", ")))
	}
	if ev.BookingControls {
		msg.WriteString("🔘 <b>Booking:</b> Interactive elements found\n")
	}

	msg.WriteString("\n⚡ <b>URGENT:</b> Day-use spots disappear in minutes!\n")
	msg.WriteString("🏃‍♂️ <b>Book immediately!</b>\n\n")
	msg.WriteString(fmt.Sprintf("🕐 <b>Found:</b> %s", now.Format("15:04:05")))

	return msg.String()
}

// FormatSummary formats the end-of-run summary sent when no unit had
// availability.
func FormatSummary(entries []SummaryEntry, now time.Time) string {
	var msg strings.Builder

	msg.WriteString("📊 <b>Day-Use Pass Check Summary</b>\n\n")

	for _, e := range entries {
		status := "❌ No availability"
		if e.Available {
			status = "✅ AVAILABLE"
		}
		msg.WriteString(fmt.Sprintf("🔹 <b>%s</b> — %s: %s (%s) - %s\n",
			e.Park.Name, strings.Title(e.Date.Label), e.Date.Display, e.Date.Weekday, status))
	}

	msg.WriteString(fmt.Sprintf("\n⏰ <b>Checked:</b> %s\n", now.Format("2006-01-02 15:04:05")))
	msg.WriteString("🔄 <b>Next check:</b> Next scheduled run\n\n")
	msg.WriteString("📱 You'll get instant alerts when spots appear!")

	return msg.String()
}

// FormatStartup formats the optional monitor-started announcement.
func FormatStartup(parks []park.Park, window []park.DateTarget) string {
	var msg strings.Builder

	msg.WriteString("🤖 <b>Day-Use Pass Monitor Started</b>\n\n")

	msg.WriteString(fmt.Sprintf("🏞️ <b>Parks (%d):</b>\n", len(parks)))
	for _, p := range parks {
		msg.WriteString(fmt.Sprintf("   %s %s\n", p.Emoji, p.Name))
	}

	msg.WriteString(fmt.Sprintf("\n📅 <b>Checking %d day(s):</b>\n", len(window)))
	for _, d := range window {
		msg.WriteString(fmt.Sprintf("   🔹 %s: %s (%s)\n", strings.Title(d.Label), d.Display, d.Weekday))
	}

	msg.WriteString("\n🔍 <b>Status:</b> Bot is online and monitoring!")

	return msg.String()
}

// maxErrorLen bounds how much of an error message is forwarded, in
// characters, not bytes: cutting mid-rune would send invalid UTF-8
// to the Telegram API.
const maxErrorLen = 150

// FormatError formats the single operator-facing error report sent
// when a run fails unexpectedly.
func FormatError(err error, now time.Time) string {
	text := err.Error()
	if runes := []rune(text); len(runes) > maxErrorLen {
		text = string(runes[:maxErrorLen])
	}

	var msg strings.Builder
	msg.WriteString("⚠️ <b>Monitor Error</b>\n\n")
	msg.WriteString("❌ Failed during availability check\n")
	msg.WriteString(fmt.Sprintf("🐛 Error: %s\n", text))
	msg.WriteString(fmt.Sprintf("⏰ Time: %s\n", now.Format("2006-01-02 15:04:05")))
	msg.WriteString("🔄 Will retry on next scheduled run")

	return msg.String()
}
