package cli

import "testing"

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	if cmd.Use != "joffre-monitor" {
		t.Errorf("Use = %q, want joffre-monitor", cmd.Use)
	}

	for _, name := range []string{"config", "dry-run", "dump-dir", "window", "announce-start", "verbose", "timeout"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag --%s to be registered", name)
		}
	}
}

func TestRunCheckFailsWithoutCredentials(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() should fail fast without Telegram credentials")
	}
}
