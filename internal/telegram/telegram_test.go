package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError bool
	}{
		{
			name:      "valid parameters",
			botToken:  "test-token",
			chatID:    "12345",
			wantError: false,
		},
		{
			name:      "empty bot token",
			botToken:  "",
			chatID:    "12345",
			wantError: true,
		},
		{
			name:      "empty chat ID",
			botToken:  "test-token",
			chatID:    "",
			wantError: true,
		},
		{
			name:      "both empty",
			botToken:  "",
			chatID:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.botToken, tt.chatID)
			if tt.wantError {
				if err == nil {
					t.Error("NewClient() expected error, got nil")
				}
				if client != nil {
					t.Error("NewClient() should return nil client on error")
				}
			} else {
				if err != nil {
					t.Errorf("NewClient() unexpected error: %v", err)
				}
				if client == nil {
					t.Error("NewClient() returned nil client")
				}
			}
		})
	}
}

func TestSendMessage_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if payload["chat_id"] != "12345" {
			t.Errorf("chat_id = %v, want 12345", payload["chat_id"])
		}
		if payload["parse_mode"] != "HTML" {
			t.Errorf("parse_mode = %v, want HTML", payload["parse_mode"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage("Test message"); err != nil {
		t.Errorf("SendMessage() unexpected error: %v", err)
	}
}

func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	err := client.SendMessage("Test message")
	if err == nil {
		t.Fatal("SendMessage() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "chat not found") {
		t.Errorf("error should include API description, got: %v", err)
	}
}

func TestSendMessage_EmptyText(t *testing.T) {
	client := &Client{botToken: "t", chatID: "c", httpClient: &http.Client{}}
	if err := client.SendMessage(""); err == nil {
		t.Error("SendMessage() should reject empty text")
	}
}

func TestGetMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/getMe") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok": true,
			"result": map[string]interface{}{
				"username": "joffre_monitor_bot",
			},
		})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	username, err := client.GetMe()
	if err != nil {
		t.Fatalf("GetMe() unexpected error: %v", err)
	}
	if username != "joffre_monitor_bot" {
		t.Errorf("username = %q, want joffre_monitor_bot", username)
	}
}
