package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-task-scheduler/pkg/telegram"
)

func TestSendMessage(t *testing.T) {
	var got telegram.SendMessageRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendMessage" {
			t.Errorf("path = %q, want /sendMessage", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	bot := telegram.NewBot("token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SendMessage(42, "hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if got.ChatID != 42 || got.Text != "hello" {
		t.Errorf("payload = %+v", got)
	}
}

func TestSendKeyboard(t *testing.T) {
	var raw map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Errorf("decode: %v", err)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	bot := telegram.NewBot("token")
	bot.SetAPIURL(ts.URL)

	rows := [][]string{{"Mon 01", "Tue 02"}, {"Cancel"}}
	if err := bot.SendKeyboard(42, "pick a day", rows); err != nil {
		t.Fatalf("SendKeyboard: %v", err)
	}

	var markup telegram.ReplyKeyboardMarkup
	if err := json.Unmarshal(raw["reply_markup"], &markup); err != nil {
		t.Fatalf("unmarshal reply_markup: %v", err)
	}
	if len(markup.Keyboard) != 2 || len(markup.Keyboard[0]) != 2 {
		t.Errorf("keyboard shape = %+v", markup.Keyboard)
	}
	if !markup.OneTimeKeyboard {
		t.Error("keyboard should be one-time")
	}
}

func TestSendMessageAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer ts.Close()

	bot := telegram.NewBot("token")
	bot.SetAPIURL(ts.URL)

	if err := bot.SendMessage(42, "hello"); err == nil {
		t.Fatal("expected error on API failure")
	}
}
