package sessionstore_test

import (
	"errors"
	"testing"
	"time"

	"personal-task-scheduler/internal/model"
	"personal-task-scheduler/internal/scheduler"
	"personal-task-scheduler/internal/scheduler/sessionstore"
)

func newSession(desc string) *scheduler.Session {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	task := model.TaskData{Description: desc, MentalLoad: model.MentalLoadHigh, EstimatedDuration: 60}
	return scheduler.NewSession(task, scheduler.Suggest(task, now), now)
}

func TestStorePutGetRemove(t *testing.T) {
	store := sessionstore.New(0, 0) // defaults

	if _, ok := store.Get("u1"); ok {
		t.Fatal("empty store returned a session")
	}

	sess := newSession("a")
	store.Put("u1", sess)

	got, ok := store.Get("u1")
	if !ok || got != sess {
		t.Fatal("stored session not returned")
	}

	store.Remove("u1")
	if _, ok := store.Get("u1"); ok {
		t.Fatal("removed session still present")
	}
}

func TestStoreReplacesPriorSession(t *testing.T) {
	store := sessionstore.New(8, time.Minute)

	first := newSession("first")
	second := newSession("second")
	store.Put("u1", first)
	store.Put("u1", second)

	got, ok := store.Get("u1")
	if !ok {
		t.Fatal("no session after replacement")
	}
	if got.Task().Description != "second" {
		t.Errorf("got session %q, want the replacement", got.Task().Description)
	}
}

func TestStoreDo(t *testing.T) {
	store := sessionstore.New(8, time.Minute)

	err := store.Do("missing", func(*scheduler.Session) error { return nil })
	if !errors.Is(err, sessionstore.ErrNoActiveSession) {
		t.Fatalf("got %v, want ErrNoActiveSession", err)
	}

	store.Put("u1", newSession("a"))
	var state scheduler.State
	err = store.Do("u1", func(s *scheduler.Session) error {
		state = s.State()
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if state != scheduler.StateChoosingDay {
		t.Errorf("state = %s, want choosing_day", state)
	}
}
