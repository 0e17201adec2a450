package api

import (
	"testing"
	"time"

	"stresscheck/internal/services"
)

func TestMemoryStoreAnswerMerge(t *testing.T) {
	store := newMemoryStore()
	store.AddSession(&Session{ID: "S1", CreatedAt: time.Now().UTC()})

	if ok := store.PutAnswers("S1", map[string]services.Option{"Q1": services.OptionAgree}); !ok {
		t.Fatalf("PutAnswers failed for existing session")
	}
	store.PutAnswers("S1", map[string]services.Option{
		"Q1": services.OptionDisagree, // overwrite
		"Q2": services.OptionMostlyAgree,
	})

	snap, ok := store.SnapshotAnswers("S1")
	if !ok || len(snap) != 2 {
		t.Fatalf("snapshot = %v ok=%v", snap, ok)
	}
	if snap["Q1"] != services.OptionDisagree {
		t.Fatalf("later answer must overwrite: %v", snap["Q1"])
	}

	// Snapshots are copies: mutating one must not touch the session.
	snap["Q3"] = services.OptionAgree
	if n, _ := store.AnsweredCount("S1"); n != 2 {
		t.Fatalf("snapshot mutation leaked into session: count=%d", n)
	}
}

func TestMemoryStoreLifecycle(t *testing.T) {
	store := newMemoryStore()
	if store.GetSession("missing") != nil {
		t.Fatalf("expected nil for unknown session")
	}
	if ok := store.PutAnswers("missing", nil); ok {
		t.Fatalf("PutAnswers must fail for unknown session")
	}
	if _, ok := store.GetResult("missing"); ok {
		t.Fatalf("GetResult must fail for unknown session")
	}

	store.AddSession(&Session{ID: "S1"})
	if _, ok := store.GetResult("S1"); ok {
		t.Fatalf("result must be absent before submission")
	}
	if ok := store.SetResult("S1", &SessionResult{SubmittedAt: time.Now().UTC()}); !ok {
		t.Fatalf("SetResult failed")
	}
	if _, ok := store.GetResult("S1"); !ok {
		t.Fatalf("result missing after SetResult")
	}

	if !store.DeleteSession("S1") {
		t.Fatalf("DeleteSession failed")
	}
	if store.DeleteSession("S1") {
		t.Fatalf("second delete must report missing")
	}
}
