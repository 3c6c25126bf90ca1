package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"depthjournal/internal/journal"
	"depthjournal/internal/media"
	"depthjournal/internal/store"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(store.NewMemory())
}

func testDraft() journal.Draft {
	return journal.Draft{
		Title:   "Morning swim",
		Content: strings.Repeat("Cold water, clear head. ", 5),
		Emotions: []journal.EmotionTag{
			{Name: "Joy", Intensity: 8},
			{Name: "Fear", Intensity: 0},
		},
		Sensory: journal.SensoryNote{Tactile: "cold shock then numbness"},
		Media: &media.Asset{
			Kind:         media.KindImage,
			Payload:      "data:image/jpeg;base64,AAAA",
			OriginalName: "lake.jpg",
		},
	}
}

func TestSignInSignOut(t *testing.T) {
	eng := testEngine(t)

	u, err := eng.SignIn("Alice@Example.com")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if u.ID != "alice-example-com" {
		t.Errorf("ID = %q", u.ID)
	}

	cur, err := eng.CurrentUser()
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if cur == nil || cur.ID != u.ID {
		t.Errorf("CurrentUser = %+v, want %+v", cur, u)
	}

	if err := eng.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	cur, _ = eng.CurrentUser()
	if cur != nil {
		t.Errorf("still signed in after SignOut: %+v", cur)
	}
}

func TestSignInRejectsBadEmail(t *testing.T) {
	eng := testEngine(t)

	_, err := eng.SignIn("no-at-sign")
	var verr *journal.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	// Failed sign-in must not create a session.
	cur, _ := eng.CurrentUser()
	if cur != nil {
		t.Errorf("session created on failed sign-in: %+v", cur)
	}
}

func TestCreateEntry(t *testing.T) {
	eng := testEngine(t)

	entry, err := eng.CreateEntry("alice-example-com", testDraft())
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected assigned ID")
	}
	// Zero-intensity Fear is dropped at save.
	if len(entry.Emotions) != 1 || entry.Emotions[0].Name != "Joy" {
		t.Errorf("emotions = %v, want only Joy", entry.Emotions)
	}
	// 8 emotion + 10 sensory + 2.4 content (120 chars) + 15 media
	if math.Abs(entry.RelevanceScore-35.4) > 1e-9 {
		t.Errorf("score = %v, want 35.4", entry.RelevanceScore)
	}
	if entry.RelevanceScore != journal.Score(*entry) {
		t.Errorf("frozen score %v differs from recomputation %v",
			entry.RelevanceScore, journal.Score(*entry))
	}
}

func TestCreateEntryInvalidUserID(t *testing.T) {
	eng := testEngine(t)

	for _, userID := range []string{"", "alice:999", "Alice@Example"} {
		_, err := eng.CreateEntry(userID, testDraft())
		var verr *journal.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("CreateEntry(%q) err = %v, want ValidationError", userID, err)
		}
	}
}

func TestCreateEntryValidationLeavesStoreEmpty(t *testing.T) {
	eng := testEngine(t)

	d := testDraft()
	d.Media = nil
	_, err := eng.CreateEntry("alice-example-com", d)
	var verr *journal.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	entries, _, err := eng.ListRanked("alice-example-com")
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected draft was persisted: %v", entries)
	}
}

func TestListRankedOrdering(t *testing.T) {
	eng := testEngine(t)

	low := testDraft()
	low.Emotions = nil
	low.Sensory = journal.SensoryNote{}

	high := testDraft()
	high.Emotions = []journal.EmotionTag{
		{Name: "Love", Intensity: 10},
		{Name: "Excitement", Intensity: 9},
	}

	if _, err := eng.CreateEntry("alice-example-com", low); err != nil {
		t.Fatalf("CreateEntry low: %v", err)
	}
	if _, err := eng.CreateEntry("alice-example-com", high); err != nil {
		t.Fatalf("CreateEntry high: %v", err)
	}

	entries, decodeErrs, err := eng.ListRanked("alice-example-com")
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(decodeErrs) != 0 {
		t.Fatalf("decode errors: %v", decodeErrs)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].RelevanceScore < entries[1].RelevanceScore {
		t.Errorf("not ranked descending: %v then %v",
			entries[0].RelevanceScore, entries[1].RelevanceScore)
	}
}

func TestDeleteEntryIdempotent(t *testing.T) {
	eng := testEngine(t)

	entry, err := eng.CreateEntry("alice-example-com", testDraft())
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if err := eng.DeleteEntry("alice-example-com", entry.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := eng.DeleteEntry("alice-example-com", entry.ID); err != nil {
		t.Errorf("second DeleteEntry: %v", err)
	}

	entries, _, _ := eng.ListRanked("alice-example-com")
	if len(entries) != 0 {
		t.Errorf("entry still listed after delete")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	eng := testEngine(t)

	if _, err := eng.CreateEntry("alice-example-com", testDraft()); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	entries, _, err := eng.ListRanked("bob-example-com")
	if err != nil {
		t.Fatalf("ListRanked: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("user A entry visible to user B: %v", entries)
	}
}
