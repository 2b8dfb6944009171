package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory("")
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenMemoryUniqueName(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if a.Name() == "" || a.Name() == b.Name() {
		t.Errorf("Name() = %q and %q, expected distinct non-empty names", a.Name(), b.Name())
	}

	if _, err := a.SaveMatch(MatchRecord{Variant: "pong"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	matches, err := b.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected separate databases, second store has %d matches", len(matches))
	}
}

func TestSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	records := []MatchRecord{
		{Variant: "pong", Session: "local", LeftScore: 10, RightScore: 4, Winner: "left", Ticks: 3000, FinishedAt: base},
		{Variant: "pong", Session: "local", LeftScore: 7, RightScore: 10, Winner: "right", Ticks: 4200, FinishedAt: base.Add(time.Minute)},
		{Variant: "pong-classic", Session: "ssh-1", LeftScore: 30, RightScore: 28, Winner: "left", Ticks: 9000, FinishedAt: base.Add(2 * time.Minute)},
	}
	for _, rec := range records {
		id, err := store.SaveMatch(rec)
		if err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
		if id == uuid.Nil {
			t.Error("SaveMatch() returned nil ID")
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}

	// Newest first
	if recent[0].Variant != "pong-classic" {
		t.Errorf("Expected newest match to be pong-classic, got %s", recent[0].Variant)
	}
	if !recent[2].FinishedAt.Equal(base) {
		t.Errorf("FinishedAt = %v, expected %v", recent[2].FinishedAt, base)
	}
	if recent[2].Ticks != 3000 || recent[2].LeftScore != 10 || recent[2].Winner != "left" {
		t.Errorf("Unexpected oldest match: %+v", recent[2])
	}

	pong, err := store.MatchesByVariant("pong", 10)
	if err != nil {
		t.Fatalf("MatchesByVariant() failed: %v", err)
	}
	if len(pong) != 2 {
		t.Errorf("Expected 2 pong matches, got %d", len(pong))
	}

	limited, err := store.RecentMatches(1)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected limit 1, got %d", len(limited))
	}
}

func TestSaveMatchKeepsID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.New()

	got, err := store.SaveMatch(MatchRecord{ID: want, Variant: "pong"})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if got != want {
		t.Errorf("SaveMatch() = %v, expected %v", got, want)
	}

	matches, _ := store.RecentMatches(1)
	if len(matches) != 1 || matches[0].ID != want {
		t.Errorf("Stored ID mismatch: %+v", matches)
	}
	if matches[0].FinishedAt.IsZero() {
		t.Error("FinishedAt was not filled in")
	}

	if _, err := store.SaveMatch(MatchRecord{ID: want, Variant: "pong"}); err == nil {
		t.Error("Expected duplicate ID to fail")
	}
}

func TestSaveMatchRequiresVariant(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveMatch(MatchRecord{}); err == nil {
		t.Error("SaveMatch() expected error without variant")
	}
}

func TestMatchesBySession(t *testing.T) {
	store := openTestStore(t)
	base := time.UnixMilli(1_700_000_000_000)

	store.SaveMatch(MatchRecord{Variant: "pong", Session: "a", LeftScore: 1, FinishedAt: base.Add(time.Second)})
	store.SaveMatch(MatchRecord{Variant: "pong", Session: "b", FinishedAt: base})
	store.SaveMatch(MatchRecord{Variant: "pong-endless", Session: "a", LeftScore: 2, FinishedAt: base.Add(2 * time.Second)})

	matches, err := store.MatchesBySession("a")
	if err != nil {
		t.Fatalf("MatchesBySession() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].LeftScore != 1 || matches[1].LeftScore != 2 {
		t.Errorf("Expected oldest first, got %+v", matches)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("pong")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty != (VariantStats{Variant: "pong"}) {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.SaveMatch(MatchRecord{Variant: "pong", Winner: "left", Ticks: 100})
	store.SaveMatch(MatchRecord{Variant: "pong", Winner: "left", Ticks: 500})
	store.SaveMatch(MatchRecord{Variant: "pong", Winner: "right", Ticks: 300})
	store.SaveMatch(MatchRecord{Variant: "pong", Ticks: 50})
	store.SaveMatch(MatchRecord{Variant: "pong-classic", Winner: "right", Ticks: 9000})

	stats, err := store.Stats("pong")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := VariantStats{Variant: "pong", Played: 4, LeftWins: 2, RightWins: 1, LongestTicks: 500}
	if stats != want {
		t.Errorf("Stats() = %+v, expected %+v", stats, want)
	}

	all, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want = VariantStats{Played: 5, LeftWins: 2, RightWins: 2, LongestTicks: 9000}
	if all != want {
		t.Errorf("Stats(\"\") = %+v, expected %+v", all, want)
	}
}

func TestCloseDiscardsHistory(t *testing.T) {
	store, err := OpenMemory("")
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	name := store.Name()
	store.SaveMatch(MatchRecord{Variant: "pong"})
	store.Close()

	reopened, err := OpenMemory(name)
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer reopened.Close()

	matches, _ := reopened.RecentMatches(10)
	if len(matches) != 0 {
		t.Errorf("Expected empty database after close, got %d matches", len(matches))
	}
}
