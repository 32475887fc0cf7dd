package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "reports", "papercheck.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, Comparison{
		OriginalPath:   "orig.txt",
		SuspectPath:    "susp.txt",
		OriginalTokens: 10,
		SuspectTokens:  8,
		LCSLength:      7,
		Score:          0.7,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Errorf("Record did not fill ID/CreatedAt: %+v", first)
	}

	// Distinct timestamps keep the ordering assertion meaningful.
	time.Sleep(2 * time.Millisecond)

	second, err := store.Record(ctx, Comparison{
		OriginalPath: "orig.txt",
		SuspectPath:  "other.txt",
		Score:        0.25,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d rows, want 2", len(recent))
	}
	if recent[0].ID != second.ID {
		t.Errorf("newest comparison should come first, got %s", recent[0].ID)
	}
	if recent[1].Score != 0.7 || recent[1].LCSLength != 7 {
		t.Errorf("stored fields mismatch: %+v", recent[1])
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, Comparison{OriginalPath: "a", SuspectPath: "b"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Recent(3) returned %d rows", len(recent))
	}
}

func TestRecentEmptyStore(t *testing.T) {
	store := openTestStore(t)

	recent, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no rows, got %d", len(recent))
	}
}
