package sqlite

import (
	"context"
	"testing"

	"github.com/R0Xofficial/MyCatBot/internal/db"
)

func TestSudoGrantAndRevoke(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, err := NewSQLiteClient(ctx, t.TempDir(), "test.db")
	if err != nil {
		t.Fatalf("new sqlite client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	added, err := client.AddSudo(ctx, &db.SudoEntry{UserID: 500, GrantedBy: 1})
	if err != nil {
		t.Fatalf("add sudo: %v", err)
	}
	if !added {
		t.Fatal("grant reported no change")
	}

	added, err = client.AddSudo(ctx, &db.SudoEntry{UserID: 500, GrantedBy: 2})
	if err != nil {
		t.Fatalf("second add sudo: %v", err)
	}
	if added {
		t.Fatal("repeated grant must be a no-op")
	}

	isSudo, err := client.IsSudo(ctx, 500)
	if err != nil {
		t.Fatalf("is sudo: %v", err)
	}
	if !isSudo {
		t.Fatal("granted user not reported as sudo")
	}

	removed, err := client.RemoveSudo(ctx, 500)
	if err != nil {
		t.Fatalf("remove sudo: %v", err)
	}
	if !removed {
		t.Fatal("revoke of present grant reported no change")
	}

	removed, err = client.RemoveSudo(ctx, 500)
	if err != nil {
		t.Fatalf("second remove sudo: %v", err)
	}
	if removed {
		t.Fatal("revoke of absent grant reported a change")
	}

	isSudo, err = client.IsSudo(ctx, 500)
	if err != nil {
		t.Fatalf("is sudo after revoke: %v", err)
	}
	if isSudo {
		t.Fatal("revoked user still reported as sudo")
	}
}

func TestListSudoReturnsGrants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, err := NewSQLiteClient(ctx, t.TempDir(), "test.db")
	if err != nil {
		t.Fatalf("new sqlite client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	entries, err := client.ListSudo(ctx)
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty sudoers, got %d entries", len(entries))
	}

	for _, id := range []int64{601, 602} {
		if _, err := client.AddSudo(ctx, &db.SudoEntry{UserID: id, GrantedBy: 1}); err != nil {
			t.Fatalf("add %d: %v", id, err)
		}
	}

	entries, err = client.ListSudo(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 grants, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.GrantedBy != 1 {
			t.Fatalf("granted_by not persisted: %#v", entry)
		}
	}
}
