package state

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"cordcore/pkg/codec"
)

func TestOpenDefaultsToSQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CORDCORE_STATE_DRIVER", "")
	t.Setenv("CORDCORE_STATE_PATH", filepath.Join(dir, "state.db"))
	store, err := Open(context.Background())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if _, found, err := store.Load(context.Background()); err != nil || found {
		t.Fatalf("fresh store Load = found %v, err %v", found, err)
	}
}

func TestOpenMemoryDriver(t *testing.T) {
	ctx := context.Background()
	t.Setenv("CORDCORE_STATE_DRIVER", "memory")
	store, err := Open(ctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	snap := Snapshot{
		FormatVersion: FormatVersion,
		Users:         []codec.Payload{{"id": "202302160015", "username": "suika"}},
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("Load = found %v, err %v", found, err)
	}
	if len(loaded.Users) != 1 {
		t.Fatalf("loaded %d users, want 1", len(loaded.Users))
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Setenv("CORDCORE_STATE_DRIVER", "etcd")
	if _, err := Open(context.Background()); err == nil || !strings.Contains(err.Error(), "unknown state driver") {
		t.Fatalf("expected unknown driver error, got %v", err)
	}
}
