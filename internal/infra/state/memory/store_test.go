package memory

import (
	"context"
	"testing"

	"cordcore/pkg/codec"
	"cordcore/pkg/state"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	if _, found, err := store.Load(ctx); err != nil || found {
		t.Fatalf("Load on empty store = found %v, err %v", found, err)
	}

	snap := state.Snapshot{
		FormatVersion: state.FormatVersion,
		Users:         []codec.Payload{{"id": "202302160015", "username": "suika"}},
	}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("Load = found %v, err %v", found, err)
	}
	if len(loaded.Users) != 1 || loaded.Users[0]["username"] != "suika" {
		t.Fatalf("loaded users = %v", loaded.Users)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestStoreIsolatesSavedPayloads(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	payload := codec.Payload{"id": "1", "username": "koakuma"}
	if err := store.Save(ctx, state.Snapshot{FormatVersion: state.FormatVersion, Users: []codec.Payload{payload}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	payload["username"] = "mutated"

	loaded, _, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := loaded.Users[0]["username"]; got != "koakuma" {
		t.Fatalf("stored payload observed caller mutation: %v", got)
	}
}
