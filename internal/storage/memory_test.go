package storage

import (
	"context"
	"encoding/json"
	"testing"

	"viaggio/internal/core"
)

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := core.NewRecordSet[json.RawMessage]()
	in.Put("1", json.RawMessage(`{"a":1}`))
	if err := store.Save(ctx, SetExpenses, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating a loaded copy must not change what the store returns next.
	loaded, _ := store.Load(ctx, SetExpenses)
	loaded.Put("2", json.RawMessage(`{"a":2}`))

	again, _ := store.Load(ctx, SetExpenses)
	if again.Len() != 1 {
		t.Fatalf("load leaked a mutation: %v", again.IDs())
	}

	// And mutating the input after Save must not either.
	in.Delete("1")
	final, _ := store.Load(ctx, SetExpenses)
	if final.Len() != 1 {
		t.Fatalf("save did not copy its input")
	}
}
