package memory

import (
	"context"
	"testing"
)

func TestFactory_SameWorkspaceSharesData(t *testing.T) {
	f := NewFactory()
	ctx := context.Background()

	if err := f.ForWorkspace("a").Set(ctx, "user", "x"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if v, ok, _ := f.ForWorkspace("a").Get(ctx, "user"); !ok || v != "x" {
		t.Fatalf("expected x, got %q (ok=%v)", v, ok)
	}
	if _, ok, _ := f.ForWorkspace("b").Get(ctx, "user"); ok {
		t.Fatal("workspace b must be empty")
	}
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Set(ctx, "user", "x")
	_ = s.Set(ctx, "userType", "participant")

	if err := s.Delete(ctx, "user", "userType", "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "user"); ok {
		t.Fatal("expected user to be deleted")
	}
}
