package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestStore_SetGetDelete(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()
	s := NewStore(client, "abc", 0)

	if _, ok, err := s.Get(ctx, "user"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "user", `{"id":"1"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := mr.Get("tradesim:ws:abc:user"); err != nil || got != `{"id":"1"}` {
		t.Fatalf("expected namespaced key, got %q (%v)", got, err)
	}

	v, ok, err := s.Get(ctx, "user")
	if err != nil || !ok || v != `{"id":"1"}` {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}

	_ = s.Set(ctx, "userType", "facilitator")
	if err := s.Delete(ctx, "user", "userType"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("tradesim:ws:abc:user") || mr.Exists("tradesim:ws:abc:userType") {
		t.Fatal("expected keys to be deleted")
	}
}

func TestStore_WorkspacesAreIsolated(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()
	f := NewFactory(client, 0)

	_ = f.ForWorkspace("a").Set(ctx, "userType", "facilitator")

	if _, ok, _ := f.ForWorkspace("b").Get(ctx, "userType"); ok {
		t.Fatal("workspace b must not see workspace a's keys")
	}
	if v, ok, _ := f.ForWorkspace("a").Get(ctx, "userType"); !ok || v != "facilitator" {
		t.Fatalf("expected value from a fresh store over the same workspace, got %q", v)
	}
}

func TestStore_TTL(t *testing.T) {
	mr, client := newTestClient(t)
	s := NewStore(client, "abc", time.Hour)

	_ = s.Set(context.Background(), "user", "x")
	if ttl := mr.TTL("tradesim:ws:abc:user"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}

	mr.FastForward(2 * time.Hour)
	if _, ok, _ := s.Get(context.Background(), "user"); ok {
		t.Fatal("expected key to expire")
	}
}

func TestStore_ServerDown(t *testing.T) {
	mr, client := newTestClient(t)
	s := NewStore(client, "abc", 0)
	mr.Close()

	if _, _, err := s.Get(context.Background(), "user"); err == nil {
		t.Fatal("expected error when redis is down")
	}
	if err := NewFactory(client, 0).Ping(context.Background()); err == nil {
		t.Fatal("expected ping to fail")
	}
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	addr := mr.Addr()

	client, err := Connect(context.Background(), Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_ = client.Close()

	mr.Close()
	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatal("expected connect to fail against a stopped server")
	}
}
