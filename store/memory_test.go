package store

import (
	"context"
	"testing"
	"time"

	"github.com/lumina-edu/edukit/core"
)

func TestMemoryStoreGetSet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if _, err := ms.Get(ctx, "missing"); !core.IsStoreNotFound(err) {
		t.Errorf("Get(missing) error = %v, want not found", err)
	}

	if err := ms.Set(ctx, "k1", []byte("v1")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := ms.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("Get() = %q, want v1", got)
	}

	if err := ms.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := ms.Get(ctx, "k1"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after Delete error = %v, want not found", err)
	}
}

func TestMemoryStoreTTL(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	if err := ms.Set(ctx, "k1", []byte("v1"), 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := ms.Get(ctx, "k1"); err != nil {
		t.Fatalf("Get before expiry error = %v", err)
	}

	time.Sleep(1100 * time.Millisecond)
	if _, err := ms.Get(ctx, "k1"); !core.IsStoreNotFound(err) {
		t.Errorf("Get after expiry error = %v, want not found", err)
	}
}

func TestMemoryStoreBatch(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	kvs := map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}
	if err := ms.BatchSet(ctx, kvs); err != nil {
		t.Fatalf("BatchSet() error = %v", err)
	}

	got, err := ms.BatchGet(ctx, []string{"a", "b", "missing"})
	if err != nil {
		t.Fatalf("BatchGet() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("BatchGet() len = %d, want 2 (missing key skipped)", len(got))
	}
	if string(got["a"]) != "1" || string(got["b"]) != "2" {
		t.Errorf("BatchGet() = %v", got)
	}
}

func TestMemoryStoreZSet(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	// 分数降序；同分按 member 升序
	ms.ZAdd(ctx, "popular", 10, "m2")
	ms.ZAdd(ctx, "popular", 30, "m1")
	ms.ZAdd(ctx, "popular", 20, "m3")
	ms.ZAdd(ctx, "popular", 20, "m0")

	got, err := ms.ZRange(ctx, "popular", 0, -1)
	if err != nil {
		t.Fatalf("ZRange() error = %v", err)
	}
	want := []string{"m1", "m0", "m3", "m2"}
	if len(got) != len(want) {
		t.Fatalf("ZRange() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	top2, err := ms.ZRange(ctx, "popular", 0, 1)
	if err != nil {
		t.Fatalf("ZRange(0,1) error = %v", err)
	}
	if len(top2) != 2 || top2[0] != "m1" || top2[1] != "m0" {
		t.Errorf("ZRange(0,1) = %v, want [m1 m0]", top2)
	}

	score, err := ms.ZScore(ctx, "popular", "m1")
	if err != nil || score != 30 {
		t.Errorf("ZScore() = %v, %v, want 30, nil", score, err)
	}
	if _, err := ms.ZScore(ctx, "popular", "ghost"); !core.IsStoreNotFound(err) {
		t.Errorf("ZScore(ghost) error = %v, want not found", err)
	}
}

func TestMemoryStoreHash(t *testing.T) {
	ms := NewMemoryStore()
	defer ms.Close()
	ctx := context.Background()

	ms.HSet(ctx, "profile:u1", "style", []byte("visual"))
	ms.HSet(ctx, "profile:u1", "pace", []byte("fast"))

	got, err := ms.HGet(ctx, "profile:u1", "style")
	if err != nil || string(got) != "visual" {
		t.Errorf("HGet() = %q, %v, want visual, nil", got, err)
	}

	all, err := ms.HGetAll(ctx, "profile:u1")
	if err != nil {
		t.Fatalf("HGetAll() error = %v", err)
	}
	if len(all) != 2 || string(all["pace"]) != "fast" {
		t.Errorf("HGetAll() = %v", all)
	}

	if _, err := ms.HGet(ctx, "profile:u1", "ghost"); !core.IsStoreNotFound(err) {
		t.Errorf("HGet(ghost) error = %v, want not found", err)
	}
}
