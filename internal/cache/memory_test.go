package cache

import (
	"context"
	"testing"

	"whatshouldweeat/internal/model"
)

func TestMemorySessionCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemorySessionCache()

	sess := &model.Session{ID: "s_abc", MealType: model.MealFullMeal}
	if err := c.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "s_abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != "s_abc" || got.MealType != model.MealFullMeal {
		t.Fatalf("Get returned %+v", got)
	}

	if err := c.Delete(ctx, "s_abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = c.Get(ctx, "s_abc")
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestMemorySessionCacheMissIsNilNil(t *testing.T) {
	c := NewMemorySessionCache()
	got, err := c.Get(context.Background(), "never-set")
	if err != nil || got != nil {
		t.Fatalf("miss should be (nil, nil), got (%+v, %v)", got, err)
	}
}

func TestMemoryRecentOutcomesBounded(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryRecentOutcomes(3)

	for _, token := range []string{"pizza", "sushi", "tacos", "ramen", "salad"} {
		if err := c.Push(ctx, token); err != nil {
			t.Fatalf("Push: %v", err)
		}
	}

	got, err := c.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}

	want := []string{"salad", "ramen", "tacos"}
	if len(got) != len(want) {
		t.Fatalf("Recent returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Recent returned %v, want %v", got, want)
		}
	}
}

func TestMemoryUsageCacheCounts(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryUsageCache()

	count, err := c.Count(ctx, "client-a")
	if err != nil || count != 0 {
		t.Fatalf("fresh client count = (%d, %v), want (0, nil)", count, err)
	}

	for i := int64(1); i <= 3; i++ {
		n, err := c.Increment(ctx, "client-a")
		if err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if n != i {
			t.Fatalf("Increment returned %d, want %d", n, i)
		}
	}

	// Counters are per client
	count, err = c.Count(ctx, "client-b")
	if err != nil || count != 0 {
		t.Fatalf("other client count = (%d, %v), want (0, nil)", count, err)
	}
}
