package nutrient

import (
	"context"
	"testing"
	"time"
)

type fakeSource struct {
	name    string
	records []Record
	delay   time.Duration
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Search(ctx context.Context, term string, limit int) []Record {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil
		}
	}
	if len(f.records) > limit {
		return f.records[:limit]
	}
	return f.records
}

func rec(description string, servingGrams float64) Record {
	return Record{Description: description, Calories: 100, Source: "test", ServingGrams: servingGrams}
}

func TestResolveMergeOrdering(t *testing.T) {
	// Exact match first, then substring matches by offset, then by length.
	a := &fakeSource{name: "local", records: []Record{
		rec("BBQ Chicken Breast Sandwich", 100),
		rec("Chicken Breast", 100),
	}}
	b := &fakeSource{name: "community", records: []Record{
		rec("Roasted Chicken Breast", 100),
	}}

	r := NewResolver(a, b)
	got := r.Resolve(context.Background(), "Chicken Breast", 5)

	want := []string{"Chicken Breast", "BBQ Chicken Breast Sandwich", "Roasted Chicken Breast"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Description != w {
			t.Errorf("rank %d: got %q, want %q", i, got[i].Description, w)
		}
	}
}

func TestResolveMissingSubstringRanksLast(t *testing.T) {
	a := &fakeSource{name: "local", records: []Record{
		rec("Protein Bar", 50),
		rec("Grilled Chicken", 100),
	}}

	r := NewResolver(a)
	got := r.Resolve(context.Background(), "chicken", 5)
	if len(got) != 2 || got[0].Description != "Grilled Chicken" {
		t.Fatalf("substring match should outrank non-match: %+v", got)
	}
}

func TestResolveTruncatesToLimit(t *testing.T) {
	a := &fakeSource{name: "local", records: []Record{
		rec("Rice", 100), rec("Rice Cake", 100), rec("Rice Pudding", 100), rec("Fried Rice", 100),
	}}

	r := NewResolver(a)
	got := r.Resolve(context.Background(), "rice", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}

func TestResolveSourceOrderBreaksTies(t *testing.T) {
	a := &fakeSource{name: "local", records: []Record{rec("Tuna", 100)}}
	b := &fakeSource{name: "community", records: []Record{rec("Tofu", 100)}}

	r := NewResolver(a, b)
	got := r.Resolve(context.Background(), "zzz", 5)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Description != "Tuna" || got[1].Description != "Tofu" {
		t.Errorf("stable merge should preserve source order on ties: %+v", got)
	}
}

func TestResolveEmptySourcesYieldEmpty(t *testing.T) {
	r := NewResolver(&fakeSource{name: "local"}, &fakeSource{name: "community"})
	if got := r.Resolve(context.Background(), "anything", 5); len(got) != 0 {
		t.Errorf("expected no records, got %+v", got)
	}
}

func TestResolveSlowSourceRespectsContext(t *testing.T) {
	fast := &fakeSource{name: "local", records: []Record{rec("Oatmeal", 100)}}
	slow := &fakeSource{name: "usda", delay: 5 * time.Second, records: []Record{rec("Oat Bran", 100)}}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	got := NewResolver(fast, slow).Resolve(ctx, "oat", 5)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("resolve blocked on slow source for %v", elapsed)
	}
	if len(got) != 1 || got[0].Description != "Oatmeal" {
		t.Errorf("expected only the fast source's record, got %+v", got)
	}
}
