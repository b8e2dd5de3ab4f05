package nutrient

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Each source is asked for more rows than the caller wants so the relevance
// merge has enough candidates to rank across catalogs.
const sourceSearchLimit = 20

// relevanceLastRank sorts descriptions that do not contain the query
// substring after every description that does.
const relevanceLastRank = 1000

// Resolver fans a query out to its configured sources and merges the results
// by relevance. Catalogs are read-only, so a Resolver is safe for concurrent
// use.
type Resolver struct {
	sources []Source
}

// NewResolver builds a resolver over an ordered set of sources. The order
// decides ties between records with an identical relevance key.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Resolve queries every source concurrently, merges whatever came back and
// returns the limit most relevant records. Sources that fail or time out
// simply contribute nothing.
func (r *Resolver) Resolve(ctx context.Context, term string, limit int) []Record {
	if limit <= 0 {
		limit = 5
	}

	buckets := make([][]Record, len(r.sources))
	var wg sync.WaitGroup
	for i, src := range r.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			buckets[i] = src.Search(ctx, term, sourceSearchLimit)
		}(i, src)
	}
	wg.Wait()

	var merged []Record
	for _, bucket := range buckets {
		merged = append(merged, bucket...)
	}

	rankByRelevance(merged, term)

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// rankByRelevance orders records by where the query appears in the
// description (earlier is better, absent is last), then by description
// length ascending so exact names beat verbose ones. The sort is stable, so
// source order breaks remaining ties.
func rankByRelevance(records []Record, term string) {
	query := strings.ToLower(term)

	pos := func(r Record) int {
		idx := strings.Index(strings.ToLower(r.Description), query)
		if idx < 0 {
			return relevanceLastRank
		}
		return idx
	}

	sort.SliceStable(records, func(i, j int) bool {
		pi, pj := pos(records[i]), pos(records[j])
		if pi != pj {
			return pi < pj
		}
		return len(records[i].Description) < len(records[j].Description)
	})
}
