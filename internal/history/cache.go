package history

import (
	"encoding/json"
	"os"
)

// loadCache returns the cached summary when it exists, parses, and was built
// today with the same window.
func (a *Analyzer) loadCache() (Summary, bool) {
	if a.cachePath == "" {
		return Summary{}, false
	}
	data, err := os.ReadFile(a.cachePath)
	if err != nil {
		return Summary{}, false
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return Summary{}, false
	}
	if s.BuiltDate != a.now().Format(dateLayout) || s.DaysAnalyzed != a.days {
		return Summary{}, false
	}
	return s, true
}

// saveCache writes the summary atomically: temp file in the same directory,
// then rename. Failures are ignored; the cache is an optimization only.
func (a *Analyzer) saveCache(s Summary) {
	if a.cachePath == "" {
		return
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return
	}
	tmp := a.cachePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return
	}
	if err := os.Rename(tmp, a.cachePath); err != nil {
		os.Remove(tmp)
	}
}
