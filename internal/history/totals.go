package history

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const totalsMarker = "## Daily Totals"

// Logs use assorted dash characters in front of totals lines.
const dash = `[-–—]`

var (
	totalCaloriesRe = regexp.MustCompile(`(?i)` + dash + `\s*Calories:\s*~?\s*([0-9.,]+)`)
	totalProteinRe  = regexp.MustCompile(`(?i)` + dash + `\s*Protein:\s*~?\s*([0-9.,]+)g`)
	totalCarbsRe    = regexp.MustCompile(`(?i)` + dash + `\s*Carbs:\s*~?\s*([0-9.,]+)g`)
	totalFatRe      = regexp.MustCompile(`(?i)` + dash + `\s*Fat:\s*~?\s*([0-9.,]+)g`)
	totalSodiumRe   = regexp.MustCompile(`(?i)` + dash + `\s*Sodium:\s*~?\s*([0-9.,]+)\s*mg`)
	totalFiberRe    = regexp.MustCompile(`(?i)` + dash + `\s*Fiber:\s*~?\s*([0-9.,]+)g`)
)

// Consumed holds the macro totals already eaten on a day, taken from the
// log's Daily Totals section. All fields are zero when the section is absent.
type Consumed struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fat"`
	SodiumMg int `json:"sodium"`
	FiberG   int `json:"fiber"`
}

// ConsumedTotals parses the Daily Totals section of one day's log.
func (a *Analyzer) ConsumedTotals(date string) Consumed {
	var c Consumed

	data, err := os.ReadFile(filepath.Join(a.dietDir, date+".md"))
	if err != nil {
		return c
	}

	content := string(data)
	if idx := strings.Index(content, summaryMarker); idx != -1 {
		content = content[:idx]
	}

	idx := strings.Index(content, totalsMarker)
	if idx == -1 {
		return c
	}
	section := content[idx:]
	if len(section) > 500 {
		section = section[:500]
	}

	c.Calories = matchTotal(totalCaloriesRe, section)
	c.ProteinG = matchTotal(totalProteinRe, section)
	c.CarbsG = matchTotal(totalCarbsRe, section)
	c.FatG = matchTotal(totalFatRe, section)
	c.SodiumMg = matchTotal(totalSodiumRe, section)
	c.FiberG = matchTotal(totalFiberRe, section)
	return c
}

func matchTotal(re *regexp.Regexp, section string) int {
	m := re.FindStringSubmatch(section)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	return int(v)
}
