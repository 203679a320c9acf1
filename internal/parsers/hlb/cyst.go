package hlb

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/aaltjes/internal/core/domain"
)

// cystWindow is the number of lines searched from the section marker on.
const cystWindow = 10

var (
	cystMarker = regexp.MustCompile(`(?i)Cysteaaltjes`)
	cystRow    = regexp.MustCompile(`(?i)(?:Aardappelcysteaaltjes\s+)?(\d+)\s+(\d+)\s+([A-Za-z][A-Za-z ]+)`)
)

// extractCyst returns the cyst result of the report, or nil when the
// cyst section is absent or holds no result row.
func extractCyst(lines []string) *domain.CystResult {
	start := -1
	for i, line := range lines {
		if cystMarker.MatchString(line) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	end := min(len(lines), start+cystWindow)
	for _, line := range lines[start:end] {
		m := cystRow.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return &domain.CystResult{
			CystCount:        atoiPtr(m[1]),
			LLECount:         atoiPtr(m[2]),
			InfestationGrade: strings.TrimSpace(m[3]),
		}
	}
	return nil
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
