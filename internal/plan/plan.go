// Package plan renders the completed wizard session as the
// downloadable plain-text niche plan.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nichekit-dev/nichekit/internal/wizard"
)

// The document layout is frozen: readers of previously exported plans
// depend on these exact section labels and spacing.
const documentTemplate = `
MEDITATION TEACHING NICHE PLAN
Generated: %s

YOUR STORY:
Challenge: %s
Transformation: %s

YOUR NICHE:
%s

Recognition Phrase:
%s

YOUR OFFERINGS:
%s

NEXT STEPS:
1. Choose ONE offering to pilot
2. Use Income Calculator for pricing
3. Find 5-10 beta students
4. Run pilot and gather feedback
5. Refine and officially launch
    `

// Document renders the plan text for a finished record. Missing
// fields render as empty strings rather than being omitted.
func Document(rec wizard.ResponseRecord, statement string, now time.Time) string {
	return fmt.Sprintf(documentTemplate,
		now.Format("January 02, 2006"),
		rec.Challenge,
		rec.Transformation,
		statement,
		rec.Recognition,
		rec.Offerings,
	)
}

// Filename returns the date-stamped export name, e.g.
// "niche_plan_20250131.txt".
func Filename(now time.Time) string {
	return "niche_plan_" + now.Format("20060102") + ".txt"
}

// Write renders the plan and writes it into dir, returning the full
// path of the written file.
func Write(dir string, rec wizard.ResponseRecord, statement string, now time.Time) (string, error) {
	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(Document(rec, statement, now)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write plan: %w", err)
	}
	return path, nil
}
