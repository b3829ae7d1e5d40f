package content

import (
	"sort"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// SortWork orders work experience most recent first.
//
// Entries are compared by start, then by end (Present ends latest). A bare
// start year ties with any month of that year. Entries that still tie keep
// their list order.
func SortWork(work []models.WorkExperience) []models.WorkExperience {
	out := append([]models.WorkExperience(nil), work...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Start, out[j].Start
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Month != 0 && b.Month != 0 && a.Month != b.Month {
			return a.Month > b.Month
		}
		return out[i].End.After(out[j].End)
	})
	return out
}
