package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// DuplicateIDError reports ids that appear more than once in a single list
type DuplicateIDError struct {
	List string
	IDs  []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s ids: %s", e.List, strings.Join(e.IDs, ", "))
}

// validatorInstance returns the shared validator with the content rules registered
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		// Posts either live under /blog/ on this site or are syndicated from elsewhere
		_ = v.RegisterValidation("post_link", func(fl validator.FieldLevel) bool {
			link := fl.Field().String()
			if slug, ok := strings.CutPrefix(link, "/blog/"); ok {
				return slugPattern.MatchString(strings.TrimSuffix(slug, "/"))
			}
			return strings.HasPrefix(link, "https://") || strings.HasPrefix(link, "http://")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field rules and work periods. Id uniqueness is left to
// CheckUniqueIDs so callers can decide whether duplicates are fatal.
func Validate(c models.Content) error {
	var errs []error

	if err := validatorInstance().Struct(c); err != nil {
		errs = append(errs, err)
	}

	for _, w := range c.Work {
		if w.Start.IsZero() || w.End.IsZero() {
			errs = append(errs, fmt.Errorf("work %s: start and end are required", w.ID))
			continue
		}
		if w.Start.Present {
			errs = append(errs, fmt.Errorf("work %s: start can't be Present", w.ID))
			continue
		}
		if w.Start.After(w.End) {
			errs = append(errs, fmt.Errorf("work %s: starts (%s) after it ends (%s)", w.ID, w.Start, w.End))
		}
	}

	return errors.Join(errs...)
}

// CheckUniqueIDs verifies that ids are pairwise distinct within each list.
// Social links are keyed by their slugified label.
func CheckUniqueIDs(c models.Content) error {
	var errs []error

	check := func(list string, ids []string) {
		if dups := duplicates(ids); len(dups) > 0 {
			errs = append(errs, &DuplicateIDError{List: list, IDs: dups})
		}
	}

	ids := make([]string, 0, len(c.Projects))
	for _, p := range c.Projects {
		ids = append(ids, p.ID)
	}
	check("project", ids)

	ids = ids[:0]
	for _, w := range c.Work {
		ids = append(ids, w.ID)
	}
	check("work", ids)

	ids = ids[:0]
	for _, p := range c.Posts {
		ids = append(ids, p.ID)
	}
	check("post", ids)

	ids = ids[:0]
	for _, s := range c.SocialLinks {
		ids = append(ids, s.ID())
	}
	check("social link", ids)

	return errors.Join(errs...)
}

// duplicates returns every id seen more than once, in first-seen order
func duplicates(ids []string) []string {
	seen := make(map[string]int, len(ids))
	var out []string
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			out = append(out, id)
		}
	}
	return out
}
