package views

import (
	"fmt"

	"github.com/lucasaraujonrt/portfolio/internal/models"
)

// Row kinds that can be navigated through /go/{kind}/{id}
const (
	KindProject = "project"
	KindWork    = "work"
	KindSocial  = "social"
)

// Row is one visual entry of a content list
type Row struct {
	ID       string
	Kind     string
	Title    string
	Subtitle string
	Meta     string
	Href     string
	External bool
}

// GoPath is the tracked redirect for the row, or "" for rows without one
func (r Row) GoPath() string {
	if r.Kind == "" {
		return ""
	}
	return "/go/" + r.Kind + "/" + r.ID
}

// RowList is a list rendered inside one animated highlight container
type RowList struct {
	Name         string
	Rows         []Row
	EnableHover  bool
	ResetOnLeave bool
	Track        bool
	// DefaultID is highlighted before any interaction and after a reset
	DefaultID    string
}

// IDs returns the correlation ids in display order
func (l RowList) IDs() []string {
	ids := make([]string, len(l.Rows))
	for i, r := range l.Rows {
		ids[i] = r.ID
	}
	return ids
}

// validate checks that DefaultID, when set, names one of the rows
func (l RowList) validate() error {
	if l.DefaultID == "" {
		return nil
	}
	for _, r := range l.Rows {
		if r.ID == l.DefaultID {
			return nil
		}
	}
	return fmt.Errorf("%s: default id %q is not in the list", l.Name, l.DefaultID)
}

func newRowList(name string, rows []Row) RowList {
	return RowList{Name: name, Rows: rows, EnableHover: true, ResetOnLeave: true}
}

// ProjectRows renders one row per project, linking to the project site
func ProjectRows(projects []models.Project) RowList {
	rows := make([]Row, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, Row{
			ID:       p.ID,
			Kind:     KindProject,
			Title:    p.Name,
			Subtitle: p.Description,
			Href:     p.Link,
			External: true,
		})
	}
	return newRowList("projects", rows)
}

// WorkRows renders one row per position, in the order given
func WorkRows(work []models.WorkExperience) RowList {
	rows := make([]Row, 0, len(work))
	for _, w := range work {
		rows = append(rows, Row{
			ID:       w.ID,
			Kind:     KindWork,
			Title:    w.Company,
			Subtitle: w.Title,
			Meta:     w.Start.String() + " - " + w.End.String(),
			Href:     w.Link,
			External: true,
		})
	}
	return newRowList("work", rows)
}

// PostRows renders one row per post. Hosted posts link to their /blog/
// route exactly; syndicated ones open the original article.
func PostRows(posts []models.BlogPost) RowList {
	rows := make([]Row, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, Row{
			ID:       p.ID,
			Title:    p.Title,
			Subtitle: p.Description,
			Href:     p.Link,
			External: p.External(),
		})
	}
	return newRowList("posts", rows)
}

// SocialRows renders one row per social link
func SocialRows(links []models.SocialLink) RowList {
	rows := make([]Row, 0, len(links))
	for _, l := range links {
		rows = append(rows, Row{
			ID:       l.ID(),
			Kind:     KindSocial,
			Title:    l.Label,
			Href:     l.Link,
			External: true,
		})
	}
	return newRowList("social", rows)
}
