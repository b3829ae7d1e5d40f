package views

import (
	"html/template"

	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/typography"
)

// Page names, one template each
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageBlog     = "blog"
	PagePost     = "post"
	PageNotFound = "not_found"
)

// Page is the data every template receives
type Page struct {
	Name     string
	Title    string
	Profile  models.Profile
	Projects RowList
	Work     RowList
	Posts    RowList
	Social   RowList
	Post     models.BlogPost
	Body     template.HTML
	Theme    typography.Theme
}

// HomePage is the introduction followed by the about, projects and work sections
func HomePage(c models.Content) Page {
	return Page{
		Name:     PageHome,
		Title:    c.Profile.Name,
		Profile:  c.Profile,
		Projects: ProjectRows(c.Projects),
		Work:     WorkRows(c.Work),
		Social:   SocialRows(c.SocialLinks),
	}
}

// AboutPage shows the profile card and social links
func AboutPage(c models.Content) Page {
	return Page{
		Name:    PageAbout,
		Title:   "About me · " + c.Profile.Name,
		Profile: c.Profile,
		Social:  SocialRows(c.SocialLinks),
	}
}

// BlogPage lists every post
func BlogPage(c models.Content) Page {
	return Page{
		Name:    PageBlog,
		Title:   "Blog · " + c.Profile.Name,
		Profile: c.Profile,
		Posts:   PostRows(c.Posts),
	}
}

// PostPage shows a single hosted post. body may be empty.
func PostPage(profile models.Profile, post models.BlogPost, body template.HTML) Page {
	return Page{
		Name:    PagePost,
		Title:   post.Title + " · " + profile.Name,
		Profile: profile,
		Post:    post,
		Body:    body,
	}
}

// NotFoundPage is rendered for unknown routes and slugs
func NotFoundPage(profile models.Profile) Page {
	return Page{
		Name:    PageNotFound,
		Title:   "Not found · " + profile.Name,
		Profile: profile,
	}
}
