package content

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasaraujonrt/portfolio/internal/database"
	"github.com/lucasaraujonrt/portfolio/internal/models"
)

func TestSeedIsValid(t *testing.T) {
	require.NoError(t, Validate(Seed()))
}

func TestSeedListSizes(t *testing.T) {
	c := Seed()
	assert.Len(t, c.Projects, 2)
	assert.Len(t, c.Work, 5)
	assert.Len(t, c.Posts, 4)
	assert.Len(t, c.SocialLinks, 6)
	assert.Equal(t, "lucasaraujo8186@email.com", c.Profile.Email)
}

func TestCheckUniqueIDsFlagsDuplicates(t *testing.T) {
	c := Seed()
	c.Posts = append(c.Posts, models.BlogPost{ID: "blog-5", Title: "again", Link: "/blog/again"})
	c.Projects = append(c.Projects, c.Projects[0], c.Projects[0])

	err := CheckUniqueIDs(c)
	require.Error(t, err)

	var dup *DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Contains(t, err.Error(), "duplicate post ids: blog-5")
	assert.Contains(t, err.Error(), "duplicate project ids: project1")
}

func TestCheckUniqueIDsSocialLabels(t *testing.T) {
	c := Seed()
	c.SocialLinks = append(c.SocialLinks, models.SocialLink{Label: "GitHub", Link: "https://github.com/x"})

	err := CheckUniqueIDs(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "social link ids: github")
}

func TestValidateRejectsBadEntries(t *testing.T) {
	c := Seed()
	c.Posts[0].Link = "blog/trello"
	c.Work[2].Start = models.Year(2030)
	c.Work[1].End = models.Period{}

	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post_link")
	assert.Contains(t, err.Error(), "work work3: starts (2030) after it ends (2024)")
	assert.Contains(t, err.Error(), "work work1: start and end are required")
}

func TestSortWorkComparesStartBeforeEnd(t *testing.T) {
	work := []models.WorkExperience{
		{ID: "jan", Start: models.MustPeriod("2021 - Jan"), End: models.Present},
		{ID: "jun", Start: models.MustPeriod("2021 - Jun"), End: models.MustPeriod("2021 - Dec")},
		{ID: "year", Start: models.MustPeriod("2021"), End: models.MustPeriod("2023")},
		{ID: "old", Start: models.MustPeriod("2019"), End: models.Present},
	}

	sorted := SortWork(work[:2])
	assert.Equal(t, "jun", sorted[0].ID)
	assert.Equal(t, "jan", sorted[1].ID)

	// a bare year ties with its months, so the later end wins
	sorted = SortWork([]models.WorkExperience{work[1], work[2]})
	assert.Equal(t, "year", sorted[0].ID)
	assert.Equal(t, "jun", sorted[1].ID)

	sorted = SortWork([]models.WorkExperience{work[3], work[0]})
	assert.Equal(t, "jan", sorted[0].ID)
}

func TestValidateRejectsPostLinksOutsideBlog(t *testing.T) {
	for _, link := range []string{"/blog/../../escaped", "/blog/a/b", "/blog/", "/blog/Trello"} {
		c := Seed()
		c.Posts[0].Link = link
		assert.ErrorContains(t, Validate(c), "post_link", link)
	}

	c := Seed()
	c.Posts[0].Link = "/blog/trello/"
	assert.NoError(t, Validate(c))
}

func TestSortWorkUsesExplicitDates(t *testing.T) {
	seed := Seed().Work

	shuffled := []models.WorkExperience{seed[4], seed[3], seed[0], seed[2], seed[1]}
	sorted := SortWork(shuffled)

	ids := make([]string, len(sorted))
	for i, w := range sorted {
		ids[i] = w.ID
	}
	assert.Equal(t, []string{"work2", "work1", "work3", "work4", "work5"}, ids)

	// the input slice is left alone
	assert.Equal(t, "work5", shuffled[0].ID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Seed())

	posts, err := store.Posts(ctx)
	require.NoError(t, err)
	posts[0].Title = "mutated"

	again, err := store.Posts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Trello API Integration: A Simple Solution for Support Tickets", again[0].Title)
}

func TestSnapshotMatchesSource(t *testing.T) {
	c, err := Snapshot(context.Background(), NewMemoryStore(Seed()))
	require.NoError(t, err)
	assert.Equal(t, Seed(), c)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Options{Kind: KindSQLite, SQLitePath: filepath.Join(t.TempDir(), "content.db")})
	require.NoError(t, err)
	defer store.Close()

	got, err := Snapshot(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, Seed(), got)

	// a second seed is a no-op
	sqlStore := store.(*SQLStore)
	require.NoError(t, sqlStore.Seed(ctx, models.Content{}))
	projects, err := sqlStore.Projects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, database.RunMigrations(url))

	store, err := Open(ctx, Options{Kind: KindPostgres, DatabaseURL: url})
	require.NoError(t, err)
	defer store.Close()

	sqlStore := store.(*SQLStore)
	require.NoError(t, sqlStore.Seed(ctx, Seed()))

	posts, err := sqlStore.Posts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, posts)
}

func TestRebind(t *testing.T) {
	pg := &SQLStore{dialect: DialectPostgres}
	assert.Equal(t, "VALUES ($1, $2, $3)", pg.rebind("VALUES (?, ?, ?)"))

	lite := &SQLStore{dialect: DialectSQLite}
	assert.Equal(t, "VALUES (?, ?)", lite.rebind("VALUES (?, ?)"))
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open(context.Background(), Options{Kind: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown content store "redis"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := `
profile:
  name: Test Person
  handle: "@test"
  email: test@example.com
projects:
  - id: p1
    name: First
    link: https://example.com/first
work:
  - id: w1
    company: Acme
    title: Engineer
    start: "2021 - Mar"
    end: Present
    link: https://acme.example
posts:
  - id: blog-1
    title: X
    link: /blog/x
  - id: blog-2
    title: Y
    link: /blog/y
social_links:
  - label: Github
    link: https://github.com/test
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Person", c.Profile.Name)
	require.Len(t, c.Posts, 2)
	assert.Equal(t, "X", c.Posts[0].Title)
	assert.True(t, c.Work[0].End.Present)
}

func TestLoadFileLeavesDuplicatesToCheckUniqueIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := `
profile: {name: A, handle: "@a", email: a@example.com}
posts:
  - {id: blog-1, title: X, link: /blog/x}
  - {id: blog-1, title: Y, link: /blog/y}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Posts, 2)

	var dup *DuplicateIDError
	require.True(t, errors.As(CheckUniqueIDs(c), &dup))
	assert.Equal(t, []string{"blog-1"}, dup.IDs)
}

func TestSQLiteStoreKeepsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	c := Seed()
	c.Posts = append(c.Posts, models.BlogPost{ID: c.Posts[0].ID, Title: "again", Link: "/blog/again"})

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "content.db"))
	require.NoError(t, err)
	sqlStore := NewSQLStore(db, DialectSQLite)
	defer sqlStore.Close()

	require.NoError(t, sqlStore.Seed(ctx, c))

	posts, err := sqlStore.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 5)
	assert.Equal(t, posts[0].ID, posts[4].ID)
	assert.Equal(t, "/blog/again", posts[4].Link)
}

func TestEverySeedPostHasABody(t *testing.T) {
	for _, p := range Seed().Posts {
		_, err := fs.Stat(PostBodies(), p.Slug()+".html")
		assert.NoError(t, err, p.Link)
	}
}
