package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/security"
	"github.com/lucasaraujonrt/portfolio/internal/services"
)

func setupSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv := New(&Tools{
		Content: services.NewContentService(content.NewMemoryStore(content.Seed()), nil),
		Posts: services.NewPostService(fstest.MapFS{
			"trello.html": {Data: []byte("<p>Drag and drop</p>")},
		}, security.NewPostSanitizer()),
	}, "test")

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err := srv.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text, result.IsError
}

func TestListTools(t *testing.T) {
	session := setupSession(t)

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_profile", "list_projects", "list_work", "list_posts", "get_post", "list_social"}, names)
}

func TestListProjectsTool(t *testing.T) {
	text, isErr := callTool(t, setupSession(t), "list_projects", map[string]any{})
	require.False(t, isErr, text)

	var projects []models.Project
	require.NoError(t, json.Unmarshal([]byte(text), &projects))
	assert.Equal(t, content.Seed().Projects, projects)
}

func TestListWorkAndSocialTools(t *testing.T) {
	session := setupSession(t)

	text, isErr := callTool(t, session, "list_work", map[string]any{})
	require.False(t, isErr, text)
	var work []models.WorkExperience
	require.NoError(t, json.Unmarshal([]byte(text), &work))
	assert.Equal(t, content.SortWork(content.Seed().Work), work)

	text, isErr = callTool(t, session, "list_social", map[string]any{})
	require.False(t, isErr, text)
	assert.Contains(t, text, `"id": "github"`)
}

func TestGetProfileTool(t *testing.T) {
	text, isErr := callTool(t, setupSession(t), "get_profile", map[string]any{})
	require.False(t, isErr, text)

	var profile models.Profile
	require.NoError(t, json.Unmarshal([]byte(text), &profile))
	assert.Equal(t, content.Seed().Profile.Email, profile.Email)
}

func TestGetPostTool(t *testing.T) {
	session := setupSession(t)

	text, isErr := callTool(t, session, "get_post", map[string]any{"slug": "trello"})
	require.False(t, isErr, text)
	var post PostWithBody
	require.NoError(t, json.Unmarshal([]byte(text), &post))
	assert.Equal(t, "/blog/trello", post.Link)
	assert.Equal(t, "<p>Drag and drop</p>", post.Body)

	text, isErr = callTool(t, session, "get_post", map[string]any{"id": "blog-4"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "/blog/discord")

	text, isErr = callTool(t, session, "get_post", map[string]any{"id": "blog-99"})
	assert.True(t, isErr)
	assert.Equal(t, "Post not found", text)

	_, isErr = callTool(t, session, "get_post", map[string]any{})
	assert.True(t, isErr)
}
