// Package mcpserver exposes the site content as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lucasaraujonrt/portfolio/internal/content"
	"github.com/lucasaraujonrt/portfolio/internal/models"
	"github.com/lucasaraujonrt/portfolio/internal/services"
)

// Tools holds the services the tool handlers read from
type Tools struct {
	Content *services.ContentService
	Posts   *services.PostService
}

type ListInput struct{}

type GetPostInput struct {
	ID   string `json:"id,omitempty" jsonschema:"Post id, e.g. blog-5"`
	Slug string `json:"slug,omitempty" jsonschema:"Last segment of the post link, e.g. trello for /blog/trello"`
}

// PostWithBody is a post plus its rendered body, when the site hosts one
type PostWithBody struct {
	models.BlogPost
	Body string `json:"body,omitempty"`
}

type socialLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Link  string `json:"link"`
}

// New creates an MCP server with every content tool registered
func New(t *Tools, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "portfolio",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the site owner's profile: name, handle, headline, taglines and contact email",
	}, t.GetProfile)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_projects",
		Description: "List portfolio projects in display order",
	}, t.ListProjects)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_work",
		Description: "List work experience, most recent first",
	}, t.ListWork)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_posts",
		Description: "List blog posts, hosted posts first then syndicated ones",
	}, t.ListPosts)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_post",
		Description: "Get a single blog post by id or slug, including its body when hosted here",
	}, t.GetPost)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_social",
		Description: "List social profile links",
	}, t.ListSocial)

	return srv
}

func (t *Tools) GetProfile(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	profile, err := t.Content.Profile(ctx)
	if err != nil {
		return toolError("Failed to load profile: %v", err), nil, nil
	}
	return toolJSON(profile)
}

func (t *Tools) ListProjects(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	projects, err := t.Content.Projects(ctx)
	if err != nil {
		return toolError("Failed to list projects: %v", err), nil, nil
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return toolJSON(projects)
}

func (t *Tools) ListWork(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	work, err := t.Content.Work(ctx)
	if err != nil {
		return toolError("Failed to list work: %v", err), nil, nil
	}
	if work == nil {
		work = []models.WorkExperience{}
	}
	return toolJSON(work)
}

func (t *Tools) ListPosts(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	posts, err := t.Content.Posts(ctx)
	if err != nil {
		return toolError("Failed to list posts: %v", err), nil, nil
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	return toolJSON(posts)
}

func (t *Tools) GetPost(ctx context.Context, _ *mcp.CallToolRequest, input GetPostInput) (*mcp.CallToolResult, any, error) {
	var (
		post models.BlogPost
		err  error
	)
	switch {
	case input.ID != "":
		post, err = t.Content.GetPost(ctx, input.ID)
	case input.Slug != "":
		post, err = t.Content.GetPostBySlug(ctx, input.Slug)
	default:
		return toolError("Either id or slug is required"), nil, nil
	}
	if errors.Is(err, content.ErrNotFound) {
		return toolError("Post not found"), nil, nil
	}
	if err != nil {
		return toolError("Failed to load post: %v", err), nil, nil
	}

	out := PostWithBody{BlogPost: post}
	if slug := post.Slug(); slug != "" && t.Posts != nil {
		body, err := t.Posts.Body(slug)
		if err != nil && !errors.Is(err, content.ErrNotFound) {
			return toolError("Failed to load post body: %v", err), nil, nil
		}
		out.Body = string(body)
	}
	return toolJSON(out)
}

func (t *Tools) ListSocial(ctx context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	links, err := t.Content.SocialLinks(ctx)
	if err != nil {
		return toolError("Failed to list social links: %v", err), nil, nil
	}
	out := make([]socialLink, len(links))
	for i, l := range links {
		out[i] = socialLink{ID: l.ID(), Label: l.Label, Link: l.Link}
	}
	return toolJSON(out)
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
