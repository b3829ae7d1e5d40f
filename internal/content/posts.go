package content

import (
	"embed"
	"io/fs"
)

//go:embed posts/*.html
var postFiles embed.FS

// PostBodies returns the bodies of the built-in posts, one <slug>.html each
func PostBodies() fs.FS {
	sub, err := fs.Sub(postFiles, "posts")
	if err != nil {
		panic(err)
	}
	return sub
}
