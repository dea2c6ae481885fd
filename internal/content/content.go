package content

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
)

//go:embed pages/*.md
var pageFiles embed.FS

// Pages holds the rendered HTML of the static page bodies, keyed by file name without extension
type Pages struct {
	html map[string]string
}

// Load renders every embedded markdown page
func Load() (*Pages, error) {
	return LoadFS(pageFiles, "pages")
}

// LoadFS renders every .md file in dir of fsys
func LoadFS(fsys fs.FS, dir string) (*Pages, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read pages: %w", err)
	}

	md := goldmark.New()
	pages := &Pages{html: make(map[string]string, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}

		src, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("render page %s: %w", entry.Name(), err)
		}
		pages.html[strings.TrimSuffix(entry.Name(), ".md")] = buf.String()
	}
	return pages, nil
}

// HTML returns the rendered body of page, or "" if there is none
func (p *Pages) HTML(page string) string {
	if p == nil {
		return ""
	}
	return p.html[page]
}
