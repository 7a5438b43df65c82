package export

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/vangoui/internal/gallery"
	"github.com/vango-dev/vangoui/internal/stories"
)

const (
	htmlType = "text/html; charset=utf-8"
	jsonType = "application/json"

	// ManifestName lists the exported stories.
	ManifestName = "stories.json"
)

// Options configures an export.
type Options struct {
	// Title is used for the index and page titles.
	Title string

	// Pretty indents the HTML.
	Pretty bool

	// Concurrency bounds parallel writes. Zero means 4.
	Concurrency int

	Logger *slog.Logger
}

// Result summarises a finished export.
type Result struct {
	Target   string
	Pages    int
	Bytes    int
	Duration time.Duration
}

// ManifestEntry describes one exported story.
type ManifestEntry struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Kind  string   `json:"kind"`
	Path  string   `json:"path"`
	Tags  []string `json:"tags,omitempty"`
}

type page struct {
	name, contentType string
	data              []byte
}

// Export renders every story in c plus index.html and the manifest, and
// writes them to t. Pages are rendered before anything is written, so a
// render error leaves the target untouched.
func Export(ctx context.Context, c *stories.Catalog, t Target, opts Options) (Result, error) {
	start := time.Now()
	if opts.Title == "" {
		opts.Title = "VangoUI"
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pages, err := renderAll(c, opts)
	if err != nil {
		return Result{}, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	total := 0
	for _, p := range pages {
		p := p
		total += len(p.data)
		g.Go(func() error {
			if err := t.Put(ctx, p.name, p.contentType, p.data); err != nil {
				return err
			}
			logger.Debug("exported", "page", p.name, "bytes", len(p.data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Target:   t.String(),
		Pages:    len(pages),
		Bytes:    total,
		Duration: time.Since(start),
	}
	logger.Info("export finished", "target", res.Target, "pages", res.Pages, "bytes", res.Bytes, "duration", res.Duration)
	return res, nil
}

func renderAll(c *stories.Catalog, opts Options) ([]page, error) {
	pageOpts := gallery.StaticPages(opts.Title, opts.Pretty)
	list := c.List()
	pages := make([]page, 0, len(list)+2)
	manifest := make([]ManifestEntry, 0, len(list))

	for _, s := range list {
		fragment, err := gallery.RenderFragment(s, opts.Pretty)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := gallery.WriteStory(&buf, s, fragment, pageOpts); err != nil {
			return nil, err
		}
		name := pageOpts.Href(s.ID)
		pages = append(pages, page{name: name, contentType: htmlType, data: buf.Bytes()})
		manifest = append(manifest, ManifestEntry{
			ID:    s.ID,
			Title: s.Title,
			Kind:  string(s.Kind),
			Path:  name,
			Tags:  s.Tags,
		})
	}

	var index bytes.Buffer
	if err := gallery.WriteIndex(&index, c, pageOpts); err != nil {
		return nil, err
	}
	pages = append(pages, page{name: pageOpts.Home, contentType: htmlType, data: index.Bytes()})

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	pages = append(pages, page{name: ManifestName, contentType: jsonType, data: append(data, '\n')})
	return pages, nil
}
