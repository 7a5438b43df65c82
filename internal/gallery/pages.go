package gallery

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/stories"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// TailwindCDN is the stylesheet the gallery pages load.
const TailwindCDN = "https://cdn.jsdelivr.net/npm/tailwindcss@2/dist/tailwind.min.css"

// RootID is the id of the element live frames replace.
const RootID = "story-root"

// PageOptions controls how gallery pages link and whether they go live.
type PageOptions struct {
	// Title is shown in the header and the document title.
	Title string

	// Href maps a story id to its page URL.
	Href func(id string) string

	// Home is the index URL.
	Home string

	// Live appends the client script that connects to LivePath.
	Live     bool
	LivePath func(id string) string

	// Pretty indents the output.
	Pretty bool
}

// ServerPages returns the options used by the gallery server.
func ServerPages(title string) PageOptions {
	return PageOptions{
		Title:    title,
		Href:     func(id string) string { return "/stories/" + id },
		Home:     "/",
		Live:     true,
		LivePath: func(id string) string { return "/live/" + id },
	}
}

// StaticPages returns options for pages written to disk side by side.
func StaticPages(title string, pretty bool) PageOptions {
	return PageOptions{
		Title:  title,
		Href:   func(id string) string { return id + ".html" },
		Home:   "index.html",
		Pretty: pretty,
	}
}

// RenderFragment renders the story's initial state. Timers are cancelled
// before it returns, so the fragment is a snapshot.
func RenderFragment(story *stories.Story, pretty bool) (string, error) {
	in, err := stories.Build(story, sched.Real(sched.Inline))
	if err != nil {
		return "", err
	}
	defer in.Teardown()

	r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
	html, err := r.RenderToString(in.Render())
	if err != nil {
		return "", errors.New("E124").WithDetail("story " + story.ID).Wrap(err)
	}
	return html, nil
}

// WriteIndex renders the catalog index page to buf.
func WriteIndex(buf *bytes.Buffer, c *stories.Catalog, opts PageOptions) error {
	byKind := c.ByKind()
	sections := make([]any, 0, len(stories.Kinds))
	for _, k := range stories.Kinds {
		list := byKind[k]
		if len(list) == 0 {
			continue
		}
		sections = append(sections, vdom.Section(
			vdom.Class("mb-8"),
			vdom.H2(vdom.Class("text-lg font-semibold capitalize mb-2"), vdom.Text(string(k))),
			vdom.Ul(
				vdom.Class("space-y-1"),
				vdom.Range(list, func(s *stories.Story, _ int) *vdom.VNode {
					return vdom.Li(
						vdom.A(vdom.Class("text-blue-600 hover:underline"), vdom.Href(opts.Href(s.ID)), vdom.Text(s.Title)),
						vdom.If(s.Description != "", vdom.Span(vdom.Class("ml-2 text-gray-500 text-sm"), vdom.Text(s.Description))),
					)
				}),
			),
		))
	}

	body := vdom.Main(
		vdom.Class("max-w-3xl mx-auto p-8"),
		vdom.H1(vdom.Class("text-2xl font-bold mb-6"), vdom.Text(opts.Title)),
		sections,
	)
	r := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})
	return r.RenderPage(buf, render.PageData{
		Title:       opts.Title,
		Body:        body,
		StyleSheets: []string{TailwindCDN},
	})
}

// WriteStory renders the page for story around an already rendered
// fragment.
func WriteStory(buf *bytes.Buffer, story *stories.Story, fragment string, opts PageOptions) error {
	root := vdom.Div(vdom.ID(RootID), vdom.Raw(fragment))
	if opts.Live {
		root = vdom.Div(vdom.ID(RootID), vdom.Data("live", opts.LivePath(story.ID)), vdom.Raw(fragment))
	}

	body := vdom.Main(
		vdom.Class("max-w-3xl mx-auto p-8"),
		vdom.Nav(vdom.Class("text-sm mb-4"), vdom.A(vdom.Class("text-blue-600"), vdom.Href(opts.Home), vdom.Text("← "+opts.Title))),
		vdom.H1(vdom.Class("text-2xl font-bold"), vdom.Text(story.Title)),
		vdom.If(story.Description != "", vdom.P(vdom.Class("text-gray-600 mt-1"), vdom.Text(story.Description))),
		vdom.Div(vdom.Class("mt-6 border rounded-lg bg-gray-50"), root),
	)

	page := render.PageData{
		Title:       story.Title + " · " + opts.Title,
		Body:        body,
		StyleSheets: []string{TailwindCDN},
	}
	if opts.Live {
		page.Scripts = []string{ClientScript}
	}
	r := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})
	return r.RenderPage(buf, page)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := WriteIndex(&buf, s.catalog, ServerPages(s.cfg.Name)); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleStory(w http.ResponseWriter, r *http.Request) {
	story, fragment, ok := s.fragment(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := WriteStory(&buf, story, fragment, ServerPages(s.cfg.Name)); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

// handleFragment serves the story's initial markup alone, for embedding.
func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	_, fragment, ok := s.fragment(w, r)
	if !ok {
		return
	}
	writeHTML(w, []byte(fragment))
}

func (s *Server) fragment(w http.ResponseWriter, r *http.Request) (*stories.Story, string, bool) {
	story, err := s.catalog.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, "", false
	}

	if s.cache != nil {
		if html, ok := s.cache.Get(story.ID); ok {
			s.metrics.RecordCache(true)
			return story, html, true
		}
		s.metrics.RecordCache(false)
	}

	html, err := RenderFragment(story, false)
	if err != nil {
		s.fail(w, r, err)
		return nil, "", false
	}
	if s.cache != nil {
		s.cache.Add(story.ID, html)
	}
	return story, html, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("render failed", "path", r.URL.Path, "error", err)
	http.Error(w, "render failed", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
