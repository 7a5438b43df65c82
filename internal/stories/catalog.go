package stories

import (
	_ "embed"
	"os"
	"regexp"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
)

// Kind names the component a story renders.
type Kind string

const (
	KindToast      Kind = "toast"
	KindCarousel   Kind = "carousel"
	KindButton     Kind = "button"
	KindBadge      Kind = "badge"
	KindCard       Kind = "card"
	KindInput      Kind = "input"
	KindTextarea   Kind = "textarea"
	KindAvatar     Kind = "avatar"
	KindBreadcrumb Kind = "breadcrumb"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{
	KindToast, KindCarousel, KindButton, KindBadge, KindCard,
	KindInput, KindTextarea, KindAvatar, KindBreadcrumb,
}

//go:embed stories.yaml
var defaultCatalog []byte

// DefaultSource names the embedded catalog in error locations.
const DefaultSource = "stories.yaml (embedded)"

// Story is one catalog entry.
type Story struct {
	ID          string    `yaml:"id" validate:"required,slug,max=64"`
	Title       string    `yaml:"title" validate:"required"`
	Kind        Kind      `yaml:"kind" validate:"required,oneof=toast carousel button badge card input textarea avatar breadcrumb"`
	Description string    `yaml:"description,omitempty"`
	Tags        []string  `yaml:"tags,omitempty" validate:"dive,required"`
	Args        yaml.Node `yaml:"args,omitempty" validate:"-"`

	line   int
	source string
}

// UnmarshalYAML records the line a story starts on.
func (s *Story) UnmarshalYAML(n *yaml.Node) error {
	type plain Story
	if err := n.Decode((*plain)(s)); err != nil {
		return err
	}
	s.line = n.Line
	return nil
}

// Line returns the catalog line the story was declared on, or 0.
func (s *Story) Line() int { return s.line }

// Catalog is a validated, ordered set of stories.
type Catalog struct {
	Version int      `yaml:"version" validate:"eq=1"`
	Stories []*Story `yaml:"stories" validate:"required,min=1,dive,required"`

	source string
	byID   map[string]*Story
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes and validates a catalog. source is used for error
// locations.
func Parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.New("E110").
			WithLocation(source, extractLine(err), 0).
			WithDetail(err.Error())
	}
	c.source = source

	if err := config.Validator().Struct(&c); err != nil {
		e := errors.New("E111").WithDetail(config.DescribeValidation(err))
		if line := c.firstInvalidLine(); line > 0 {
			e = e.WithLocation(source, line, 0)
		}
		return nil, e
	}

	c.byID = make(map[string]*Story, len(c.Stories))
	for _, s := range c.Stories {
		if prev, ok := c.byID[s.ID]; ok {
			return nil, errors.New("E113").
				WithLocation(source, s.line, 0).
				WithDetailf("story %q is already declared on line %d", s.ID, prev.line)
		}
		c.byID[s.ID] = s
	}

	for _, s := range c.Stories {
		s.source = source
		if _, err := decodeArgs(s); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Load reads a catalog file from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E110").WithDetail("Failed to read " + path).Wrap(err)
	}
	return Parse(data, path)
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog, DefaultSource)
	if err != nil {
		panic("stories: embedded catalog is invalid: " + err.Error())
	}
	return c
}

// Open loads path, or the embedded catalog when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Source returns where the catalog was read from.
func (c *Catalog) Source() string { return c.source }

// Get returns the story with the given id.
func (c *Catalog) Get(id string) (*Story, error) {
	if s, ok := c.byID[id]; ok {
		return s, nil
	}
	return nil, errors.New("E112").
		WithDetailf("No story with id %q in %s", id, c.source).
		WithSuggestion("Run 'vangoui stories' to list the available ids")
}

// List returns the stories in catalog order.
func (c *Catalog) List() []*Story {
	return append([]*Story(nil), c.Stories...)
}

// ByKind groups stories by kind. Kinds without stories are omitted.
func (c *Catalog) ByKind() map[Kind][]*Story {
	out := make(map[Kind][]*Story)
	for _, s := range c.Stories {
		out[s.Kind] = append(out[s.Kind], s)
	}
	return out
}

// IDs returns the sorted story ids.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// firstInvalidLine finds the first story that fails validation on its own.
func (c *Catalog) firstInvalidLine() int {
	for _, s := range c.Stories {
		if s == nil {
			continue
		}
		if err := config.Validator().Struct(s); err != nil {
			return s.line
		}
	}
	return 0
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) < 2 {
		return 0
	}
	line, _ := strconv.Atoi(matches[1])
	return line
}
