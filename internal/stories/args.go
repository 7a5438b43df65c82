package stories

import (
	"fmt"
	"time"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/carousel"
	"github.com/vango-dev/vangoui/pkg/ui"
)

// ToastArgs configure a toast story. A trigger button pushes another toast
// with the same settings.
type ToastArgs struct {
	Variant     string `yaml:"variant" validate:"omitempty,oneof=success error warning info"`
	Title       string `yaml:"title"`
	Message     string `yaml:"message" validate:"required"`
	AutoClose   *bool  `yaml:"autoClose"`
	Delay       string `yaml:"delay" validate:"omitempty,duration"`
	CloseButton *bool  `yaml:"closeButton"`
	Position    string `yaml:"position" validate:"omitempty,oneof=top-left top-center top-right bottom-left bottom-center bottom-right"`
	Open        *bool  `yaml:"open"`
	Trigger     string `yaml:"trigger"`
	Limit       int    `yaml:"limit" validate:"min=0"`
}

// CarouselArgs configure a carousel story. Slides gives one label per
// slide; Count generates "1".."N" when Slides is empty.
type CarouselArgs struct {
	Slides      []string `yaml:"slides" validate:"dive,required"`
	Count       int      `yaml:"count" validate:"min=0,max=1000"`
	Orientation string   `yaml:"orientation" validate:"omitempty,oneof=horizontal vertical"`
	Label       string   `yaml:"label"`
	Dots        bool     `yaml:"dots"`
	Autoplay    string   `yaml:"autoplay" validate:"omitempty,duration"`
	Paused      bool     `yaml:"paused"`

	carousel.Options `yaml:",inline"`
}

// ButtonArgs configure a button story. Counter shows how often it was
// clicked.
type ButtonArgs struct {
	Label    string `yaml:"label"`
	Variant  string `yaml:"variant" validate:"omitempty,oneof=default primary destructive danger outline secondary ghost link"`
	Size     string `yaml:"size" validate:"omitempty,oneof=sm small md medium default lg large icon"`
	Disabled bool   `yaml:"disabled"`
	Loading  bool   `yaml:"loading"`
	Counter  bool   `yaml:"counter"`
}

// BadgeArgs configure a badge story.
type BadgeArgs struct {
	Text    string `yaml:"text" validate:"required"`
	Variant string `yaml:"variant" validate:"omitempty,oneof=neutral success error warning info"`
	Size    string `yaml:"size" validate:"omitempty,oneof=sm small md medium default lg large"`
}

// CardArgs configure a card story.
type CardArgs struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Image       string `yaml:"image" validate:"omitempty,uri"`
	Content     string `yaml:"content"`
	Footer      string `yaml:"footer"`
	Action      string `yaml:"action"`
	Shadow      string `yaml:"shadow" validate:"omitempty,oneof=none small medium large"`
	Padding     string `yaml:"padding" validate:"omitempty,oneof=none small medium large"`
	Hoverable   bool   `yaml:"hoverable"`
}

// InputArgs configure an input story. Validate checks the typed value with
// one of the listed rules and shows ErrorMessage when it fails.
type InputArgs struct {
	Type         string `yaml:"type" validate:"omitempty,oneof=text email password search tel url number"`
	Label        string `yaml:"label"`
	Placeholder  string `yaml:"placeholder"`
	Value        string `yaml:"value"`
	Helper       string `yaml:"helper"`
	Error        string `yaml:"error"`
	Size         string `yaml:"size" validate:"omitempty,oneof=sm small md medium default lg large"`
	Disabled     bool   `yaml:"disabled"`
	Required     bool   `yaml:"required"`
	Validate     string `yaml:"validate" validate:"omitempty,oneof=email url numeric alphanum"`
	ErrorMessage string `yaml:"errorMessage"`
}

// TextareaArgs configure a textarea story.
type TextareaArgs struct {
	Placeholder string `yaml:"placeholder"`
	Value       string `yaml:"value"`
	Rows        int    `yaml:"rows" validate:"min=0,max=50"`
	Disabled    bool   `yaml:"disabled"`
	Readonly    bool   `yaml:"readonly"`
	Counter     bool   `yaml:"counter"`
}

// AvatarArgs configure an avatar story. Names renders a group.
type AvatarArgs struct {
	Name  string   `yaml:"name" validate:"required_without=Names"`
	Src   string   `yaml:"src" validate:"omitempty,uri"`
	Size  string   `yaml:"size" validate:"omitempty,oneof=sm small md medium default lg large"`
	Names []string `yaml:"names" validate:"dive,required"`
}

// BreadcrumbArgs configure a breadcrumb story.
type BreadcrumbArgs struct {
	Items     []ui.Crumb `yaml:"items" validate:"required,min=1,dive"`
	Separator string     `yaml:"separator"`
	Max       int        `yaml:"max" validate:"min=0"`
}

// decodeArgs decodes the story args into the struct for its kind and
// validates it.
func decodeArgs(s *Story) (any, error) {
	var args any
	switch s.Kind {
	case KindToast:
		args = &ToastArgs{}
	case KindCarousel:
		args = &CarouselArgs{}
	case KindButton:
		args = &ButtonArgs{}
	case KindBadge:
		args = &BadgeArgs{}
	case KindCard:
		args = &CardArgs{}
	case KindInput:
		args = &InputArgs{}
	case KindTextarea:
		args = &TextareaArgs{}
	case KindAvatar:
		args = &AvatarArgs{}
	case KindBreadcrumb:
		args = &BreadcrumbArgs{}
	default:
		return nil, argsError(s, fmt.Sprintf("unsupported kind %q", s.Kind))
	}

	if s.Args.Kind != 0 {
		if err := s.Args.Decode(args); err != nil {
			return nil, argsError(s, err.Error())
		}
	}
	if err := config.Validator().Struct(args); err != nil {
		return nil, argsError(s, config.DescribeValidation(err))
	}
	return args, nil
}

func argsError(s *Story, detail string) *errors.Error {
	line := s.Args.Line
	if line == 0 {
		line = s.line
	}
	e := errors.New("E114").WithDetailf("story %q: %s", s.ID, detail)
	if line > 0 {
		e = e.WithLocation(s.source, line, 0)
	}
	return e
}

// duration parses an already validated duration string, returning def when
// it is empty.
func duration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
