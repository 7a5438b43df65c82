package stories

import (
	"log/slog"
	"strconv"
	"sync"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/pkg/carousel"
	"github.com/vango-dev/vangoui/pkg/sched"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/ui"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// Instance is a built story: a view plus whatever controllers back it.
// Handlers and timers of an Instance must run on the scheduler's loop.
type Instance struct {
	Story *Story

	// Set only for the kinds that use them.
	Toaster  *toast.Toaster
	Carousel *carousel.Controller
	Autoplay *carousel.Autoplay

	view func() *vdom.VNode

	mu       sync.Mutex
	cleanup  []func()
	tornDown bool
}

// Render renders the story wrapped in its frame.
func (in *Instance) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("story p-6"),
		vdom.Data("story", in.Story.ID),
		vdom.Data("kind", string(in.Story.Kind)),
		in.view(),
	)
}

// Teardown cancels timers, stops autoplay and detaches engines. It is safe
// to call more than once.
func (in *Instance) Teardown() {
	in.mu.Lock()
	if in.tornDown {
		in.mu.Unlock()
		return
	}
	in.tornDown = true
	fns := in.cleanup
	in.cleanup = nil
	in.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

func (in *Instance) onTeardown(fn func()) {
	in.mu.Lock()
	in.cleanup = append(in.cleanup, fn)
	in.mu.Unlock()
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	toaster  []toast.ToasterOption
	onChange func()
	logger   *slog.Logger
}

// WithToasterOptions applies opts to the toaster of toast stories before the
// story's own settings.
func WithToasterOptions(opts ...toast.ToasterOption) BuildOption {
	return func(c *buildConfig) { c.toaster = append(c.toaster, opts...) }
}

// OnChange is called when a controller changes state outside an event
// handler, e.g. a toast timer or an autoplay tick.
func OnChange(fn func()) BuildOption {
	return func(c *buildConfig) { c.onChange = fn }
}

// WithLogger sets the logger handed to controllers.
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// Build turns a story into a live Instance scheduling timers on s.
func Build(story *Story, s sched.Scheduler, opts ...BuildOption) (*Instance, error) {
	cfg := buildConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	args, err := decodeArgs(story)
	if err != nil {
		return nil, err
	}

	in := &Instance{Story: story}
	switch a := args.(type) {
	case *ToastArgs:
		buildToast(in, a, s, cfg)
	case *CarouselArgs:
		buildCarousel(in, a, s, cfg)
	case *ButtonArgs:
		buildButton(in, a)
	case *BadgeArgs:
		buildBadge(in, a)
	case *CardArgs:
		buildCard(in, a)
	case *InputArgs:
		buildInput(in, a)
	case *TextareaArgs:
		buildTextarea(in, a)
	case *AvatarArgs:
		buildAvatar(in, a)
	case *BreadcrumbArgs:
		buildBreadcrumb(in, a)
	}
	return in, nil
}

func (c buildConfig) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

func buildToast(in *Instance, a *ToastArgs, s sched.Scheduler, cfg buildConfig) {
	// Arguments are validated, so the parse errors cannot happen.
	variant, _ := toast.ParseVariant(a.Variant)
	position, _ := toast.ParsePosition(a.Position)

	defaults := []toast.Option{
		toast.WithVariant(variant),
		toast.WithTitle(a.Title),
		toast.WithMessage(a.Message),
		toast.WithCloseButton(boolOr(a.CloseButton, true)),
		toast.WithLogger(cfg.logger),
	}
	if a.Delay != "" {
		defaults = append(defaults, toast.AutoClose(duration(a.Delay, toast.DefaultAutoCloseDelay)))
	}
	if a.AutoClose != nil {
		defaults = append(defaults, toast.WithAutoClose(*a.AutoClose))
	}
	if a.Position != "" {
		defaults = append(defaults, toast.WithPosition(position))
	}

	topts := append([]toast.ToasterOption{}, cfg.toaster...)
	topts = append(topts,
		toast.WithDefaults(defaults...),
		toast.OnChange(cfg.changed),
		toast.WithToasterLogger(cfg.logger),
	)
	if a.Limit > 0 {
		topts = append(topts, toast.WithLimit(a.Limit))
	}
	tr := toast.NewToaster(s, topts...)
	in.Toaster = tr
	in.onTeardown(tr.TeardownAll)

	if boolOr(a.Open, true) {
		tr.Push()
	}

	trigger := a.Trigger
	if trigger == "" {
		trigger = "Show toast"
	}
	in.view = func() *vdom.VNode {
		return vdom.Div(
			vdom.Class("story-toast relative min-h-48"),
			ui.Button(ui.Outline(), ui.WithLabel(trigger), ui.WithOnClick(func() { tr.Push() })),
			tr.Render(),
		)
	}
}

func buildCarousel(in *Instance, a *CarouselArgs, s sched.Scheduler, cfg buildConfig) {
	labels := a.Slides
	if len(labels) == 0 {
		labels = make([]string, a.Count)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}
	slides := make([]*vdom.VNode, len(labels))
	for i, label := range labels {
		slides[i] = slide(label)
	}

	orientation, _ := carousel.ParseOrientation(a.Orientation)
	ctrl := carousel.New(
		carousel.WithOrientation(orientation),
		carousel.WithOptions(a.Options),
		carousel.WithLabel(a.Label),
		carousel.WithLogger(cfg.logger),
	)
	ctrl.Attach(carousel.NewSnapEngine(len(slides), a.Options))
	in.Carousel = ctrl
	in.onTeardown(ctrl.Detach)

	off := ctrl.OnSelect(func(carousel.State) { cfg.changed() })
	in.onTeardown(off)

	if d := duration(a.Autoplay, 0); d > 0 {
		ap := carousel.NewAutoplay(s, ctrl, d)
		in.Autoplay = ap
		in.onTeardown(ap.Stop)
		if !a.Paused {
			ap.Play()
		}
	}

	in.view = func() *vdom.VNode {
		var toggle *vdom.VNode
		if in.Autoplay != nil {
			label := "Play"
			if in.Autoplay.Playing() {
				label = "Pause"
			}
			toggle = ui.Button(ui.Ghost(), ui.Sm(), ui.WithLabel(label),
				ui.WithOnClick(func() { in.Autoplay.Toggle() }))
		}
		return vdom.Div(
			vdom.Class("story-carousel mx-auto w-full max-w-xs"),
			ctrl.Render(slides...),
			vdom.When(a.Dots, ctrl.Dots),
			vdom.If(toggle != nil, toggle),
		)
	}
}

func slide(label string) *vdom.VNode {
	return vdom.Div(
		vdom.Class("p-1"),
		vdom.Div(
			vdom.Class("flex aspect-square items-center justify-center rounded-md border p-6"),
			vdom.Span(vdom.Class("text-4xl font-semibold"), label),
		),
	)
}

func buildButton(in *Instance, a *ButtonArgs) {
	variant, _ := ui.ParseButtonVariant(a.Variant)
	size, _ := ui.ParseSize(a.Size)
	label := a.Label
	if label == "" {
		label = "Button"
	}

	clicks := 0
	in.view = func() *vdom.VNode {
		opts := []ui.ButtonOption{
			ui.WithVariant(variant),
			ui.WithSize(size),
			ui.WithLabel(label),
			ui.WithDisabled(a.Disabled),
			ui.WithLoading(a.Loading),
		}
		if a.Counter {
			opts = append(opts, ui.WithOnClick(func() { clicks++ }))
		}
		return vdom.Div(
			vdom.Class("flex items-center gap-4"),
			ui.Button(opts...),
			vdom.If(a.Counter, vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Textf("Clicked %d times", clicks))),
		)
	}
}

func buildBadge(in *Instance, a *BadgeArgs) {
	variant, _ := ui.ParseBadgeVariant(a.Variant)
	size, _ := ui.ParseSize(a.Size)
	node := ui.Badge(ui.BadgeWithVariant(variant), ui.BadgeSize(size), ui.BadgeText(a.Text))
	in.view = func() *vdom.VNode { return node }
}

func buildCard(in *Instance, a *CardArgs) {
	opts := []ui.CardOption{
		ui.CardTitle(a.Title),
		ui.CardSubtitle(a.Subtitle),
		ui.CardDescription(a.Description),
	}
	if a.Image != "" {
		opts = append(opts, ui.CardImage(a.Image))
	}
	if a.Content != "" {
		opts = append(opts, ui.CardContent(vdom.P(a.Content)))
	}
	if a.Footer != "" {
		opts = append(opts, ui.CardFooter(vdom.Span(vdom.Class("text-sm text-muted-foreground"), a.Footer)))
	}
	if a.Action != "" {
		opts = append(opts, ui.CardActions(ui.Button(ui.Sm(), ui.WithLabel(a.Action))))
	}
	if a.Shadow != "" {
		opts = append(opts, ui.CardShadow(ui.Scale(a.Shadow)))
	}
	if a.Padding != "" {
		opts = append(opts, ui.CardPadding(ui.Scale(a.Padding)))
	}
	if a.Hoverable {
		opts = append(opts, ui.CardHoverable())
	}
	node := ui.Card(opts...)
	in.view = func() *vdom.VNode { return node }
}

func buildInput(in *Instance, a *InputArgs) {
	size, _ := ui.ParseSize(a.Size)
	value := a.Value
	message := a.Error

	check := func(v string) {
		value = v
		message = ""
		switch {
		case a.Required && v == "":
			message = "This field is required"
		case a.Validate != "" && v != "":
			if err := config.Validator().Var(v, a.Validate); err != nil {
				message = a.ErrorMessage
				if message == "" {
					message = "Enter a valid " + a.Validate
				}
			}
		}
	}

	in.view = func() *vdom.VNode {
		typ := a.Type
		if typ == "" {
			typ = "text"
		}
		return ui.Input(
			ui.InputID(in.Story.ID+"-input"),
			ui.InputType(typ),
			ui.InputLabel(a.Label),
			ui.InputPlaceholder(a.Placeholder),
			ui.InputValue(value),
			ui.InputHelper(a.Helper),
			ui.InputError(message),
			ui.InputSize(size),
			ui.InputDisabled(a.Disabled),
			ui.InputRequired(a.Required),
			ui.InputOnInput(check),
		)
	}
}

func buildTextarea(in *Instance, a *TextareaArgs) {
	value := a.Value
	in.view = func() *vdom.VNode {
		opts := []ui.TextareaOption{
			ui.TextareaID(in.Story.ID + "-textarea"),
			ui.TextareaPlaceholder(a.Placeholder),
			ui.TextareaValue(value),
			ui.TextareaDisabled(a.Disabled),
			ui.TextareaReadonly(a.Readonly),
			ui.TextareaOnInput(func(v string) { value = v }),
		}
		if a.Rows > 0 {
			opts = append(opts, ui.TextareaRows(a.Rows))
		}
		return vdom.Div(
			vdom.Class("grid w-full gap-1.5"),
			ui.Textarea(opts...),
			vdom.If(a.Counter, vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Textf("%d characters", len([]rune(value))))),
		)
	}
}

func buildAvatar(in *Instance, a *AvatarArgs) {
	size, _ := ui.ParseSize(a.Size)
	avatar := func(name, src string) *vdom.VNode {
		return ui.Avatar(
			ui.AvatarSrc(src),
			ui.AvatarAlt(name),
			ui.AvatarFallback(ui.Initials(name)),
			ui.AvatarSize(size),
		)
	}

	var node *vdom.VNode
	if len(a.Names) > 0 {
		avatars := make([]*vdom.VNode, len(a.Names))
		for i, name := range a.Names {
			avatars[i] = avatar(name, "")
		}
		node = ui.AvatarGroup(avatars...)
	} else {
		node = avatar(a.Name, a.Src)
	}
	in.view = func() *vdom.VNode { return node }
}

func buildBreadcrumb(in *Instance, a *BreadcrumbArgs) {
	var opts []ui.BreadcrumbOption
	if a.Separator != "" {
		opts = append(opts, ui.BreadcrumbSeparator(a.Separator))
	}
	if a.Max > 0 {
		opts = append(opts, ui.BreadcrumbMax(a.Max))
	}
	node := ui.Breadcrumb(a.Items, opts...)
	in.view = func() *vdom.VNode { return node }
}
