package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/sched"
)

// programDispatcher delivers callbacks to the program's Update loop.
type programDispatcher struct {
	p atomic.Pointer[tea.Program]
}

func (d *programDispatcher) Dispatch(fn func()) {
	if p := d.p.Load(); p != nil {
		p.Send(runMsg(fn))
	}
}

// Run starts the preview and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	d := &programDispatcher{}
	m := NewModel(sched.Real(d), opts)

	progOpts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(m, progOpts...)
	d.p.Store(p)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Teardown()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.New("E141").Wrap(err)
	}
	return nil
}
