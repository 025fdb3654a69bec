package term

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/pkg/errors"

	"life-ca/internal/session"
	"life-ca/internal/ui"
	"life-ca/pkg/life"
)

const (
	boardView  = "board"
	statusView = "status"
	statusCols = 30
	refresh    = 30 * time.Millisecond
)

type keyBinding struct {
	key     interface{}
	view    string
	handler func(g *gocui.Gui, v *gocui.View) error
}

// View runs a session inside a full-screen gocui layout. All session access
// happens on the gocui main loop.
type View struct {
	g     *gocui.Gui
	sess  *session.Session
	style Style
}

// NewView opens the terminal. Call Close when done.
func NewView(sess *session.Session, style Style) (*View, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewView] cannot open terminal")
	}
	g.Mouse = true
	v := &View{g: g, sess: sess, style: style}
	g.SetManagerFunc(v.layout)
	if err := v.bindKeys(); err != nil {
		g.Close()
		return nil, err
	}
	return v, nil
}

// Close restores the terminal.
func (v *View) Close() { v.g.Close() }

// Run drives the session until the user quits or ctx is done. The refresh
// goroutine has exited by the time Run returns.
func (v *View) Run(ctx context.Context) error {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		pump(ctx, done, v.g, refresh, v.sess.Update)
	}()
	err := v.g.MainLoop()
	close(done)
	wg.Wait()
	if err != nil && errors.Cause(err) != gocui.ErrQuit {
		return err
	}
	return nil
}

// updater is the part of *gocui.Gui the refresh loop needs.
type updater interface {
	Update(f func(*gocui.Gui) error)
}

// pump schedules tick on the gui loop every interval until done is closed.
// When ctx ends first it asks the loop to quit and stops.
func pump(ctx context.Context, done <-chan struct{}, u updater, interval time.Duration, tick func() bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			u.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			select {
			case <-done:
				return
			default:
			}
			u.Update(func(*gocui.Gui) error {
				tick()
				return nil
			})
		}
	}
}

func (v *View) enqueue(cmd session.Command) func(*gocui.Gui, *gocui.View) error {
	return func(*gocui.Gui, *gocui.View) error {
		v.sess.Enqueue(cmd)
		return nil
	}
}

func (v *View) bindKeys() error {
	quit := func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }
	bindings := []keyBinding{
		{gocui.KeyCtrlC, "", quit},
		{'q', "", quit},
		{gocui.KeySpace, "", v.enqueue(session.TogglePause())},
		{gocui.KeyEnter, "", v.enqueue(session.Play())},
		{'n', "", v.enqueue(session.StepOnce())},
		{'c', "", v.enqueue(session.Clear())},
		{gocui.KeyTab, "", v.enqueue(session.SelectNext())},
		{'r', "", func(*gocui.Gui, *gocui.View) error {
			v.sess.Enqueue(session.Reset(v.sess.Board().Seed()))
			return nil
		}},
		{'s', "", func(*gocui.Gui, *gocui.View) error {
			v.sess.Enqueue(session.Reset(time.Now().UnixNano()))
			return nil
		}},
		{gocui.MouseLeft, boardView, v.onClick(session.ToggleCell)},
		{gocui.MouseRight, boardView, v.onClick(session.StampSelected)},
	}
	for i := range life.Patterns() {
		bindings = append(bindings, keyBinding{rune('1' + i), "", v.enqueue(session.Select(i))})
	}
	for _, b := range bindings {
		if err := v.g.SetKeybinding(b.view, b.key, gocui.ModNone, b.handler); err != nil {
			return errors.Wrapf(err, "[bindKeys] %v", b.key)
		}
	}
	return nil
}

// onClick maps the clicked character to a grid coordinate. gocui moves the
// view cursor to the click position before calling the handler.
func (v *View) onClick(cmd func(life.Coord) session.Command) func(*gocui.Gui, *gocui.View) error {
	return func(_ *gocui.Gui, gv *gocui.View) error {
		cx, cy := gv.Cursor()
		ox, oy := gv.Origin()
		c := life.Coord{X: cx + ox, Y: cy + oy}
		if v.sess.Board().Grid().Contains(c) {
			v.sess.Enqueue(cmd(c))
		}
		return nil
	}
}

func (v *View) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	boardRight := max(maxX-statusCols-1, 2)

	bv, err := g.SetView(boardView, 0, 0, boardRight, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	bv.Title = " life "
	bv.Clear()
	cols, rows := bv.Size()
	fmt.Fprint(bv, Frame(v.sess.Board().Grid(), v.style, life.Coord{}, cols, rows))

	sv, err := g.SetView(statusView, boardRight+1, 0, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Title = " status "
	sv.Clear()
	board := v.sess.Board()
	fmt.Fprintf(sv, "Generation %d\n", board.Generation())
	fmt.Fprintf(sv, "Population %d\n", board.Grid().Population())
	fmt.Fprintf(sv, "State      %s\n", v.style.Verdict(board.Verdict()))
	fmt.Fprintf(sv, "Mode       %s\n", v.style.Mode(v.sess.Paused()))
	fmt.Fprintf(sv, "Stamp      %s\n\n", v.sess.Selected().Name)
	for _, line := range ui.KeyHelp {
		fmt.Fprintln(sv, line)
	}
	return nil
}
