package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/pusher/internal/config"
	"git.lost.host/meutraa/pusher/internal/game"
	"git.lost.host/meutraa/pusher/internal/history"
	"git.lost.host/meutraa/pusher/internal/input"
	"git.lost.host/meutraa/pusher/internal/render"
	"git.lost.host/meutraa/pusher/internal/sequencer"
	"git.lost.host/meutraa/pusher/internal/theme"
	"git.lost.host/meutraa/pusher/internal/tunes"
	"golang.org/x/term"
)

// Program is the interactive coin pusher: keys stand in for the machine's
// sensors and every event plays its jingle.
type Program struct {
	Registry  *tunes.Registry
	Sequencer *sequencer.DefaultSequencer
	Director  *game.Director
	History   *history.DefaultHistory
	Input     *input.DefaultInput
	Renderer  *render.DefaultRenderer
	Theme     *theme.DefaultTheme

	closeDriver func() error
	last        time.Duration

	width, height int
	sideCol       uint16

	// Stats for this session
	started  time.Time
	counts   map[game.Event]int
	outcomes map[game.Outcome]int
	lastEnd  *game.Ending
}

func (p *Program) Init(registry *tunes.Registry, timing sequencer.Timing) error {
	// Ensure our Default implementations are used as interfaces
	var _ history.History = &history.DefaultHistory{}
	var _ render.Renderer = &render.DefaultRenderer{}
	var _ theme.Theme = &theme.DefaultTheme{}

	p.Registry = registry
	p.Theme = &theme.DefaultTheme{}
	p.counts = map[game.Event]int{}
	p.outcomes = map[game.Outcome]int{}

	jingles := game.DefaultJingles()
	if *config.Jingles != "" {
		var err error
		if jingles, err = game.LoadJingles(*config.Jingles, registry); nil != err {
			return err
		}
	}
	bindings, err := input.Bindings(*config.Keys)
	if nil != err {
		return err
	}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		log.Println("unable to get terminal size:", err)
		columns, rows = 80, 24
	}
	p.Resize(columns, rows)

	driver, closeDriver, err := openDriver(*config.Backend)
	if nil != err {
		return err
	}
	p.closeDriver = closeDriver

	p.Sequencer, err = sequencer.New(driver, timing)
	if nil != err {
		return err
	}
	p.Director = game.NewDirector(p.Sequencer, registry, jingles)
	p.Director.OnEnd = p.record

	p.History = &history.DefaultHistory{}
	if err := p.History.Init(*config.Database); nil != err {
		return err
	}

	p.Input = &input.DefaultInput{}
	if err := p.Input.Init(bindings); nil != err {
		return err
	}

	p.Renderer = &render.DefaultRenderer{}
	return p.Renderer.Init()
}

func (p *Program) Deinit() {
	if nil != p.Director {
		p.Director.Cancel()
	}
	if nil != p.Renderer {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}
	if nil != p.Input {
		if err := p.Input.Deinit(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}
	if nil != p.History {
		p.History.Deinit()
	}
	if nil != p.closeDriver {
		if err := p.closeDriver(); nil != err {
			log.Println("unable to close tone output:", err)
		}
	}
}

func (p *Program) Resize(columns, rows int) {
	p.width, p.height = columns, rows
	col := columns/2 - 24
	if col < 2 {
		col = 2
	}
	p.sideCol = uint16(col)
}

// Update applies the keys pressed since the last frame and advances the
// sequencer to duration. It returns false when the user quits.
func (p *Program) Update(duration time.Duration) bool {
	for _, c := range p.Input.Poll() {
		switch c.Kind {
		case input.Quit:
			return false
		case input.Cancel:
			p.Director.Cancel()
		case input.Trigger:
			p.counts[c.Event]++
			if p.Director.Trigger(c.Event) {
				p.started = time.Now()
				p.Renderer.AddDecoration(p.sideCol, 2, p.Theme.Banner(c.Event), 120)
			}
		}
	}

	p.Sequencer.Advance(duration - p.last)
	p.last = duration
	p.Director.Update()
	return true
}

// record saves every jingle that stops playing
func (p *Program) record(e game.Ending) {
	p.lastEnd = &e
	p.outcomes[e.Outcome]++

	tune, _ := p.Registry.Get(e.Jingle.Tune)
	if err := p.History.Save(history.Play{
		Sum:     tune.Sum(),
		Tune:    e.Jingle.Tune,
		Event:   e.Jingle.Event.String(),
		Outcome: string(e.Outcome),
		Started: p.started,
		Played:  e.Played,
		Steps:   e.Steps,
	}); nil != err {
		log.Println(err)
	}
}

func (p *Program) Render() {
	r, col := p.Renderer, p.sideCol
	for row := uint16(4); row < 20; row++ {
		r.ClearLine(row)
	}

	j, active := p.Director.Current()
	seq := p.Sequencer
	r.Fill(4, col, fmt.Sprintf("      State:  %v", p.Theme.RenderState(seq.State())))
	if active {
		tune := seq.Tune()
		step := seq.Step()
		r.Fill(5, col, fmt.Sprintf("     Jingle:  %v (%v)", j.Tune, j.Event))
		r.Fill(6, col, fmt.Sprintf("       Step:  %3v / %v", step+1, tune.Len()))
		r.Fill(7, col, fmt.Sprintf("       Note:  %v", p.Theme.RenderStep(tune.PitchAt(step), tune.DurationCodeAt(step))))
		r.Fill(8, col, fmt.Sprintf("     Played:  %v / %v",
			seq.Played().Round(time.Millisecond), tune.Duration(seq.Timing().WholeNote).Round(time.Millisecond)))
	}

	if nil != p.lastEnd {
		r.Fill(10, col, fmt.Sprintf("   Last end:  %v %v after %v",
			p.lastEnd.Jingle.Tune, p.lastEnd.Outcome, p.lastEnd.Played.Round(time.Millisecond)))
	}
	r.Fill(11, col, fmt.Sprintf("    Endings:  %v finished, %v cancelled, %v preempted",
		p.outcomes[game.Finished], p.outcomes[game.Cancelled], p.outcomes[game.Preempted]))

	keys := []rune(*config.Keys)
	for i, e := range game.Events() {
		r.Fill(uint16(12+i), col, fmt.Sprintf("%11v:  %4v   [%c]", e, p.counts[e], keys[i]))
	}
	r.Fill(uint16(12+len(game.Events())), col, "      space:  stop   esc: quit")
}
