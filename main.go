package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"git.lost.host/meutraa/pusher/internal/config"
	"git.lost.host/meutraa/pusher/internal/game"
	"git.lost.host/meutraa/pusher/internal/history"
	"git.lost.host/meutraa/pusher/internal/sequencer"
	"git.lost.host/meutraa/pusher/internal/tone"
	"git.lost.host/meutraa/pusher/internal/tunes"
	"github.com/benbjohnson/clock"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cmd, err := config.Parse(args)
	if nil != err {
		return err
	}
	timing, err := config.Timing()
	if nil != err {
		return err
	}
	registry := tunes.Default()

	switch cmd {
	case config.List.FullCommand():
		return list(registry, timing)
	case config.Play.FullCommand():
		return play(registry, timing, *config.PlayTune)
	case config.History.FullCommand():
		return showHistory(*config.HistoryTune)
	}

	p := &Program{}
	if err := p.Init(registry, timing); nil != err {
		return err
	}
	defer p.Deinit()

	p.Renderer.RenderLoop(*config.FramePeriod, func(duration time.Duration) bool {
		if !p.Update(duration) {
			return false
		}
		p.Render()
		return true
	})
	return nil
}

// openDriver returns the configured tone output and a function releasing it.
func openDriver(backend string) (tone.Driver, func() error, error) {
	none := func() error { return nil }
	switch backend {
	case "beep":
		d, err := tone.NewBeepDriver(*config.SampleRate, *config.Buffer, *config.Volume)
		if nil != err {
			return nil, none, err
		}
		return d, d.Close, nil
	case "oto":
		d, err := tone.NewOtoDriver(*config.SampleRate, *config.Buffer, *config.Volume)
		if nil != err {
			return nil, none, err
		}
		return d, d.Close, nil
	case "log":
		return tone.NewLogDriver(log.Default()), none, nil
	}
	return tone.Nop{}, none, nil
}

func list(registry *tunes.Registry, timing sequencer.Timing) error {
	jingles := game.DefaultJingles()
	if *config.Jingles != "" {
		var err error
		if jingles, err = game.LoadJingles(*config.Jingles, registry); nil != err {
			return err
		}
	}
	events := map[string][]game.Event{}
	for _, j := range jingles.Sorted() {
		events[j.Tune] = append(events[j.Tune], j.Event)
	}

	for _, name := range registry.Names() {
		tune, _ := registry.Get(name)
		fmt.Printf("%-20v %4v steps  %8v  %v\n", name, tune.Len(), tune.Duration(timing.WholeNote), events[name])
	}
	return nil
}

func play(registry *tunes.Registry, timing sequencer.Timing, name string) error {
	tune, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", game.ErrUnknownTune, name)
	}

	driver, closeDriver, err := openDriver(*config.Backend)
	if nil != err {
		return err
	}
	defer func() {
		if err := closeDriver(); nil != err {
			log.Println("unable to close tone output:", err)
		}
	}()

	seq, err := sequencer.New(driver, timing)
	if nil != err {
		return err
	}

	h := &history.DefaultHistory{}
	if err := h.Init(*config.Database); nil != err {
		log.Println("not recording history:", err)
		h = nil
	} else {
		defer h.Deinit()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Playing %v (%v steps, %v)\n", name, tune.Len(), tune.Duration(timing.WholeNote))
	started := time.Now()
	err = sequencer.Play(ctx, seq, clock.New(), *config.FramePeriod, tune)

	outcome, steps := game.Finished, tune.Len()
	if errors.Is(err, context.Canceled) {
		outcome, steps, err = game.Cancelled, seq.Step()+1, nil
	}
	if nil != h {
		if err := h.Save(history.Play{
			Sum:     tune.Sum(),
			Tune:    name,
			Event:   "play",
			Outcome: string(outcome),
			Started: started,
			Played:  seq.Played(),
			Steps:   steps,
		}); nil != err {
			log.Println(err)
		}
	}
	return err
}

func showHistory(name string) error {
	h := &history.DefaultHistory{}
	if err := h.Init(*config.Database); nil != err {
		return err
	}
	defer h.Deinit()

	plays, err := h.Load(name)
	if nil != err {
		return err
	}
	for _, p := range plays {
		fmt.Printf("%v  %-20v %-8v %-10v %4v steps  %v\n",
			p.Started.Format(time.RFC3339), p.Tune, p.Event, p.Outcome, p.Steps, p.Played.Round(time.Millisecond))
	}

	summaries, err := h.Summary()
	if nil != err {
		return err
	}
	fmt.Println()
	for _, s := range summaries {
		if name != "" && s.Tune != name {
			continue
		}
		fmt.Printf("%-20v %-10v %5v plays  %v\n", s.Tune, s.Outcome, s.Count, s.Played.Round(time.Millisecond))
	}
	return nil
}
