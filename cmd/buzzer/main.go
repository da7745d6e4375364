package main

import (
	"log"
	"time"

	"git.lost.host/meutraa/pusher/internal/melody"
	"git.lost.host/meutraa/pusher/internal/sequencer"
	"git.lost.host/meutraa/pusher/internal/tone"
	"git.lost.host/meutraa/pusher/internal/tunes"
)

var (
	baremetal = false
)

// driver is swapped for the piezo buzzer on a microcontroller
var driver tone.Driver = tone.NewLogDriver(log.Default())

// sleep pauses for about d and returns how long it really took
var sleep = func(d time.Duration) time.Duration {
	start := time.Now()
	time.Sleep(d)
	return time.Since(start)
}

const (
	tick  = 5 * time.Millisecond
	pause = 2 * time.Second
)

var timing = sequencer.Timing{WholeNote: time.Second, GapPermille: 100}

func main() {
	if baremetal {
		time.Sleep(3 * time.Second)
	}

	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// run plays every compiled in tune in turn. A microcontroller keeps
// going round forever.
func run() error {
	seq, err := sequencer.New(driver, timing)
	if nil != err {
		return err
	}
	registry := tunes.Default()

	for {
		for _, name := range registry.Names() {
			tune, _ := registry.Get(name)
			log.Println("playing", name)
			loop(seq, tune, tick, sleep)
			sleep(pause)
		}
		if !baremetal {
			return nil
		}
	}
}

// loop plays tune to the end, advancing seq by the time every tick took.
func loop(seq sequencer.Sequencer, tune *melody.Tune, tick time.Duration, sleep func(time.Duration) time.Duration) {
	seq.Start(tune)
	for seq.IsPlaying() {
		seq.Advance(sleep(tick))
	}
}
