package tone

import (
	"log"

	"git.lost.host/meutraa/pusher/internal/melody"
)

// LogDriver prints calls instead of making sound. Repeated silences are
// folded into one line.
type LogDriver struct {
	logger *log.Logger
	active bool
}

func NewLogDriver(logger *log.Logger) *LogDriver {
	if nil == logger {
		logger = log.Default()
	}
	return &LogDriver{logger: logger}
}

func (d *LogDriver) Activate(hz melody.Pitch) {
	d.active = true
	d.logger.Printf("tone %v (%d Hz)\n", hz, uint16(hz))
}

func (d *LogDriver) Silence() {
	if !d.active {
		return
	}
	d.active = false
	d.logger.Println("silence")
}
