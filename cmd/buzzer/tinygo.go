//go:build baremetal

package main

import (
	"log"

	"git.lost.host/meutraa/pusher/internal/tone"
)

func init() {
	baremetal = true

	d, err := tone.NewPWMDriver(buzzerPWM, buzzerPin)
	if nil != err {
		log.Println(err)
		return
	}
	driver = d
}
