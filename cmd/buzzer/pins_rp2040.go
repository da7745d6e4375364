//go:build baremetal && rp2040

package main

import "machine"

// GPIO8 is channel A of PWM slice 4
var (
	buzzerPWM = machine.PWM4
	buzzerPin = machine.GPIO8
)
