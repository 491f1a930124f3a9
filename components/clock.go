package components

import "github.com/yohamta/donburi"

// ClockData is the fixed-step simulation clock.
type ClockData struct {
	DT      float64 // seconds per tick, 1/TPS
	Elapsed float64 // simulated seconds
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
