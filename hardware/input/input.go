// Package input names the interface the driver uses to feed joystick and
// console-switch state into the machine each frame.
package input

// Input is implemented by the Machine. Every call is an atomic snapshot:
// the driver owns the decision of when a frame's input is "done" and ready
// to be latched into the hardware.
type Input interface {
	SetSWCHA(v uint8)
	SetSWCHB(v uint8)
	SetTrigger0(pressed bool)
	SetTrigger1(pressed bool)
}

// SWCHA bit layout: active low, P0 in the high nibble, P1 in the low.
const (
	P0Right uint8 = 1 << 7
	P0Left  uint8 = 1 << 6
	P0Down  uint8 = 1 << 5
	P0Up    uint8 = 1 << 4
	P1Right uint8 = 1 << 3
	P1Left  uint8 = 1 << 2
	P1Down  uint8 = 1 << 1
	P1Up    uint8 = 1 << 0
)

// SWCHB bit layout: active low console switches.
const (
	Reset  uint8 = 1 << 0
	Select uint8 = 1 << 1
)
