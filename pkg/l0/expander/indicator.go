package expander

import (
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/nvic"
)

// Indicator LED patterns and the button input on the expander port.
const (
	ButtonMask byte = 0x80
	LEDIdle    byte = 0x40
	LEDOff     byte = 0x00
	LEDFlash   byte = 0x20
)

// DefaultFlashDelay is how long each flash pattern is shown.
const DefaultFlashDelay = 100 * time.Millisecond

// IntPin is the board pin wired to the expander INT output.
var IntPin = gpio.P(gpio.PortE, 1)

// InterruptPins is the part of gpio.Pins used for the INT line.
type InterruptPins interface {
	DigitalInput(pin gpio.Pin)
	PullUp(pin gpio.Pin)
	InterruptLowLevel(pin gpio.Pin)
	EnableInterrupt(pin gpio.Pin)
	DisableInterrupt(pin gpio.Pin)
	ClearInterrupt(pin gpio.Pin)
}

// InterruptController enables interrupt vectors.
type InterruptController interface {
	Enable(v nvic.Vector) error
	Disable(v nvic.Vector) error
}

// Indicator shows the idle LED and flashes it when the expander button is
// pressed.
type Indicator struct {
	Device     *Device
	Pins       InterruptPins
	IntPin     gpio.Pin
	FlashDelay time.Duration
	Sleep      func(time.Duration)
}

// NewIndicator creates an Indicator.
func NewIndicator(dev *Device, pins InterruptPins) *Indicator {
	return &Indicator{
		Device:     dev,
		Pins:       pins,
		IntPin:     IntPin,
		FlashDelay: DefaultFlashDelay,
		Sleep:      time.Sleep,
	}
}

// SetupInterrupt configures the INT line as a pulled up, level low pin
// interrupt and enables its vector. The vector is disabled while the pin is
// reconfigured.
func (ind *Indicator) SetupInterrupt(ic InterruptController) error {
	vector := nvic.VectorGPIOE
	if err := ic.Disable(vector); err != nil {
		return err
	}
	pin := ind.IntPin
	ind.Pins.DisableInterrupt(pin)
	ind.Pins.DigitalInput(pin)
	ind.Pins.InterruptLowLevel(pin)
	ind.Pins.PullUp(pin)
	ind.Pins.ClearInterrupt(pin)
	ind.Pins.EnableInterrupt(pin)
	return ic.Enable(vector)
}

// Start configures the expander and shows the idle pattern.
func (ind *Indicator) Start() error {
	if err := ind.Device.ConfigureInterruptOnChange(ButtonMask, ButtonMask); err != nil {
		return err
	}
	return ind.Device.SetOutputs(LEDIdle)
}

// HandleInterrupt flashes the LEDs, releases the expander INT line and
// acknowledges the pin interrupt. It returns the port state captured when
// the button interrupt fired.
func (ind *Indicator) HandleInterrupt() (byte, error) {
	for _, pattern := range []byte{LEDOff, LEDFlash} {
		if err := ind.Device.SetOutputs(pattern); err != nil {
			return 0, err
		}
		ind.Sleep(ind.FlashDelay)
	}
	captured, err := ind.Device.ClearInterrupt()
	if err != nil {
		return 0, err
	}
	glog.V(2).Infof("expander: button interrupt, captured 0x%02x", captured)
	if err := ind.Device.SetOutputs(LEDIdle); err != nil {
		return captured, err
	}
	ind.Pins.ClearInterrupt(ind.IntPin)
	return captured, nil
}

// SetPattern shows an LED pattern, the button bit is masked off.
func (ind *Indicator) SetPattern(pattern byte) error {
	return ind.Device.SetOutputs(pattern &^ ButtonMask)
}
