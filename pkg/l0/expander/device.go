package expander

// Registers.
const (
	RegIODIR   byte = 0x00
	RegIPOL    byte = 0x01
	RegGPINTEN byte = 0x02
	RegDEFVAL  byte = 0x03
	RegINTCON  byte = 0x04
	RegIOCON   byte = 0x05
	RegGPPU    byte = 0x06
	RegINTF    byte = 0x07
	RegINTCAP  byte = 0x08
	RegGPIO    byte = 0x09
	RegOLAT    byte = 0x0A
)

// Device is an MCP23008 or MCP23S08.
type Device struct {
	t Transport
}

// NewDevice creates a Device on a Transport.
func NewDevice(t Transport) *Device {
	return &Device{t: t}
}

// Transport returns the underlying transport.
func (d *Device) Transport() Transport {
	return d.t
}

// ConfigureInterruptOnChange makes the pins in mask inputs, all others
// outputs, and raises INT when an input differs from its idle level in
// defval.
func (d *Device) ConfigureInterruptOnChange(mask, defval byte) error {
	for _, w := range []struct{ r, v byte }{
		{RegIODIR, mask},
		{RegDEFVAL, defval},
		{RegINTCON, mask},
		{RegGPINTEN, mask},
	} {
		if err := d.t.WriteReg(w.r, w.v); err != nil {
			return err
		}
	}
	return nil
}

// SetOutputs writes the port latch.
func (d *Device) SetOutputs(v byte) error {
	return d.t.WriteReg(RegGPIO, v)
}

// ReadInputs reads the port.
func (d *Device) ReadInputs() (byte, error) {
	return d.t.ReadReg(RegGPIO)
}

// ClearInterrupt reads INTCAP, which releases INT, and returns the port
// state captured when the interrupt fired.
func (d *Device) ClearInterrupt() (byte, error) {
	return d.t.ReadReg(RegINTCAP)
}
