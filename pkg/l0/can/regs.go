package can

import (
	"github.com/robotalks/tiva.go/pkg/l0/gpio"
	"github.com/robotalks/tiva.go/pkg/l0/nvic"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	"github.com/robotalks/tiva.go/pkg/l0/sysctl"
)

// CTL bits.
const (
	CTLInit uint32 = 0x01
	CTLIE   uint32 = 0x02
	CTLSIE  uint32 = 0x04
	CTLEIE  uint32 = 0x08
	CTLDAR  uint32 = 0x20
	CTLCCE  uint32 = 0x40
	CTLTest uint32 = 0x80
)

// STS bits.
const (
	STSLECMask uint32 = 0x07
	STSTxOK    uint32 = 0x08
	STSRxOK    uint32 = 0x10
	STSEPass   uint32 = 0x20
	STSEWarn   uint32 = 0x40
	STSBusOff  uint32 = 0x80
)

// INT values.
const (
	INTIDMask   uint32 = 0xFFFF
	INTIDStatus uint32 = 0x8000
)

// IFnCRQ bits.
const (
	CRQBusy    uint32 = 0x8000
	CRQMNumMax uint32 = 0x3F
)

// IFnCMSK bits.
const (
	CMSKDataB     uint32 = 0x01
	CMSKDataA     uint32 = 0x02
	CMSKTxRqst    uint32 = 0x04
	CMSKClrIntPnd uint32 = 0x08
	CMSKControl   uint32 = 0x10
	CMSKArb       uint32 = 0x20
	CMSKMask      uint32 = 0x40
	CMSKWrNRd     uint32 = 0x80
)

// IFnMCTL bits.
const (
	MCTLDLCMask uint32 = 0x000F
	MCTLEOB     uint32 = 0x0080
	MCTLTxRqst  uint32 = 0x0100
	MCTLRmtEn   uint32 = 0x0200
	MCTLRxIE    uint32 = 0x0400
	MCTLTxIE    uint32 = 0x0800
	MCTLUMask   uint32 = 0x1000
	MCTLIntPnd  uint32 = 0x2000
	MCTLMsgLst  uint32 = 0x4000
	MCTLNewDat  uint32 = 0x8000
)

// IFnARB2 bits.
const (
	ARB2IDMask uint16 = 0x1FFF
	ARB2Dir    uint16 = 0x2000
	ARB2Xtd    uint16 = 0x4000
	ARB2MsgVal uint16 = 0x8000
)

// Interface is the address set of one message object interface.
type Interface struct {
	CRQ  reg.Addr
	CMSK reg.Addr
	MSK1 reg.Addr
	MSK2 reg.Addr
	ARB1 reg.Addr
	ARB2 reg.Addr
	MCTL reg.Addr
	// Data holds DA1, DA2, DB1, DB2, two payload bytes each.
	Data [4]reg.Addr
}

func interfaceAt(base reg.Addr) Interface {
	return Interface{
		CRQ:  base,
		CMSK: base.Offset(0x04),
		MSK1: base.Offset(0x08),
		MSK2: base.Offset(0x0C),
		ARB1: base.Offset(0x10),
		ARB2: base.Offset(0x14),
		MCTL: base.Offset(0x18),
		Data: [4]reg.Addr{
			base.Offset(0x1C),
			base.Offset(0x20),
			base.Offset(0x24),
			base.Offset(0x28),
		},
	}
}

// Regs is the register map of one controller.
type Regs struct {
	CTL  reg.Addr
	STS  reg.Addr
	ERR  reg.Addr
	BIT  reg.Addr
	INT  reg.Addr
	BRPE reg.Addr
	IF1  Interface
	IF2  Interface
}

// RegsAt returns the register map of the controller at base.
func RegsAt(base reg.Addr) Regs {
	return Regs{
		CTL:  base,
		STS:  base.Offset(0x04),
		ERR:  base.Offset(0x08),
		BIT:  base.Offset(0x0C),
		INT:  base.Offset(0x10),
		BRPE: base.Offset(0x18),
		IF1:  interfaceAt(base.Offset(0x20)),
		IF2:  interfaceAt(base.Offset(0x80)),
	}
}

// Module describes one CAN controller instance and its board wiring.
type Module struct {
	Index  int
	Base   reg.Addr
	Gate   sysctl.Gate
	Rx     gpio.Pin
	Tx     gpio.Pin
	Func   gpio.Function
	Vector nvic.Vector
}

// Controllers available on the TM4C123GH6PM.
var (
	CAN0 = Module{
		Index:  0,
		Base:   0x40040000,
		Gate:   sysctl.GateCAN0,
		Rx:     gpio.CAN0Rx,
		Tx:     gpio.CAN0Tx,
		Func:   gpio.FuncCAN0,
		Vector: nvic.VectorCAN0,
	}
	CAN1 = Module{
		Index:  1,
		Base:   0x40041000,
		Gate:   sysctl.GateCAN1,
		Rx:     gpio.CAN1Rx,
		Tx:     gpio.CAN1Tx,
		Func:   gpio.FuncCAN1,
		Vector: nvic.VectorCAN1,
	}
)
