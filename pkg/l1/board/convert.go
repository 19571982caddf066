package board

import (
	"math"

	"github.com/robotalks/tiva.go/pkg/l0/can"
	"github.com/robotalks/tiva.go/pkg/l0/hib"
	"github.com/robotalks/tiva.go/pkg/l0/reg"
	pb "github.com/robotalks/tiva.go/pkg/proto/tiva/l1/v1"
)

func pbTiming(t can.BitTiming, f can.TimingFields, running bool) pb.CanTiming {
	return pb.CanTiming{
		ClockHz:     t.ClockHz,
		BitRate:     uint32(math.Round(f.BitRate(t.ClockHz))),
		Prescaler:   uint32(f.Prescaler),
		Tseg1:       uint32(f.TimeSeg1),
		Tseg2:       uint32(f.TimeSeg2),
		Sjw:         uint32(f.SJW),
		SamplePoint: f.SamplePoint(),
		BitReg:      f.BitReg(),
		Running:     running,
	}
}

func pbFrameSent(f *can.Frame) pb.CanFrameSent {
	id, ext := f.Identifier()
	return pb.CanFrameSent{
		Slot:     uint32(f.Slot),
		Id:       id,
		Extended: ext,
		Data:     append([]byte(nil), f.Payload()...),
	}
}

func pbTxDone(ev can.Event) pb.CanTxDone {
	return pb.CanTxDone{Slot: uint32(ev.Slot), Status: ev.Status}
}

func pbWakeEvent(w hib.WakeEvent) pb.WakeEvent {
	return pb.WakeEvent{Reasons: w.String()}
}

func pbHibStatus(initialized bool, w hib.WakeEvent, counter uint32) pb.HibStatus {
	return pb.HibStatus{Initialized: initialized, WakeReasons: w.String(), Counter: counter}
}

func pbButton(captured byte) pb.ButtonPressed {
	return pb.ButtonPressed{Captured: uint32(captured)}
}

func pbRegValue(addr reg.Addr, val uint32) pb.RegValue {
	return pb.RegValue{Addr: uint32(addr), Value: val}
}
