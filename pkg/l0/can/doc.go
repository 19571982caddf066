// Package can drives the TM4C123 CAN controllers (Bosch C_CAN).
package can

// The controller keeps 32 message objects in its own RAM. Software never
// addresses them directly: a message object is staged in one of the two
// interface register sets (IF1, IF2) and copied in or out by writing its
// number to the interface's command request register.
//
// Transmit uses IF1 exclusively, the interrupt handler uses IF2. An interface
// is a single-writer resource: a sequence of interface register writes must
// not be interleaved with another sequence on the same interface. The driver
// doesn't lock. Callers which transmit from more than one goroutine go
// through a TxQueue, callers sharing the interface with an interrupt handler
// mask the interrupt around the call.
//
// Configuration registers (CANBIT, CANBRPE) are writable only while both
// CTL.INIT and CTL.CCE are set. Init is the only place the driver does that.
