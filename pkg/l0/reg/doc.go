// Package reg provides access to memory-mapped peripheral registers.
//
// All drivers under pkg/l0 talk to hardware exclusively through a Bus. On the
// device a Bus dereferences the peripheral address space; on a host the Bus
// is a Memory (a register file with behavior hooks, see pkg/sim/board) or a
// Recorder wrapping another Bus to capture the exact access sequence.
//
// Accesses are not synchronized. Ordering is whatever the calling code
// imposes, the same as the instruction stream on the device.
package reg
