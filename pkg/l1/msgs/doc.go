// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between the board controller and its
// clients (tivash, tivamon, bridges). Every message is a protobuf
// payload wrapped in Typed:
//
//   - commands have the kind bit and reply bit cleared;
//   - replies set the reply bit (0x8000) of the command type;
//   - events set the kind bit (0x80000000).
//
// Producer: board controller
// Consumer: shell, monitor and bridges
