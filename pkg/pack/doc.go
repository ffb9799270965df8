// Package pack provides serial pack framing.
package pack

// A serial pack delivers a named payload over a byte-oriented link
// (USB Serial/JTAG, UART) to the device:
//
//   [path (ASCII)] 0x0A [length (uint32, little-endian)] [payload]
//
// The path identifies the handler on the device. It must not contain
// spaces or newlines. There is no terminator: the receiver relies on the
// length to find the end of the payload. There is no checksum, and no
// session state: each pack stands alone.
//
// Producer: host tools
// Consumer: device firmware
