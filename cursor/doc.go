// Package cursor provides a forward-only byte reader and an appending byte
// writer over in-memory buffers, both fixed to big-endian byte order as
// required by the connector catalog wire format.
//
// In addition to the usual fixed-width integers and IEEE-754 doubles, the
// package implements U2p2, the variable-width unsigned integer primitive
// used throughout connector records (see Reader.U2p2 / Writer.PutU2p2).
package cursor
