// Package bitpack implements the little-bit-order byte packing convention
// shared by decoder backends and the collection driver.
//
// Convention: bit i of a logical bit-vector lives at byte i/8, bit position
// i%8 counting from the least-significant bit. A vector of n bits occupies
// exactly ceil(n/8) bytes; unused high bits in the final byte are zero on
// write and ignored on read. The format is bit-exact with numpy's
// packbits/unpackbits under bitorder="little", which is what syndrome
// samplers and decoding harnesses in this domain exchange.
package bitpack
