// Package pixel converts between packed RGB565 and RGB888 pixel data.
package pixel

// RGB565 samples are 16-bit values laid out as RRRRR GGGGGG BBBBB and are
// transferred big-endian, 2 bytes per pixel. RGB888 samples are 3 bytes
// per pixel (R, G, B) without padding.
//
// Decoding expands each field to 8 bits by replicating its high bits into
// the low bits, so 0 maps to 0 and the field maximum maps to 255.
// Encoding truncates each channel to its field width.
