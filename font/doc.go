// Package font builds per-font byte(s)->Unicode decoders from a page's
// /Resources /Font dictionary: from a ToUnicode CMap stream when present,
// otherwise from predefined single-byte encodings (WinAnsiEncoding,
// MacRomanEncoding, or a Differences-augmented base encoding), falling back
// to WinAnsi. Decoded text is NFC-normalized.
package font
