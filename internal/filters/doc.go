// Package filters implements the stream decompression filters required by
// this extractor: FlateDecode (zlib-wrapped DEFLATE) and ASCIIHexDecode.
// Additional filters can be added here without touching callers, which
// dispatch by name through core.Stream.Decode.
package filters
