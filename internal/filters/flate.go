package filters

import (
	"bytes"
	"compress/zlib"
	"io"

	"github.com/tsawler/pdftext/pdferr"
)

// FlateDecode decompresses zlib-wrapped DEFLATE data, as used by
// /FlateDecode streams.
func FlateDecode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, pdferr.Wrap(pdferr.DecompressError, "zlib header", err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, pdferr.Wrap(pdferr.DecompressError, "inflate", err)
	}
	return buf.Bytes(), nil
}
