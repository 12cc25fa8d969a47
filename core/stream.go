package core

import (
	"github.com/tsawler/pdftext/internal/filters"
	"github.com/tsawler/pdftext/pdferr"
)

// Decode applies the filters named in the stream dictionary's /Filter entry
// (a single Name, or an ordered Array of Names) left to right, returning the
// decompressed payload. A stream with no /Filter returns its raw data
// unchanged.
func (s *Stream) Decode() ([]byte, error) {
	filterObj := s.Dict.Get("Filter")
	if filterObj == nil {
		return s.Data, nil
	}

	names, err := filterNames(filterObj)
	if err != nil {
		return nil, err
	}

	data := s.Data
	for _, name := range names {
		data, err = decodeOne(data, name)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func filterNames(obj Object) ([]string, error) {
	switch v := obj.(type) {
	case Name:
		return []string{string(v)}, nil
	case Array:
		names := make([]string, 0, len(v))
		for _, o := range v {
			n, ok := o.(Name)
			if !ok {
				return nil, pdferr.New(pdferr.InvalidStructure, "Filter array element is not a name")
			}
			names = append(names, string(n))
		}
		return names, nil
	default:
		return nil, pdferr.New(pdferr.InvalidStructure, "Filter must be a name or array of names")
	}
}

func decodeOne(data []byte, name string) ([]byte, error) {
	switch name {
	case "FlateDecode", "Fl":
		return filters.FlateDecode(data)
	case "ASCIIHexDecode", "AHx":
		return filters.ASCIIHexDecode(data)
	default:
		return nil, pdferr.New(pdferr.UnsupportedFilter, name)
	}
}
