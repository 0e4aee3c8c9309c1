package script

import (
	"scour/internal/errors"
)

// Format is an output format a script can be serialized to.
type Format string

// Supported output formats
const (
	FormatSh   Format = "sh"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Formats lists all supported output formats in display order.
func Formats() []Format {
	return []Format{FormatSh, FormatJSON, FormatCSV}
}

// ParseFormat converts a user supplied string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSh, FormatJSON, FormatCSV:
		return Format(s), nil
	}
	return "", errors.NewSaveError("unsupported format", "", s, errors.UnsupportedFormat, nil)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Next cycles to the following format, wrapping around.
func (f Format) Next() Format {
	all := Formats()
	for i, cand := range all {
		if cand == f {
			return all[(i+1)%len(all)]
		}
	}
	return FormatSh
}
