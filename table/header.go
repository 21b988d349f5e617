package table

import "strings"

// Header is the column triple (parameter, value, error).
type Header [3]string

// DefaultHeader is used whenever a caller header cannot be parsed.
var DefaultHeader = Header{"Param", "Value", "Error"}

// Header separators, tried in order.
const (
	sepAmp   = "&"
	sepComma = ","
)

// ParseHeader resolves a caller-supplied header.
//
// Accepted inputs:
//   - string split on "&" into exactly three fields, else on "," into three;
//   - []string or [3]string with exactly three elements;
//   - Header as is (the zero Header maps to DefaultHeader).
//
// Fields are trimmed. Anything else (nil, wrong field count, other types)
// yields DefaultHeader; ParseHeader never fails.
func ParseHeader(v any) Header {
	switch h := v.(type) {
	case Header:
		if h == (Header{}) {
			return DefaultHeader
		}

		return h
	case string:
		for _, sep := range []string{sepAmp, sepComma} {
			if parts := strings.Split(h, sep); len(parts) == 3 {
				return trimmed(parts)
			}
		}
	case []string:
		if len(h) == 3 {
			return trimmed(h)
		}
	case [3]string:
		return trimmed(h[:])
	}

	return DefaultHeader
}

// Markup joins the fields as one tabular row (without the trailing \\).
func (h Header) Markup() string {
	return h[0] + " & " + h[1] + " & " + h[2]
}

func trimmed(parts []string) Header {
	return Header{
		strings.TrimSpace(parts[0]),
		strings.TrimSpace(parts[1]),
		strings.TrimSpace(parts[2]),
	}
}
