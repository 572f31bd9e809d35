package proto

import "github.com/indigo-web/utils/strcomp"

type Proto uint8

const (
	Unknown Proto = iota
	HTTP09
	HTTP10
	HTTP11
)

const (
	tokenLength = len("HTTP/x.x")
	schemeEnd   = len("HTTP/")
	majorOffset = len("HTTP/x") - 1
	dotOffset   = len("HTTP/x.") - 1
	minorOffset = len("HTTP/x.x") - 1
)

var versionLUT = [10][10]Proto{
	0: {9: HTTP09},
	1: {0: HTTP10, 1: HTTP11},
}

// Parse recognizes the protocol version token the request line ends with.
// The scheme is matched ignoring case, the version literally: nothing but
// HTTP/0.9, HTTP/1.0 and HTTP/1.1 is accepted.
func Parse(token string) Proto {
	if len(token) != tokenLength ||
		!strcomp.EqualFold(token[:schemeEnd], "HTTP/") ||
		token[dotOffset] != '.' {
		return Unknown
	}

	return parseVersion(token[majorOffset]-'0', token[minorOffset]-'0')
}

func parseVersion(major, minor uint8) Proto {
	if major > 9 || minor > 9 {
		return Unknown
	}

	return versionLUT[major][minor]
}

// String returns the canonical literal of the protocol version, e.g.
// "HTTP/1.1", and an empty string for Unknown.
func (p Proto) String() string {
	lut := [...]string{Unknown: "", HTTP09: "HTTP/0.9", HTTP10: "HTTP/1.0", HTTP11: "HTTP/1.1"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}
