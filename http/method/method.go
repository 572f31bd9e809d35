package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	Unknown Method = iota
	GET
	POST

	// Count carries the greatest integer value among the methods, so the
	// real number of supported methods is lower by 1.
	Count = iota - 1
)

// List contains all the supported methods, Unknown excluded.
var List = []Method{GET, POST}

// Parse converts the first token of a request line into a Method, ignoring
// case. Any verb beyond the two supported ones parses as Unknown. The short
// list is a deliberate restriction, not an oversight.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" || strcomp.EqualFold(str, "GET") {
			return GET
		}
	case 4:
		if str == "POST" || strcomp.EqualFold(str, "POST") {
			return POST
		}
	}

	return Unknown
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return "UNKNOWN"
	}
}
