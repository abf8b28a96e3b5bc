package i18n

import (
	"fmt"
	"strings"
)

// Method identifies where a locale came from.
type Method uint8

const (
	MethodDefault Method = iota
	MethodHeader
	MethodCookie
	MethodSession
	MethodParam
)

var methodNames = map[Method]string{
	MethodDefault: "default",
	MethodHeader:  "header",
	MethodCookie:  "cookie",
	MethodSession: "session",
	MethodParam:   "param",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("method(%d)", m)
}

// ParseMethod maps "header", "cookie", "session", "param" or "default" to
// a Method.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return MethodDefault, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ParseMethods parses a comma-separated priority list such as
// "param,cookie,header". Empty items are skipped.
func ParseMethods(s string) ([]Method, error) {
	var out []Method
	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := ParseMethod(part)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
