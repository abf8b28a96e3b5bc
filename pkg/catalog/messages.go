package catalog

// Messages is an in-memory Translator. Plural entries are looked up by the
// singular msgid with the plural index appended after a NUL byte.
type Messages map[string]string

// Identity returns every message unchanged.
var Identity Translator = Messages(nil)

func (m Messages) Gettext(msgid string) string {
	if s, ok := m[msgid]; ok {
		return s
	}
	return msgid
}

func (m Messages) NGettext(msgid, msgidPlural string, n int) string {
	idx := "\x001"
	if n == 1 {
		idx = "\x000"
	}
	if s, ok := m[msgid+idx]; ok {
		return s
	}
	if n == 1 {
		return msgid
	}
	return msgidPlural
}
