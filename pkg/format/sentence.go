package format

import "strings"

// DefaultConnector joins the last two items of a sentence.
const DefaultConnector = "and"

// SentenceOption configures ToSentence.
type SentenceOption func(*sentenceOptions)

type sentenceOptions struct {
	connector     string
	skipLastComma bool
}

// WithConnector sets the word placed before the last item.
func WithConnector(word string) SentenceOption {
	return func(o *sentenceOptions) { o.connector = word }
}

// WithSkipLastComma drops the comma before the connector.
func WithSkipLastComma(skip bool) SentenceOption {
	return func(o *sentenceOptions) { o.skipLastComma = skip }
}

// ToSentence joins items into a readable list: "a, b, and c".
func ToSentence(items []string, opts ...SentenceOption) string {
	o := sentenceOptions{connector: DefaultConnector}
	for _, opt := range opts {
		opt(&o)
	}

	connector := o.connector
	if strings.TrimSpace(connector) != "" {
		connector += " "
	}

	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + connector + items[1]
	}

	last := len(items) - 1
	comma := ","
	if o.skipLastComma {
		comma = ""
	}
	return strings.Join(items[:last], ", ") + comma + " " + connector + items[last]
}
