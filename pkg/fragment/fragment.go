// Package fragment decodes deep-link payloads of the form
// "#list=<percent-encoded text>&print=1" into an initial list text
// and an auto-export flag.
package fragment

import (
	"fmt"
	"net/url"
	"strings"
)

// Payload is a decoded deep link.
type Payload struct {
	// Text pre-populates the list input.
	Text string
	// AutoExport requests an immediate snapshot export.
	AutoExport bool
}

// Decode parses a fragment string. A leading '#' is tolerated. An
// empty fragment decodes to an empty payload rather than an error.
func Decode(frag string) (Payload, error) {
	frag = strings.TrimPrefix(strings.TrimSpace(frag), "#")
	if frag == "" {
		return Payload{}, nil
	}

	values, err := url.ParseQuery(frag)
	if err != nil {
		return Payload{}, fmt.Errorf("fragment: parse: %w", err)
	}

	p := Payload{Text: values.Get("list")}
	switch values.Get("print") {
	case "1", "true", "yes":
		p.AutoExport = true
	}
	return p, nil
}

// Encode builds a fragment for the given payload, for sharing.
func Encode(p Payload) string {
	values := url.Values{}
	if p.Text != "" {
		values.Set("list", p.Text)
	}
	if p.AutoExport {
		values.Set("print", "1")
	}
	return "#" + values.Encode()
}
