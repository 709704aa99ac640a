// Package tagutil parses the subset of the json struct tag the decoder
// honours: the member name and the "-" transient marker.
package tagutil

import "strings"

type JSONTag struct {
	Name     string
	Explicit bool
	Ignore   bool
}

// ParseJSONTag resolves the effective member name for a struct field.
// An empty tag keeps the field name; `json:"-"` marks the field
// transient unless followed by a comma, which names the member "-".
func ParseJSONTag(defaultName string, raw string) JSONTag {
	if raw == "" {
		return JSONTag{Name: defaultName}
	}
	name := raw
	if idx := strings.IndexByte(raw, ','); idx != -1 {
		name = raw[:idx]
	}
	if name == "-" {
		if raw == "-" {
			return JSONTag{Name: defaultName, Ignore: true}
		}
		return JSONTag{Name: "-", Explicit: true}
	}
	if name == "" {
		return JSONTag{Name: defaultName}
	}
	return JSONTag{Name: name, Explicit: true}
}
