package tagutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJSONTag(t *testing.T) {
	var testCases = []struct {
		description string
		raw         string
		expect      JSONTag
	}{
		{
			description: "empty tag keeps the field name",
			raw:         "",
			expect:      JSONTag{Name: "Field"},
		},
		{
			description: "name override",
			raw:         "wire_name",
			expect:      JSONTag{Name: "wire_name", Explicit: true},
		},
		{
			description: "name with options",
			raw:         "wire_name,omitempty",
			expect:      JSONTag{Name: "wire_name", Explicit: true},
		},
		{
			description: "options only keep the field name",
			raw:         ",omitempty",
			expect:      JSONTag{Name: "Field"},
		},
		{
			description: "dash marks the field transient",
			raw:         "-",
			expect:      JSONTag{Name: "Field", Ignore: true},
		},
		{
			description: "dash followed by a comma names the member dash",
			raw:         "-,",
			expect:      JSONTag{Name: "-", Explicit: true},
		},
	}

	for _, testCase := range testCases {
		actual := ParseJSONTag("Field", testCase.raw)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}
