package njson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Compact(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "plain object",
			input:       `{"a":1}`,
			expect:      `{"a":1}`,
		},
		{
			description: "whitespace outside strings removed",
			input:       "{\n \"a\" : 1 ,\r\n \"b\" :\t2 }",
			expect:      `{"a":1,"b":2}`,
		},
		{
			description: "whitespace inside strings preserved",
			input:       `{ "a" : "x  y" }`,
			expect:      `{"a":"x  y"}`,
		},
		{
			description: "escaped quote does not end the literal",
			input:       `{"a": "x \" y"}`,
			expect:      `{"a":"x \" y"}`,
		},
		{
			description: "escaped backslash before a quote",
			input:       `{"a": "x\\"}`,
			expect:      `{"a":"x\\"}`,
		},
		{
			description: "unterminated string runs to end of input",
			input:       `{"a": "open`,
			expect:      `{"a":"open`,
		},
		{
			description: "empty input",
			input:       ``,
			expect:      ``,
		},
	}

	for _, testCase := range testCases {
		s := newSession(scalarScannerHooks{})
		actual := s.compact([]byte(testCase.input))
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		s.release()
	}
}
