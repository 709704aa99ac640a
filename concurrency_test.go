package njson

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Concurrent first decodes of the same type race on the plan build;
// every goroutine must still observe identical results.
func TestDecode_ConcurrentSameType(t *testing.T) {
	type record struct {
		ID    int
		Name  string
		Tags  []string
		Child *basicRecord
	}
	data := []byte(`{"ID":7,"Name":"racer","Tags":["a","b"],"Child":{"Value":1}}`)
	expect := record{ID: 7, Name: "racer", Tags: []string{"a", "b"}, Child: &basicRecord{Value: 1}}

	var wg sync.WaitGroup
	results := make([]record, 32)
	errs := make([]error, 32)
	for i := 0; i < len(results); i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			errs[slot] = Decode(data, &results[slot])
		}(i)
	}
	wg.Wait()

	for i := range results {
		assert.Nil(t, errs[i])
		assert.EqualValues(t, expect, results[i])
	}
}

func TestDecode_RepeatedCallsAreIdempotent(t *testing.T) {
	data := []byte(`{"Value":3,"Name":"same"}`)
	for i := 0; i < 100; i++ {
		var out basicRecord
		err := Decode(data, &out)
		assert.Nil(t, err)
		assert.EqualValues(t, basicRecord{Value: 3, Name: "same"}, out)
	}
}
