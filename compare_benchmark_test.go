package njson

import (
	stdjson "encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/francoispqt/gojay"
	"github.com/tidwall/gjson"
)

type compareBasic struct {
	ID   int
	Name string
	Flag bool
}

type compareAdvanced struct {
	ID      int
	Name    string
	Score   float64
	Tags    []string
	Payload map[string]string
	Child   *compareBasic
}

func (c *compareBasic) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "ID":
		return dec.Int(&c.ID)
	case "Name":
		return dec.String(&c.Name)
	case "Flag":
		return dec.Bool(&c.Flag)
	}
	return nil
}

func (c *compareBasic) NKeys() int { return 3 }

var compareBasicData = []byte(`{"ID":7,"Name":"alpha","Flag":true}`)

var compareAdvancedData = []byte(`{"ID":11,"Name":"beta","Score":99.1,` +
	`"Tags":["x","y","z"],"Payload":{"k1":"1","k2":"v2"},` +
	`"Child":{"ID":1,"Name":"child","Flag":true}}`)

func BenchmarkCompare_Decode_Basic_Njson(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareBasic
		if err := Decode(compareBasicData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Decode_Basic_Stdlib(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareBasic
		if err := stdjson.Unmarshal(compareBasicData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Decode_Basic_Sonic(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareBasic
		if err := sonic.Unmarshal(compareBasicData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Decode_Basic_Gojay(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareBasic
		if err := gojay.UnmarshalJSONObject(compareBasicData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Decode_Advanced_Njson(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareAdvanced
		if err := Decode(compareAdvancedData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Decode_Advanced_Stdlib(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareAdvanced
		if err := stdjson.Unmarshal(compareAdvancedData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Decode_Advanced_Sonic(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareAdvanced
		if err := sonic.Unmarshal(compareAdvancedData, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Dynamic_Njson(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if v := DecodeAny(compareAdvancedData); v == nil {
			b.Fatal("unexpected nil")
		}
	}
}

func BenchmarkCompare_Dynamic_Gjson(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if v := gjson.ParseBytes(compareAdvancedData).Value(); v == nil {
			b.Fatal("unexpected nil")
		}
	}
}
