package mongocore

import (
	"math"
	"testing"
)

func TestJSONUnmarshal(t *testing.T) {
	t.Run("Document", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			in   string
			want *Document
		}{
			{
				name: "Empty",
				in:   `{}`,
				want: DC.New(),
			},
			{
				name: "ReplyWithDoubleOk",
				in:   `{"ok": 0.0, "errmsg": "no not found", "code": 5000}`,
				want: DC.Elements(EC.Double("ok", 0), EC.String("errmsg", "no not found"), EC.Int32("code", 5000)),
			},
			{
				name: "KeyOrderIsKept",
				in:   `{"z": 1, "a": true, "m": null}`,
				want: DC.Elements(EC.Int32("z", 1), EC.Boolean("a", true), EC.Null("m")),
			},
			{
				name: "LargeInteger",
				in:   `{"n": 8589934592}`,
				want: DC.Elements(EC.Int64("n", 8589934592)),
			},
			{
				name: "Int32Boundaries",
				in:   `{"max": 2147483647, "min": -2147483648, "over": 2147483648, "under": -2147483649}`,
				want: DC.Elements(
					EC.Int32("max", math.MaxInt32),
					EC.Int32("min", math.MinInt32),
					EC.Int64("over", math.MaxInt32+1),
					EC.Int64("under", math.MinInt32-1),
				),
			},
			{
				name: "Exponent",
				in:   `{"n": 1e3}`,
				want: DC.Elements(EC.Double("n", 1000)),
			},
			{
				name: "Nested",
				in:   `{"writeErrors": [{"index": 0, "code": 11000}], "writeConcernError": {"code": 64}}`,
				want: DC.Elements(
					EC.ArrayFromValues("writeErrors", VC.DocumentFromElements(EC.Int32("index", 0), EC.Int32("code", 11000))),
					EC.SubDocumentFromElements("writeConcernError", EC.Int32("code", 64)),
				),
			},
			{
				name: "ExtendedNumbers",
				in:   `{"a": {"$numberInt": "1"}, "b": {"$numberLong": "1"}, "c": {"$numberDouble": "1"}}`,
				want: DC.Elements(EC.Int32("a", 1), EC.Int64("b", 1), EC.Double("c", 1)),
			},
			{
				name: "ExtendedNaN",
				in:   `{"ok": {"$numberDouble": "NaN"}}`,
				want: DC.Elements(EC.Double("ok", math.NaN())),
			},
			{
				name: "UnknownOperatorIsDocument",
				in:   `{"hint": {"$natural": 1}}`,
				want: DC.Elements(EC.SubDocumentFromElements("hint", EC.Int32("$natural", 1))),
			},
		} {
			t.Run(tc.name, func(t *testing.T) {
				doc, err := DCE.JSON([]byte(tc.in))
				requireErrEqual(t, nil, err)
				requireDocEqual(t, tc.want, doc)
			})
		}
	})
	t.Run("Errors", func(t *testing.T) {
		for name, in := range map[string]string{
			"Malformed":       `{"ok": }`,
			"NotObject":       `[1, 2]`,
			"Null":            `null`,
			"TrailingData":    `{"ok": 1} {}`,
			"BadNumberInt":    `{"a": {"$numberInt": "3000000000"}}`,
			"NumberIntType":   `{"a": {"$numberInt": 1}}`,
			"BadNumberLong":   `{"a": {"$numberLong": "x"}}`,
			"BadNumberDouble": `{"a": {"$numberDouble": "one"}}`,
			"Empty":           ``,
		} {
			t.Run(name, func(t *testing.T) {
				if _, err := DCE.JSON([]byte(in)); err == nil {
					t.Errorf("expected error for %q", in)
				}
			})
		}
	})
	t.Run("AppendsToExisting", func(t *testing.T) {
		doc := DC.Elements(EC.Int32("ok", 1))
		if err := doc.UnmarshalJSON([]byte(`{"ok": 0}`)); err != nil {
			t.Fatal(err)
		}
		if doc.Len() != 2 {
			t.Errorf("expected duplicate keys after unmarshal, got %s", doc)
		}
	})
	t.Run("Array", func(t *testing.T) {
		arr := MakeArray(0)
		if err := arr.UnmarshalJSON([]byte(`[1, "two", {"three": 3.5}, [null]]`)); err != nil {
			t.Fatal(err)
		}
		if arr.Len() != 4 {
			t.Fatalf("unexpected array %s", arr)
		}
		v, _ := arr.Lookup(2)
		if f := v.MutableDocument().Lookup("three").Double(); f != 3.5 {
			t.Errorf("unexpected nested value %v", f)
		}
		if err := MakeArray(0).UnmarshalJSON([]byte(`{"a": 1}`)); err == nil {
			t.Error("expected error for object input")
		}
	})
	t.Run("MustJSONPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected parse error panic")
			}
		}()
		DC.JSON(`{"ok"`)
	})
}
