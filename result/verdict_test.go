package result

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tychoish/mongocore"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  *mongocore.Document
		want Verdict
	}{
		{"BoolTrue", mongocore.DC.Elements(mongocore.EC.Boolean("ok", true)), Ok},
		{"BoolFalse", mongocore.DC.Elements(mongocore.EC.Boolean("ok", false)), NotOk},
		{"DoubleOne", mongocore.DC.Elements(mongocore.EC.Double("ok", 1.0)), Ok},
		{"DoubleZero", mongocore.DC.Elements(mongocore.EC.Double("ok", 0.0)), NotOk},
		{"DoubleNegativeZero", mongocore.DC.Elements(mongocore.EC.Double("ok", math.Copysign(0, -1))), NotOk},
		{"DoubleFraction", mongocore.DC.Elements(mongocore.EC.Double("ok", 0.5)), Ok},
		{"DoubleNaN", mongocore.DC.Elements(mongocore.EC.Double("ok", math.NaN())), NotOk},
		{"Int32One", mongocore.DC.Elements(mongocore.EC.Int32("ok", 1)), Ok},
		{"Int32Zero", mongocore.DC.Elements(mongocore.EC.Int32("ok", 0)), NotOk},
		{"Int64One", mongocore.DC.Elements(mongocore.EC.Int64("ok", 1)), Ok},
		{"Int64Zero", mongocore.DC.Elements(mongocore.EC.Int64("ok", 0)), NotOk},
		{"NegativeNumber", mongocore.DC.Elements(mongocore.EC.Int32("ok", -1)), Ok},
		{"String", mongocore.DC.Elements(mongocore.EC.String("ok", "1")), NotOk},
		{"Null", mongocore.DC.Elements(mongocore.EC.Null("ok")), NotOk},
		{"EmbeddedDocument", mongocore.DC.Elements(mongocore.EC.SubDocumentFromElements("ok", mongocore.EC.Int32("ok", 1))), NotOk},
		{"Absent", mongocore.DC.Elements(mongocore.EC.String("errmsg", "boom")), NotOk},
		{"Empty", mongocore.DC.New(), NotOk},
		{"NilDocument", nil, NotOk},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.doc))
		})
	}
	t.Run("ReflectsCurrentDocument", func(t *testing.T) {
		doc := mongocore.DC.Elements(mongocore.EC.Double("ok", 0))
		assert.Equal(t, NotOk, Classify(doc))
		doc.Set(mongocore.EC.Double("ok", 1))
		assert.Equal(t, Ok, Classify(doc))
	})
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "ok", Ok.String())
		assert.Equal(t, "not ok", NotOk.String())
	})
}

func TestDescribe(t *testing.T) {
	t.Run("NoFields", func(t *testing.T) {
		fd := Describe(mongocore.DC.Elements(mongocore.EC.Int32("ok", 0)))
		assert.Equal(t, UnspecifiedErrorCode, fd.Code)
		assert.False(t, fd.HasCode)
		assert.Empty(t, fd.Message)
		assert.Empty(t, fd.CodeName)
	})
	t.Run("NilDocument", func(t *testing.T) {
		fd := Describe(nil)
		assert.Equal(t, UnspecifiedErrorCode, fd.Code)
		assert.False(t, fd.HasCode)
	})
	t.Run("AllFields", func(t *testing.T) {
		fd := Describe(mongocore.DC.Elements(
			mongocore.EC.Double("ok", 0),
			mongocore.EC.String("errmsg", "ns not found"),
			mongocore.EC.Int32("code", 26),
			mongocore.EC.String("codeName", "NamespaceNotFound"),
		))
		assert.Equal(t, FailureDescriptor{Code: 26, HasCode: true, Message: "ns not found", CodeName: "NamespaceNotFound"}, fd)
	})
	t.Run("CodeTypes", func(t *testing.T) {
		for name, val := range map[string]*mongocore.Value{
			"Int32":  mongocore.VC.Int32(5000),
			"Int64":  mongocore.VC.Int64(5000),
			"Double": mongocore.VC.Double(5000),
		} {
			t.Run(name, func(t *testing.T) {
				fd := Describe(mongocore.DC.Elements(mongocore.EC.Value("code", val)))
				assert.True(t, fd.HasCode)
				assert.Equal(t, 5000, fd.Code)
			})
		}
	})
	t.Run("NonNumericCodeIgnored", func(t *testing.T) {
		fd := Describe(mongocore.DC.Elements(mongocore.EC.String("code", "5000")))
		assert.False(t, fd.HasCode)
		assert.Equal(t, UnspecifiedErrorCode, fd.Code)
	})
	t.Run("MessagePrecedence", func(t *testing.T) {
		for _, tc := range []struct {
			name string
			doc  *mongocore.Document
			want string
		}{
			{
				name: "ErrmsgFirst",
				doc: mongocore.DC.Elements(
					mongocore.EC.String("$err", "legacy"),
					mongocore.EC.String("err", "gle"),
					mongocore.EC.String("errmsg", "command"),
				),
				want: "command",
			},
			{
				name: "ErrBeforeLegacy",
				doc: mongocore.DC.Elements(
					mongocore.EC.String("$err", "legacy"),
					mongocore.EC.String("err", "gle"),
				),
				want: "gle",
			},
			{
				name: "Legacy",
				doc:  mongocore.DC.Elements(mongocore.EC.String("$err", "legacy")),
				want: "legacy",
			},
			{
				name: "NullErrSkipped",
				doc: mongocore.DC.Elements(
					mongocore.EC.Null("err"),
					mongocore.EC.String("$err", "legacy"),
				),
				want: "legacy",
			},
			{
				name: "NonStringIgnored",
				doc:  mongocore.DC.Elements(mongocore.EC.Int32("errmsg", 1)),
				want: "",
			},
		} {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, Describe(tc.doc).Message)
			})
		}
	})
}
