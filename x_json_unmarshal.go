package mongocore

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tychoish/fun/ft"
)

// UnmarshalJSON reads a JSON object into the document, preserving the
// order of keys. Integer literals become 32 or 64-bit integers and
// other numbers become doubles. The extended JSON wrappers
// {"$numberInt": "1"}, {"$numberLong": "1"} and {"$numberDouble": "1"}
// select a numeric type explicitly, so that replies like {ok: 1.0} and
// {ok: 1} can be told apart.
//
// The underlying document is not emptied before this operation, which
// for non-empty documents could result in duplicate keys.
func (d *Document) UnmarshalJSON(in []byte) error {
	dec := newJSONDecoder(in)
	doc, err := readJSONDocument(dec)
	if err != nil {
		return err
	}
	if err := expectJSONEnd(dec); err != nil {
		return err
	}

	d.Append(doc.elems...)
	return nil
}

// UnmarshalJSON reads a JSON array into the array, appending to any
// existing values.
func (a *Array) UnmarshalJSON(in []byte) error {
	dec := newJSONDecoder(in)
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "problem reading json array")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return errors.Errorf("expected json array, found %v", tok)
	}

	arr, err := readJSONArray(dec)
	if err != nil {
		return err
	}
	if err := expectJSONEnd(dec); err != nil {
		return err
	}

	a.Append(arr.values...)
	return nil
}

// JSON builds a document from a JSON object.
func (DocumentConstructorError) JSON(in []byte) (*Document, error) {
	doc := DC.New()
	if err := doc.UnmarshalJSON(in); err != nil {
		return nil, err
	}
	return doc, nil
}

// JSON builds a document from a JSON object, panicking if the input
// cannot be parsed. It is meant for literals in tests and fixtures.
func (DocumentConstructor) JSON(in string) *Document { return ft.Must(DCE.JSON([]byte(in))) }

func newJSONDecoder(in []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(in))
	dec.UseNumber()
	return dec
}

func expectJSONEnd(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after json value")
	}
	return nil
}

func readJSONDocument(dec *json.Decoder) (*Document, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "problem reading json document")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Errorf("expected json object, found %v", tok)
	}

	return readJSONObjectBody(dec)
}

func readJSONObjectBody(dec *json.Decoder) (*Document, error) {
	doc := DC.New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(err, "problem reading json key")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("expected json key, found %v", tok)
		}

		val, err := readJSONValue(dec)
		if err != nil {
			return nil, errors.Wrapf(err, "for key %q", key)
		}
		doc.Append(EC.Value(key, val))
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "problem reading end of json object")
	}

	return doc, nil
}

func readJSONArray(dec *json.Decoder) (*Array, error) {
	arr := MakeArray(0)
	for dec.More() {
		val, err := readJSONValue(dec)
		if err != nil {
			return nil, errors.Wrapf(err, "at index %d", arr.Len())
		}
		arr.Append(val)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "problem reading end of json array")
	}

	return arr, nil
}

func readJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "problem reading json value")
	}

	switch t := tok.(type) {
	case nil:
		return VC.Null(), nil
	case bool:
		return VC.Boolean(t), nil
	case string:
		return VC.String(t), nil
	case json.Number:
		return parseJSONNumber(string(t))
	case json.Delim:
		switch t {
		case '{':
			doc, err := readJSONObjectBody(dec)
			if err != nil {
				return nil, err
			}
			return convertExtendedJSON(doc)
		case '[':
			arr, err := readJSONArray(dec)
			if err != nil {
				return nil, err
			}
			return VC.Array(arr), nil
		}
	}

	return nil, errors.Errorf("unexpected json token %v", tok)
}

func parseJSONNumber(num string) (*Value, error) {
	if !strings.ContainsAny(num, ".eE") {
		if i, err := strconv.ParseInt(num, 10, 64); err == nil {
			if i <= math.MaxInt32 && i >= math.MinInt32 {
				return VC.Int32(int32(i)), nil
			}
			return VC.Int64(i), nil
		}
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "problem parsing number %q", num)
	}
	return VC.Double(f), nil
}

func convertExtendedJSON(doc *Document) (*Value, error) {
	if doc.Len() != 1 {
		return VC.Document(doc), nil
	}

	elem := doc.ElementAt(0)
	str, isString := elem.Value().StringValueOK()

	switch elem.Key() {
	case "$numberInt":
		if !isString {
			return nil, errors.New("$numberInt must hold a string")
		}
		i, err := strconv.ParseInt(str, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "problem parsing $numberInt %q", str)
		}
		return VC.Int32(int32(i)), nil
	case "$numberLong":
		if !isString {
			return nil, errors.New("$numberLong must hold a string")
		}
		i, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "problem parsing $numberLong %q", str)
		}
		return VC.Int64(i), nil
	case "$numberDouble":
		if !isString {
			return nil, errors.New("$numberDouble must hold a string")
		}
		switch str {
		case "NaN":
			return VC.Double(math.NaN()), nil
		case "Infinity":
			return VC.Double(math.Inf(1)), nil
		case "-Infinity":
			return VC.Double(math.Inf(-1)), nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "problem parsing $numberDouble %q", str)
		}
		return VC.Double(f), nil
	default:
		return VC.Document(doc), nil
	}
}
