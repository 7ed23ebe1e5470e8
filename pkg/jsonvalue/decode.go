// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Decode decodes a single JSON document into a Value.
// Numbers without a fraction or exponent decode as Int when they
// fit in an int64; all other numbers decode as Float. Object
// member order is preserved.
func Decode(data []byte) (Value, error) {
	// The token decoder alone does not reject every malformed
	// literal, so check the whole document first.
	if !stdjson.Valid(data) {
		return Value{}, errors.New("malformed JSON document")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

// DecodeString is Decode for a string input.
func DecodeString(s string) (Value, error) {
	return Decode([]byte(s))
}

// decodeValue decodes the next value from the token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

// decodeToken decodes the value starting at an already-read token.
func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case bool:
		return MakeBool(t), nil
	case string:
		return MakeString(t), nil
	case json.Number:
		return decodeNumber(t)
	case nil:
		return MakeNull(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v of type %T", tok, tok)
	}
}

// decodeObject decodes members until the closing brace.
func decodeObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key %v is not a string", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return MakeObject(members), nil
}

// decodeArray decodes elements until the closing bracket.
func decodeArray(dec *json.Decoder) (Value, error) {
	var elems []Value
	for dec.More() {
		e, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, e)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return MakeArray(elems), nil
}

// decodeNumber decodes a number token, preserving the
// integer/float distinction of the source text.
func decodeNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return MakeInt(i), nil
		}
		// Out of int64 range.
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("bad number %q: %v", s, err)
	}
	return MakeFloat(f), nil
}
