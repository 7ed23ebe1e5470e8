// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"errors"
	"time"

	"github.com/altshiftab/jsval/pkg/jsonvalue"
	"github.com/altshiftab/jsval/pkg/keyword"
	"github.com/brianvoe/gofakeit/v6"
)

// maxGenerateDepth bounds the recursion of Generate.
const maxGenerateDepth = 64

// Generate produces a sample instance for the schema at root.
//
// Explicit instance material wins: the first example, then the
// default, then const, then the first enum entry. Otherwise an
// instance is built from the declared type, recursing through
// properties, prefixItems and items, with fake leaf data shaped
// by the schema's format and numeric bounds. The result is not
// guaranteed to validate against schemas built around pattern,
// composition or dependency keywords.
func (ctx *Context) Generate(root Index) (jsonvalue.Value, error) {
	return generateValue(ctx, root, 0)
}

func generateValue(ctx *Context, idx Index, depth int) (jsonvalue.Value, error) {
	if depth > maxGenerateDepth {
		return jsonvalue.Value{}, errors.New("schema too deep to generate an example")
	}

	s := ctx.get(idx)
	if s.BoolSchema {
		if !s.BoolValue {
			return jsonvalue.Value{}, errors.New("cannot generate an example for the false schema")
		}
		return jsonvalue.MakeNull(), nil
	}

	switch {
	case len(s.Examples) > 0:
		return s.Examples[0], nil
	case s.Flags.Has(keyword.Default):
		return s.Default, nil
	case s.Flags.Has(keyword.Const):
		return s.Const, nil
	case len(s.Enums) > 0:
		return s.Enums[0], nil
	}

	var t InstanceType
	switch {
	case len(s.Types) > 0:
		t = s.Types[0]
	case len(s.PropertiesChildren) > 0:
		t = ObjectType
	case s.Flags.Has(keyword.Items) || s.Flags.Has(keyword.PrefixItems):
		t = ArrayType
	default:
		return jsonvalue.MakeNull(), nil
	}

	switch t {
	case NullType:
		return jsonvalue.MakeNull(), nil

	case BooleanType:
		return jsonvalue.MakeBool(gofakeit.Bool()), nil

	case StringType:
		return jsonvalue.MakeString(generateString(s)), nil

	case IntegerType:
		lo, hi := numericBounds(s)
		return jsonvalue.MakeInt(int64(gofakeit.Number(int(lo), int(hi)))), nil

	case NumberType:
		lo, hi := numericBounds(s)
		return jsonvalue.MakeFloat(gofakeit.Float64Range(lo, hi)), nil

	case ArrayType:
		var elems []jsonvalue.Value
		for _, ci := range s.PrefixItems {
			e, err := generateValue(ctx, ci, depth+1)
			if err != nil {
				return jsonvalue.Value{}, err
			}
			elems = append(elems, e)
		}
		if s.Flags.Has(keyword.Items) {
			n := 1
			if s.Flags.Has(keyword.MinItems) && s.MinItems > len(elems) {
				n = s.MinItems - len(elems)
			}
			for range n {
				e, err := generateValue(ctx, s.Items, depth+1)
				if err != nil {
					return jsonvalue.Value{}, err
				}
				elems = append(elems, e)
			}
		}
		return jsonvalue.MakeArray(elems), nil

	case ObjectType:
		var members []jsonvalue.Member
		seen := make(map[string]bool)
		for _, ci := range s.PropertiesChildren {
			child := ctx.get(ci)
			v, err := generateValue(ctx, ci, depth+1)
			if err != nil {
				return jsonvalue.Value{}, err
			}
			members = append(members, jsonvalue.Member{Key: child.Name, Value: v})
			seen[child.Name] = true
		}
		// Required keys without a property subschema still need
		// a value.
		for _, key := range s.Required {
			if !seen[key] {
				members = append(members, jsonvalue.Member{Key: key, Value: jsonvalue.MakeString(gofakeit.Word())})
			}
		}
		return jsonvalue.MakeObject(members), nil

	default:
		return jsonvalue.MakeNull(), nil
	}
}

// generateString produces a leaf string, shaped by the schema's
// format name and minLength.
func generateString(s *Schema) string {
	switch s.FormatName {
	case "email", "idn-email":
		return gofakeit.Email()
	case "uuid":
		return gofakeit.UUID()
	case "ipv4":
		return gofakeit.IPv4Address()
	case "ipv6":
		return gofakeit.IPv6Address()
	case "hostname", "idn-hostname":
		return gofakeit.DomainName()
	case "uri", "uri-reference":
		return gofakeit.URL()
	case "date-time":
		return gofakeit.Date().UTC().Format(time.RFC3339)
	case "date":
		return gofakeit.Date().UTC().Format("2006-01-02")
	}
	if s.Flags.Has(keyword.MinLength) && s.MinLength > 0 {
		return gofakeit.LetterN(uint(s.MinLength))
	}
	return gofakeit.Word()
}

// numericBounds returns generation bounds honoring minimum,
// maximum and their exclusive forms.
func numericBounds(s *Schema) (float64, float64) {
	lo, hi := 0.0, 100.0
	if s.Flags.Has(keyword.Minimum) {
		lo = s.Minimum
	}
	if s.Flags.Has(keyword.ExclusiveMinimum) {
		lo = s.ExclusiveMin + 1
	}
	if s.Flags.Has(keyword.Maximum) {
		hi = s.Maximum
	}
	if s.Flags.Has(keyword.ExclusiveMaximum) {
		hi = s.ExclusiveMax - 1
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
