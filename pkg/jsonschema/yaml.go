// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"fmt"
	"strconv"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/altshiftab/jsval/pkg/errkind"
	"github.com/altshiftab/jsval/pkg/jsonvalue"
	"gopkg.in/yaml.v3"
)

// ParseSchemaFromYAML parses a schema document written in YAML.
//
// The document is decoded through yaml.Node so that mapping
// order survives the conversion into the JSON value model;
// integer scalars stay integers. Mapping keys must be strings.
func (ctx *Context) ParseSchemaFromYAML(data []byte) (Index, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return 0, motmedelErrors.NewWithTrace(fmt.Errorf("yaml decode: %w: %w", errkind.ErrJSONParse, err))
	}
	v, err := yamlToValue(&node, 0)
	if err != nil {
		return 0, motmedelErrors.NewWithTrace(fmt.Errorf("yaml convert: %w", err))
	}
	return ctx.ParseSchemaFromValue(v)
}

// maxYAMLDepth bounds alias-following recursion.
const maxYAMLDepth = 1000

// yamlToValue converts a decoded YAML node into a JSON value.
func yamlToValue(node *yaml.Node, depth int) (jsonvalue.Value, error) {
	if depth > maxYAMLDepth {
		return jsonvalue.Value{}, fmt.Errorf("yaml document nests too deeply: %w", errkind.ErrJSONParse)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return jsonvalue.Value{}, fmt.Errorf("yaml document does not hold one value: %w", errkind.ErrJSONParse)
		}
		return yamlToValue(node.Content[0], depth+1)

	case yaml.AliasNode:
		return yamlToValue(node.Alias, depth+1)

	case yaml.MappingNode:
		members := make([]jsonvalue.Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return jsonvalue.Value{}, fmt.Errorf("yaml mapping key is not a string: %w", errkind.ErrInvalidObjectType)
			}
			val, err := yamlToValue(node.Content[i+1], depth+1)
			if err != nil {
				return jsonvalue.Value{}, err
			}
			members = append(members, jsonvalue.Member{Key: keyNode.Value, Value: val})
		}
		return jsonvalue.MakeObject(members), nil

	case yaml.SequenceNode:
		elems := make([]jsonvalue.Value, 0, len(node.Content))
		for _, c := range node.Content {
			e, err := yamlToValue(c, depth+1)
			if err != nil {
				return jsonvalue.Value{}, err
			}
			elems = append(elems, e)
		}
		return jsonvalue.MakeArray(elems), nil

	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return jsonvalue.MakeNull(), nil
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return jsonvalue.Value{}, fmt.Errorf("yaml bool %q: %w", node.Value, errkind.ErrJSONParse)
			}
			return jsonvalue.MakeBool(b), nil
		case "!!int":
			i, err := strconv.ParseInt(node.Value, 0, 64)
			if err != nil {
				return jsonvalue.Value{}, fmt.Errorf("yaml int %q: %w", node.Value, errkind.ErrJSONParse)
			}
			return jsonvalue.MakeInt(i), nil
		case "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return jsonvalue.Value{}, fmt.Errorf("yaml float %q: %w", node.Value, errkind.ErrJSONParse)
			}
			return jsonvalue.MakeFloat(f), nil
		default:
			return jsonvalue.MakeString(node.Value), nil
		}

	default:
		return jsonvalue.Value{}, fmt.Errorf("unsupported yaml node kind %d: %w", node.Kind, errkind.ErrJSONParse)
	}
}
