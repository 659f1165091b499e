// Package config loads a named registry of U128/I128 constants from a TOML
// document: the raw document is TOML-decoded into a generic map, then
// resolved into typed values with mapstructure, whose decode hook parses
// 128-bit literal strings.
package config

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"
	"io"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"

	"github.com/bantling/wide128"
)

// Registry is a named set of U128 and I128 constants, typically loaded once
// at startup from a TOML document such as:
//
//	[constants]
//	max_retries     = "0xFF"
//	budget_cents    = "-1000000"
//	sentinel        = "0b101010"
type Registry struct {
	Constants map[string]any `mapstructure:"constants"`
}

// u128Type and i128Type are used as mapstructure decode-hook targets.
var (
	u128Type = reflect.TypeOf(wide128.U128{})
	i128Type = reflect.TypeOf(wide128.I128{})
)

// stringToWide128HookFunc recognizes the string forms a TOML table can hold
// for a 128-bit constant and parses them via the library's literal compiler.
// The target type decides the parse: a U128 target goes through ParseU128,
// an I128 target through ParseI128; any other target is passed through.
func stringToWide128HookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		s, _ := data.(string)

		switch to {
		case u128Type:
			return wide128.ParseU128(s)
		case i128Type:
			return wide128.ParseI128(s)
		default:
			return data, nil
		}
	}
}

// Load decodes a TOML document from src into a Registry. Constant values
// are kept as decoded from TOML; string literals are resolved into
// U128/I128 via the literal compiler later, by DecodeInto, DecodeU128 or
// DecodeI128.
func Load(src io.Reader) (Registry, error) {
	var raw map[string]any

	data, err := io.ReadAll(src)
	if err != nil {
		return Registry{}, fmt.Errorf("config: reading source: %w", err)
	}

	if err := toml.Unmarshal(data, &raw); err != nil {
		return Registry{}, fmt.Errorf("config: decoding toml: %w", err)
	}

	var reg Registry

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &reg,
	})
	if err != nil {
		return Registry{}, fmt.Errorf("config: building decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Registry{}, fmt.Errorf("config: decoding registry: %w", err)
	}

	return reg, nil
}

// DecodeInto decodes the registry's raw constants map into result, a pointer
// to a struct whose fields are wide128.U128/wide128.I128 (tagged with
// `mapstructure:"..."` the same way Registry itself is), resolving string
// literal forms via stringToWide128HookFunc.
func (r Registry) DecodeInto(result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(stringToWide128HookFunc()),
		Result:     result,
	})
	if err != nil {
		return fmt.Errorf("config: building decoder: %w", err)
	}

	return decoder.Decode(r.Constants)
}

// DecodeU128 resolves a named constant from the registry as a U128.
func (r Registry) DecodeU128(name string) (wide128.U128, error) {
	raw, ok := r.Constants[name]
	if !ok {
		return wide128.U128{}, fmt.Errorf("config: no such constant %q", name)
	}

	s, ok := raw.(string)
	if !ok {
		return wide128.U128{}, fmt.Errorf("config: constant %q is not a string literal", name)
	}

	return wide128.ParseU128(s)
}

// DecodeI128 resolves a named constant from the registry as an I128.
func (r Registry) DecodeI128(name string) (wide128.I128, error) {
	raw, ok := r.Constants[name]
	if !ok {
		return wide128.I128{}, fmt.Errorf("config: no such constant %q", name)
	}

	s, ok := raw.(string)
	if !ok {
		return wide128.I128{}, fmt.Errorf("config: constant %q is not a string literal", name)
	}

	return wide128.ParseI128(s)
}
