package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// processStructFields recursively applies `env`-tagged environment overrides
// onto a config struct. Nested structs are descended into; fields without an
// env tag or without a set variable are left untouched.
func processStructFields(target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		if field.Kind() == reflect.Struct {
			if err := processStructFields(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := t.Field(i).Tag.Get("env")
		if key == "" {
			continue
		}
		raw, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		if err := applyEnvValue(field, raw); err != nil {
			return fmt.Errorf("env var %s: %w", key, err)
		}
	}

	return nil
}

// applyEnvValue parses a raw environment string into the field's kind. Config
// fields are strings, ints and bools only; durations stay strings and are
// parsed where they are consumed.
func applyEnvValue(field reflect.Value, raw string) error {
	if !field.CanSet() {
		return fmt.Errorf("field is not settable")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("expected integer: %w", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected boolean: %w", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported config field kind %s", field.Kind())
	}

	return nil
}
