package dateutil

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DateTime carries a time.Time through JSON, YAML and text codecs in the
// LongDateLine pattern ("yyyy-MM-dd HH:mm:ss"). The zero value encodes as
// null in JSON and YAML and as an empty string in text.
type DateTime struct {
	time.Time
}

var (
	_ json.Marshaler   = DateTime{}
	_ json.Unmarshaler = (*DateTime)(nil)
	_ yaml.Marshaler   = DateTime{}
	_ yaml.Unmarshaler = (*DateTime)(nil)
)

// String renders d in the LongDateLine pattern, or "" for the zero value.
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}

	return FormatWith(d.Time, LongDateLine)
}

// MarshalText implements encoding.TextMarshaler.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input yields the zero value.
func (d *DateTime) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Time = time.Time{}

		return nil
	}

	t, err := Default().ParseWith(string(text), LongDateLine)
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		d.Time = time.Time{}

		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: expected a JSON string: %w", ErrInvalidFormat, err)
	}

	return d.UnmarshalText([]byte(text))
}

// MarshalYAML implements yaml.Marshaler.
func (d DateTime) MarshalYAML() (any, error) {
	if d.IsZero() {
		return nil, nil
	}

	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DateTime) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == "!!null" {
		d.Time = time.Time{}

		return nil
	}

	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a YAML scalar at line %d", ErrInvalidFormat, value.Line)
	}

	return d.UnmarshalText([]byte(value.Value))
}
