package schema_test

import (
	"testing"
	"time"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	pins := dynamic.NewPinTable()
	parser := &schema.Parser{Protector: pins}

	parsed, err := parser.ParseObjectSchema(dynamic.MapOf(
		"name", "Event",
		"properties", dynamic.MapOf(
			"at", dynamic.MapOf("type", "date", "default", "2024-03-01 10:30:00"),
			"stamp", dynamic.MapOf("type", "date", "default", "2024-03-01T10:30:00Z"),
			"title", dynamic.MapOf("type", "string", "default", "2024-03-01"),
		),
	))
	require.NoError(t, err)
	require.Equal(t, 3, pins.Len())

	require.NoError(t, schema.NormalizeDefaults(parsed.Schema, parsed.Defaults, pins, time.UTC))

	values := parsed.Defaults.Values()
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), values["at"])
	assert.True(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC).Equal(values["stamp"].(time.Time)))
	assert.Equal(t, "2024-03-01", values["title"])
	assert.Equal(t, 3, pins.Len())

	parsed.Release()
	assert.Equal(t, 0, pins.Len())
}

func TestNormalizeDefaultsInvalidDate(t *testing.T) {
	parsed, err := (&schema.Parser{}).ParseObjectSchema(dynamic.MapOf(
		"name", "Event",
		"properties", dynamic.MapOf("at", dynamic.MapOf("type", "date", "default", "tomorrow")),
	))
	require.NoError(t, err)

	err = schema.NormalizeDefaults(parsed.Schema, parsed.Defaults, nil, time.UTC)
	require.ErrorIs(t, err, schema.ErrMalformedShape)
	assert.Equal(t, "Default value of a date property must be a date, got 'tomorrow' (property 'Event.at')", err.Error())
}
