package loader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `
schema:
  - name: Person
    primaryKey: id
    properties:
      id: int
      name: {type: string, indexed: true}
      birthday: {type: date, optional: true}
      dogs: {type: list, objectType: Dog}
  - name: Dog
    properties:
      - {name: name, type: string, default: Rex}
      - {name: owner, type: Person}
`

const jsonDoc = `[
	{
		"name": "Person",
		"primaryKey": "id",
		"properties": {
			"id": "int",
			"name": {"type": "string", "indexed": true},
			"birthday": {"type": "date", "optional": true},
			"dogs": {"type": "list", "objectType": "Dog"}
		}
	},
	{
		"name": "Dog",
		"properties": [
			{"name": "name", "type": "string", "default": "Rex"},
			{"name": "owner", "type": "Person"}
		]
	}
]`

const tomlDoc = `
[[schema]]
name = "Person"
primaryKey = "id"

[schema.properties]
id = "int"
name = { type = "string", indexed = true }
birthday = { type = "date", optional = true, default = 1990-05-17T00:00:00Z }
dogs = { type = "list", objectType = "Dog" }

[[schema]]
name = "Dog"

[[schema.properties]]
name = "name"
type = "string"
default = "Rex"

[[schema.properties]]
name = "owner"
type = "Person"
`

func checkDocument(t *testing.T, definitions interface{}) {
	t.Helper()

	items, ok := dynamic.AsArray(definitions)
	require.True(t, ok)
	require.Len(t, items, 2)

	person, ok := dynamic.AsObject(items[0])
	require.True(t, ok)
	assert.Equal(t, "Person", dynamic.GetProperty(person, "name"))

	properties, ok := dynamic.AsObject(dynamic.GetProperty(person, "properties"))
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name", "birthday", "dogs"}, properties.Keys())

	dog, ok := dynamic.AsObject(items[1])
	require.True(t, ok)
	dogProperties, ok := dynamic.AsArray(dynamic.GetProperty(dog, "properties"))
	require.True(t, ok)
	require.Len(t, dogProperties, 2)

	first, ok := dynamic.AsObject(dogProperties[0])
	require.True(t, ok)
	assert.Equal(t, "Rex", dynamic.GetProperty(first, "default"))
}

func TestDecode(t *testing.T) {
	for _, c := range []struct {
		format loader.Format
		data   string
	}{
		{loader.YAML, yamlDoc},
		{loader.JSON, jsonDoc},
		{loader.TOML, tomlDoc},
	} {
		t.Run(string(c.format), func(t *testing.T) {
			doc, err := loader.Decode([]byte(c.data), c.format)
			require.NoError(t, err)

			definitions, err := loader.Definitions(doc)
			require.NoError(t, err)
			checkDocument(t, definitions)
		})
	}
}

func TestDecodeTOMLKeepsDates(t *testing.T) {
	doc, err := loader.Decode([]byte(tomlDoc), loader.TOML)
	require.NoError(t, err)

	definitions, err := loader.Definitions(doc)
	require.NoError(t, err)

	items, _ := dynamic.AsArray(definitions)
	person, _ := dynamic.AsObject(items[0])
	properties, _ := dynamic.AsObject(dynamic.GetProperty(person, "properties"))
	birthday, _ := dynamic.AsObject(dynamic.GetProperty(properties, "birthday"))

	value, ok := dynamic.GetProperty(birthday, "default").(time.Time)
	require.True(t, ok)
	assert.True(t, value.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)))
}

func TestDecodeTOMLKeyOrderPerElement(t *testing.T) {
	propertyKeys := func(t *testing.T, data string) [][]string {
		t.Helper()
		doc, err := loader.Decode([]byte(data), loader.TOML)
		require.NoError(t, err)

		definitions, err := loader.Definitions(doc)
		require.NoError(t, err)

		items, ok := dynamic.AsArray(definitions)
		require.True(t, ok)

		var keys [][]string
		for _, item := range items {
			object, ok := dynamic.AsObject(item)
			require.True(t, ok)
			properties, ok := dynamic.AsObject(dynamic.GetProperty(object, "properties"))
			require.True(t, ok)
			keys = append(keys, properties.Keys())
		}
		return keys
	}

	t.Run("array of tables", func(t *testing.T) {
		keys := propertyKeys(t, `
[[schema]]
name = "A"
[schema.properties]
x = "int"
y = "string"

[[schema]]
name = "B"
[schema.properties]
y = "string"
x = "int"
z = "bool"
`)
		assert.Equal(t, [][]string{{"x", "y"}, {"y", "x", "z"}}, keys)
	})

	t.Run("inline array of tables", func(t *testing.T) {
		keys := propertyKeys(t, `
schema = [
  { name = "A", properties = { x = "int", y = "string" } },
  { properties = { y = "string", x = "int" }, name = "B" },
  { name = "C", properties = { z = "bool", y = "string", x = "int" } },
]
`)
		assert.Equal(t, [][]string{{"x", "y"}, {"y", "x"}, {"z", "y", "x"}}, keys)
	})
}

func TestDecodeJSONNumbers(t *testing.T) {
	doc, err := loader.Decode([]byte(`{"int": 3, "float": 1.5, "null": null, "bool": false}`), loader.JSON)
	require.NoError(t, err)

	object, ok := dynamic.AsObject(doc)
	require.True(t, ok)
	assert.Equal(t, 3, dynamic.GetProperty(object, "int"))
	assert.Equal(t, 1.5, dynamic.GetProperty(object, "float"))
	assert.Nil(t, dynamic.GetProperty(object, "null"))
	assert.Equal(t, false, dynamic.GetProperty(object, "bool"))
}

func TestDecodeErrors(t *testing.T) {
	_, err := loader.Decode([]byte(`{"name": `), loader.JSON)
	assert.Error(t, err)

	_, err = loader.Decode([]byte(`[1] [2]`), loader.JSON)
	assert.Error(t, err)

	_, err = loader.Decode([]byte(`name = `), loader.TOML)
	assert.Error(t, err)

	_, err = loader.Decode([]byte(`a: b`), loader.Format("xml"))
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)

	doc, err := loader.Decode([]byte("  \n"), loader.JSON)
	require.NoError(t, err)
	assert.True(t, dynamic.IsUndefined(doc))
}

func TestDefinitions(t *testing.T) {
	_, err := loader.Definitions(dynamic.MapOf("name", "Person"))
	assert.ErrorIs(t, err, loader.ErrNoDefinitions)

	_, err = loader.Definitions(dynamic.MapOf("schema", "Person"))
	assert.ErrorIs(t, err, loader.ErrNoDefinitions)

	_, err = loader.Definitions(dynamic.Undefined)
	assert.ErrorIs(t, err, loader.ErrNoDefinitions)

	definitions, err := loader.Definitions([]interface{}{})
	require.NoError(t, err)
	assert.Empty(t, definitions)
}

func TestFormatFromPath(t *testing.T) {
	for path, format := range map[string]loader.Format{
		"schema.yaml": loader.YAML,
		"schema.YML":  loader.YAML,
		"schema.json": loader.JSON,
		"schema.toml": loader.TOML,
	} {
		got, err := loader.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, format, got)
	}

	_, err := loader.FormatFromPath("schema.xml")
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	definitions, err := loader.LoadFile(path)
	require.NoError(t, err)
	checkDocument(t, definitions)

	_, err = loader.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
