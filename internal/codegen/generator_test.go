package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/objschema/objschema"
	"github.com/objschema/objschema/loader"
	"github.com/objschema/objschema/logger"
	"github.com/objschema/objschema/schema"
)

const personDocument = `
- name: Person
  primaryKey: id
  properties:
    id: int
    firstName: {type: string, indexed: true}
    birthday: {type: date, optional: true}
    dog: Dog
    friends: {type: list, objectType: Person}
    avatar: data
- name: Dog
  properties:
    name: string
    weight: {type: double, optional: true}
`

func parseTestSchema(t *testing.T) *objschema.Result {
	t.Helper()
	db, err := objschema.Open(&objschema.Config{
		Logger:         logger.Discard,
		NamingStrategy: schema.NamingStrategy{TablePrefix: "class_", SnakeCaseColumns: true},
	})
	require.NoError(t, err)

	result, err := db.ParseBytes([]byte(personDocument), loader.YAML)
	require.NoError(t, err)
	t.Cleanup(result.Release)
	return result
}

func TestGenerateModels(t *testing.T) {
	source, err := GenerateModels(parseTestSchema(t), "zoo")
	require.NoError(t, err)

	code := string(source)
	assert.Contains(t, code, "package zoo")
	assert.Contains(t, code, `import "time"`)
	assert.Contains(t, code, "// Person is stored in class_Person")
	assert.Contains(t, code, "type Person struct {")
	assert.Contains(t, code, "type Dog struct {")
	assert.Contains(t, code, "`objschema:\"column:id;primaryKey\"`")
	assert.Contains(t, code, "`objschema:\"column:first_name;index\"`")
	assert.Contains(t, code, "`objschema:\"column:dog;optional\"`")
	assert.Contains(t, code, "*time.Time")
	assert.Contains(t, code, "[]*Person")
	assert.Contains(t, code, "*Dog")
	assert.Contains(t, code, "[]byte")
	assert.Contains(t, code, "*float64")
}

func TestGenerateModelsWithoutDates(t *testing.T) {
	db, err := objschema.Open(&objschema.Config{Logger: logger.Discard})
	require.NoError(t, err)

	result, err := db.Parse([]interface{}{
		map[string]interface{}{"name": "Tag", "properties": map[string]interface{}{"label": "string"}},
	})
	require.NoError(t, err)
	defer result.Release()

	source, err := GenerateModels(result, "")
	require.NoError(t, err)
	assert.Contains(t, string(source), "package models")
	assert.Contains(t, string(source), "`objschema:\"column:label\"`")
	assert.NotContains(t, string(source), "import")
}

func TestWriteModels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "internal", "models")

	filename, err := WriteModels(parseTestSchema(t), "", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "models.go"), filename)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package models")
}

func TestMapType(t *testing.T) {
	tests := []struct {
		prop schema.Property
		want string
	}{
		{schema.Property{Type: schema.Int}, "int64"},
		{schema.Property{Type: schema.Bool, IsNullable: true}, "*bool"},
		{schema.Property{Type: schema.Float}, "float32"},
		{schema.Property{Type: schema.Data, IsNullable: true}, "[]byte"},
		{schema.Property{Type: schema.Object, ObjectType: "owner", IsNullable: true}, "*Owner"},
		{schema.Property{Type: schema.Array, ObjectType: "Dog"}, "[]*Dog"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mapType(tt.prop), "%+v", tt.prop)
	}
}

func TestExportedName(t *testing.T) {
	tests := map[string]string{
		"name":       "Name",
		"firstName":  "FirstName",
		"first-name": "FirstName",
		"first_name": "FirstName",
		"e-mail.2":   "EMail2",
		"2fa":        "X2fa",
		"---":        "X",
		"größe":      "Größe",
	}

	for name, want := range tests {
		assert.Equal(t, want, exportedName(name), name)
	}
}

func TestGenerateModelsSanitizesNames(t *testing.T) {
	db, err := objschema.Open(&objschema.Config{Logger: logger.Discard})
	require.NoError(t, err)

	result, err := db.ParseBytes([]byte(`
- name: user-account
  properties:
    first-name: string
    2fa: bool
    owner: {type: object, objectType: user-account}
`), loader.YAML)
	require.NoError(t, err)
	defer result.Release()

	source, err := GenerateModels(result, "")
	require.NoError(t, err)

	code := string(source)
	assert.Contains(t, code, "type UserAccount struct {")
	assert.Contains(t, code, "`objschema:\"column:first-name\"`")
	assert.Contains(t, code, "X2fa")
	assert.Contains(t, code, "*UserAccount")
}

func TestGenerateModelsNameCollision(t *testing.T) {
	db, err := objschema.Open(&objschema.Config{Logger: logger.Discard})
	require.NoError(t, err)

	tests := []struct {
		name     string
		document string
		message  string
	}{
		{
			name: "properties",
			document: `
- name: Dog
  properties:
    name: string
    Name: string
`,
			message: "properties 'Dog.name' and 'Dog.Name' both map to Name",
		},
		{
			name: "object types",
			document: `
- name: dog
  properties: {name: string}
- name: Dog
  properties: {name: string}
`,
			message: "object types 'dog' and 'Dog' both map to Dog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := db.ParseBytes([]byte(tt.document), loader.YAML)
			require.NoError(t, err)
			defer result.Release()

			_, err = GenerateModels(result, "")
			require.ErrorIs(t, err, ErrNameCollision)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}
