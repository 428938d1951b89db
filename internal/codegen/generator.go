// Package codegen writes Go model structs for the object types of a parsed schema.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/objschema/objschema"
	"github.com/objschema/objschema/schema"
)

// DefaultPackage package name used when none is given
const DefaultPackage = "models"

// ErrNameCollision two object types, or two properties of one object type,
// map to the same Go identifier
var ErrNameCollision = errors.New("name collision")

// GenerateModels renders one Go source file holding a struct per object type
func GenerateModels(result *objschema.Result, pkg string) ([]byte, error) {
	if pkg == "" {
		pkg = DefaultPackage
	}

	var (
		buf     bytes.Buffer
		seen    = map[string]bool{}
		types   = map[string]string{}
		structs []string
		useTime bool
	)

	for _, objectSchema := range result.Schema {
		// later declarations of a name are shadowed
		if seen[objectSchema.Name] {
			continue
		}
		seen[objectSchema.Name] = true

		structName := exportedName(objectSchema.Name)
		if other, ok := types[structName]; ok {
			return nil, fmt.Errorf("%w: object types '%s' and '%s' both map to %s", ErrNameCollision, other, objectSchema.Name, structName)
		}
		types[structName] = objectSchema.Name

		var (
			fields     []string
			fieldNames = map[string]string{}
		)
		for _, prop := range objectSchema.Properties {
			fieldName := exportedName(prop.Name)
			if other, ok := fieldNames[fieldName]; ok {
				return nil, fmt.Errorf("%w: properties '%s.%s' and '%s.%s' both map to %s",
					ErrNameCollision, objectSchema.Name, other, objectSchema.Name, prop.Name, fieldName)
			}
			fieldNames[fieldName] = prop.Name

			if prop.Type == schema.Date {
				useTime = true
			}
			fields = append(fields, fmt.Sprintf("\t%s %s `objschema:\"%s\"`",
				fieldName, mapType(prop), tagOf(result, objectSchema, prop)))
		}

		structs = append(structs, fmt.Sprintf("// %s is stored in %s\ntype %s struct {\n%s\n}\n",
			structName, result.TableName(objectSchema.Name), structName, strings.Join(fields, "\n")))
	}

	fmt.Fprintf(&buf, "// Code generated by objschema gen. DO NOT EDIT.\n\npackage %s\n\n", pkg)
	if useTime {
		buf.WriteString("import \"time\"\n\n")
	}
	buf.WriteString(strings.Join(structs, "\n"))

	return format.Source(buf.Bytes())
}

// WriteModels writes the generated models to folder/<pkg>.go and returns the file name
func WriteModels(result *objschema.Result, pkg, folder string) (string, error) {
	if pkg == "" {
		pkg = DefaultPackage
	}

	source, err := GenerateModels(result, pkg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, os.ModePerm); err != nil {
		return "", err
	}

	filename := filepath.Join(folder, strings.ToLower(pkg)+".go")
	if err := os.WriteFile(filename, source, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

func tagOf(result *objschema.Result, objectSchema *schema.ObjectSchema, prop schema.Property) string {
	settings := []string{"column:" + result.ColumnName(objectSchema.Name, prop.Name)}
	if prop.IsPrimary {
		settings = append(settings, "primaryKey")
	}
	if prop.IsIndexed {
		settings = append(settings, "index")
	}
	if prop.IsNullable {
		settings = append(settings, "optional")
	}
	return strings.Join(settings, ";")
}

func mapType(prop schema.Property) string {
	var goType string
	switch prop.Type {
	case schema.Bool:
		goType = "bool"
	case schema.Int:
		goType = "int64"
	case schema.Float:
		goType = "float32"
	case schema.Double:
		goType = "float64"
	case schema.String:
		goType = "string"
	case schema.Date:
		goType = "time.Time"
	case schema.Data:
		return "[]byte"
	case schema.Array:
		return "[]*" + exportedName(prop.ObjectType)
	case schema.Object:
		return "*" + exportedName(prop.ObjectType)
	default:
		goType = "interface{}"
	}

	if prop.IsNullable {
		return "*" + goType
	}
	return goType
}

// exportedName camel-cases s into an exported Go identifier, runes that
// cannot appear in one separate words: `first-name` becomes `FirstName`.
func exportedName(s string) string {
	var buf strings.Builder
	for _, word := range strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		r, size := utf8.DecodeRuneInString(word)
		buf.WriteRune(unicode.ToUpper(r))
		buf.WriteString(word[size:])
	}

	name := buf.String()
	if r, _ := utf8.DecodeRuneInString(name); name == "" || !unicode.IsUpper(r) {
		name = "X" + name
	}
	return name
}
