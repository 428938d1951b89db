package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/objschema/objschema"
)

type propertyInfo struct {
	Name       string      `json:"name"`
	Column     string      `json:"column"`
	Type       string      `json:"type"`
	ObjectType string      `json:"objectType,omitempty"`
	Optional   bool        `json:"optional"`
	Indexed    bool        `json:"indexed"`
	Primary    bool        `json:"primary"`
	Default    interface{} `json:"default,omitempty"`
}

type objectTypeInfo struct {
	Name        string         `json:"name"`
	Table       string         `json:"table"`
	PrimaryKey  string         `json:"primaryKey,omitempty"`
	Constructor bool           `json:"constructor"`
	Properties  []propertyInfo `json:"properties"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the parsed object types of a schema document",
		Example: `  objschema inspect schema.yaml
  objschema inspect schema.yaml -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, db, err := setup(cmd)
			if err != nil {
				return err
			}

			result, err := db.ParseFile(args[0])
			if err != nil {
				return err
			}
			defer result.Release()

			infos := describe(result)
			if env.Cfg.Output == "json" {
				return inspectJSON(cmd.OutOrStdout(), infos)
			}
			inspectTable(cmd.OutOrStdout(), infos, env.Color)
			return nil
		},
	}
}

func describe(result *objschema.Result) []objectTypeInfo {
	infos := make([]objectTypeInfo, 0, len(result.Schema))
	for _, objectSchema := range result.Schema {
		info := objectTypeInfo{
			Name:       objectSchema.Name,
			Table:      result.TableName(objectSchema.Name),
			PrimaryKey: objectSchema.PrimaryKey,
			Properties: make([]propertyInfo, 0, len(objectSchema.Properties)),
		}
		_, info.Constructor = result.Constructors[objectSchema.Name]

		// shadowed declarations own no defaults
		var defaults map[string]interface{}
		if result.Schema.Find(objectSchema.Name) == objectSchema {
			defaults = result.DefaultValues(objectSchema.Name)
		}

		for _, prop := range objectSchema.Properties {
			info.Properties = append(info.Properties, propertyInfo{
				Name:       prop.Name,
				Column:     result.ColumnName(objectSchema.Name, prop.Name),
				Type:       prop.Type.String(),
				ObjectType: prop.ObjectType,
				Optional:   prop.IsNullable,
				Indexed:    prop.IsIndexed,
				Primary:    prop.IsPrimary,
				Default:    defaults[prop.Name],
			})
		}
		infos = append(infos, info)
	}
	return infos
}

func inspectJSON(w io.Writer, infos []objectTypeInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

func inspectTable(w io.Writer, infos []objectTypeInfo, color bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if color {
		t.SetStyle(table.StyleColoredDark)
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.AppendHeader(table.Row{"Object Type", "Table", "Property", "Column", "Type", "Flags", "Default"})

	for _, info := range infos {
		for _, prop := range info.Properties {
			typeName := prop.Type
			if prop.ObjectType != "" {
				typeName = fmt.Sprintf("%s<%s>", prop.Type, prop.ObjectType)
			}

			var defaultValue interface{} = ""
			if prop.Default != nil {
				defaultValue = prop.Default
			}
			t.AppendRow(table.Row{info.Name, info.Table, prop.Name, prop.Column, typeName, flags(prop), defaultValue})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func flags(prop propertyInfo) string {
	var set []string
	if prop.Primary {
		set = append(set, "primary")
	}
	if prop.Indexed {
		set = append(set, "indexed")
	}
	if prop.Optional {
		set = append(set, "optional")
	}
	return strings.Join(set, ",")
}
