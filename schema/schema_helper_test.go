package schema_test

import (
	"testing"

	"github.com/objschema/objschema/schema"
	"github.com/objschema/objschema/utils/tests"
)

func checkObjectSchema(t *testing.T, s *schema.ObjectSchema, v schema.ObjectSchema) {
	t.Helper()
	t.Run("CheckObjectSchema/"+v.Name, func(t *testing.T) {
		tests.AssertObjEqual(t, s, v, "Name", "PrimaryKey")

		if len(s.Properties) != len(v.Properties) {
			t.Fatalf("object schema %v expects %d properties, got %d", v.Name, len(v.Properties), len(s.Properties))
		}

		for idx, prop := range v.Properties {
			checkProperty(t, s, idx, prop)
		}
	})
}

func checkProperty(t *testing.T, s *schema.ObjectSchema, idx int, p schema.Property) {
	t.Helper()
	t.Run("CheckProperty/"+p.Name, func(t *testing.T) {
		parsed := s.Properties[idx]
		if parsed.Name != p.Name {
			t.Fatalf("object schema %v expects property #%d to be %v, got %v", s.Name, idx, p.Name, parsed.Name)
		}
		tests.AssertObjEqual(t, parsed, p, "Name", "Type", "ObjectType", "IsNullable", "IsIndexed", "IsPrimary")

		if lookup := s.PropertyForName(p.Name); lookup == nil || *lookup != parsed {
			t.Errorf("object schema %v failed to look up property %v", s.Name, p.Name)
		}
	})
}
