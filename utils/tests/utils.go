package tests

import (
	"fmt"
	"go/ast"
	"reflect"
	"testing"
	"time"

	"github.com/objschema/objschema/dynamic"
	"github.com/objschema/objschema/utils"
)

func AssertObjEqual(t *testing.T, r, e interface{}, names ...string) {
	t.Helper()
	for _, name := range names {
		got := reflect.Indirect(reflect.ValueOf(r)).FieldByName(name).Interface()
		expect := reflect.Indirect(reflect.ValueOf(e)).FieldByName(name).Interface()
		t.Run(name, func(t *testing.T) {
			AssertEqual(t, got, expect)
		})
	}
}

func AssertEqual(t *testing.T, got, expect interface{}) {
	t.Helper()
	if reflect.DeepEqual(got, expect) {
		return
	}

	if gotMap, ok := got.(*dynamic.Map); ok {
		if expectMap, ok := expect.(*dynamic.Map); ok {
			assertMapEqual(t, gotMap, expectMap)
			return
		}
	}

	if gotTime, ok := got.(time.Time); ok {
		if expectTime, ok := expect.(time.Time); ok && !gotTime.Equal(expectTime) {
			t.Errorf("%v: expect: %v, got %v", utils.FileWithLineNum(), expectTime, gotTime)
		}
		return
	}

	if fmt.Sprint(got) == fmt.Sprint(expect) {
		return
	}

	gotValue, expectValue := reflect.Indirect(reflect.ValueOf(got)), reflect.Indirect(reflect.ValueOf(expect))
	if gotValue.IsValid() != expectValue.IsValid() {
		t.Errorf("%v: expect: %+v, got %+v", utils.FileWithLineNum(), expect, got)
		return
	}

	if gotValue.Kind() == reflect.Slice && expectValue.Kind() == reflect.Slice {
		if gotValue.Len() != expectValue.Len() {
			t.Errorf("%v: expects length: %v, got %v (expects: %+v, got %+v)", utils.FileWithLineNum(), expectValue.Len(), gotValue.Len(), expect, got)
			return
		}
		for i := 0; i < gotValue.Len(); i++ {
			t.Run(fmt.Sprintf("#%v", i), func(t *testing.T) {
				AssertEqual(t, gotValue.Index(i).Interface(), expectValue.Index(i).Interface())
			})
		}
		return
	}

	if gotValue.Kind() == reflect.Struct && gotValue.Type() == expectValue.Type() {
		for i := 0; i < gotValue.NumField(); i++ {
			if fieldStruct := gotValue.Type().Field(i); ast.IsExported(fieldStruct.Name) {
				t.Run(fieldStruct.Name, func(t *testing.T) {
					AssertEqual(t, gotValue.Field(i).Interface(), expectValue.Field(i).Interface())
				})
			}
		}
		return
	}

	t.Errorf("%v: expect: %#v, got %#v", utils.FileWithLineNum(), expect, got)
}

func assertMapEqual(t *testing.T, got, expect *dynamic.Map) {
	t.Helper()
	if !reflect.DeepEqual(got.Keys(), expect.Keys()) {
		t.Errorf("%v: expect keys: %v, got %v", utils.FileWithLineNum(), expect.Keys(), got.Keys())
		return
	}
	for _, key := range expect.Keys() {
		gotValue, _ := got.Get(key)
		expectValue, _ := expect.Get(key)
		t.Run(key, func(t *testing.T) {
			AssertEqual(t, gotValue, expectValue)
		})
	}
}
