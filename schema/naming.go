package schema

import (
	"strings"
	"sync"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Namer maps object types and properties to storage names
type Namer interface {
	TableName(objectType string) string
	ColumnName(objectType, property string) string
}

// DefaultTablePrefix prefix storage engines expect on object type tables
const DefaultTablePrefix = "class_"

// NamingStrategy tables, columns naming strategy
type NamingStrategy struct {
	TablePrefix      string
	Pluralize        bool
	SnakeCaseColumns bool
}

// DefaultNamingStrategy `Dog` is stored in `class_Dog`, properties keep their names
var DefaultNamingStrategy = NamingStrategy{TablePrefix: DefaultTablePrefix}

// TableName convert object type name to table name
func (ns NamingStrategy) TableName(objectType string) string {
	if ns.Pluralize {
		return ns.TablePrefix + inflection.Plural(objectType)
	}
	return ns.TablePrefix + objectType
}

// ColumnName convert property name to column name
func (ns NamingStrategy) ColumnName(objectType, property string) string {
	if ns.SnakeCaseColumns {
		return toSnakeCase(property)
	}
	return property
}

var (
	smap sync.Map
	// https://github.com/golang/lint/blob/master/lint.go#L770
	commonInitialisms         = []string{"API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SSH", "TLS", "TTL", "UID", "UI", "UUID", "URI", "URL", "UTF8", "VM", "XML", "XSRF", "XSS"}
	commonInitialismsReplacer *strings.Replacer
)

func init() {
	title := cases.Title(language.Und)
	var commonInitialismsForReplacer []string
	for _, initialism := range commonInitialisms {
		commonInitialismsForReplacer = append(commonInitialismsForReplacer, initialism, title.String(initialism))
	}
	commonInitialismsReplacer = strings.NewReplacer(commonInitialismsForReplacer...)
}

func toSnakeCase(name string) string {
	if name == "" {
		return ""
	} else if v, ok := smap.Load(name); ok {
		return v.(string)
	}

	var (
		runes = []rune(commonInitialismsReplacer.Replace(name))
		buf   strings.Builder
	)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prev != '_' && (unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)) {
				buf.WriteByte('_')
			}
		}
		buf.WriteRune(r)
	}

	// casers are stateful, one per call
	result := cases.Lower(language.Und).String(buf.String())
	smap.Store(name, result)
	return result
}
