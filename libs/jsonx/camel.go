package jsonx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// camelCaseExtension writes snake_case and PascalCase field names in lowerCamelCase.
// Decoding accepts both the camelCase and the original name.
type camelCaseExtension struct {
	jsoniter.DummyExtension
}

func (e *camelCaseExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		name, skip := fieldName(binding)
		if skip {
			continue
		}
		if !strings.Contains(name, "_") && !isFirstCharUpper(name) {
			continue
		}
		camel := toLowerFirstCamel(name)
		binding.ToNames = []string{camel}
		binding.FromNames = []string{camel, name}
	}
}

// fieldName returns the name a field is encoded under, and whether it is excluded.
func fieldName(binding *jsoniter.Binding) (string, bool) {
	tag := binding.Field.Tag().Get("json")
	if tag == "-" {
		return "", true
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, false
	}
	return binding.Field.Name(), false
}

func toLowerFirstCamel(s string) string {
	var sb strings.Builder
	for _, p := range strings.Split(s, "_") {
		if p == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(strings.ToLower(p[:1]))
		} else {
			sb.WriteString(strings.ToUpper(p[:1]))
		}
		sb.WriteString(p[1:])
	}
	return sb.String()
}

func isFirstCharUpper(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsUpper(r)
}
