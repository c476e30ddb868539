package jsonx

import (
	"reflect"

	"github.com/json-iterator/go"
)

var _jsonx = jsoniter.Config{
	IndentionStep:          2,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var (
	Marshal       = _jsonx.Marshal
	Unmarshal     = _jsonx.Unmarshal
	MarshalIndent = _jsonx.MarshalIndent
	NewEncoder    = _jsonx.NewEncoder
	NewDecoder    = _jsonx.NewDecoder
)

func init() {
	// ▶️ 1) int64 / uint64 → string
	jsoniter.RegisterExtension(newIntegerExtension(reflect.Int64, reflect.Uint64))
	// ▶️ 2) *uint256.Int, []*uint256.Int tagged with `units` → fixed-point decimal string
	jsoniter.RegisterExtension(&unitsExtension{})
	// ▶️ 3) snake_case → camelCase
	jsoniter.RegisterExtension(&camelCaseExtension{})
}
