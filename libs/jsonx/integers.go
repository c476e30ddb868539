package jsonx

import (
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// integerExtension encodes 64-bit integer fields as JSON strings and accepts
// both strings and numbers when decoding.
type integerExtension struct {
	jsoniter.DummyExtension
	targets []reflect.Kind
}

func newIntegerExtension(targets ...reflect.Kind) *integerExtension {
	return &integerExtension{
		targets: targets,
	}
}

func (e *integerExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for i := range desc.Fields {
		binding := desc.Fields[i]

		fieldKind := binding.Field.Type().Kind()
		for _, target := range e.targets {
			if fieldKind != target {
				continue
			}
			jsonTags := binding.Field.Tag().Get("json")
			if jsonTags == "-" || hasTagOption(jsonTags, "string") {
				break
			}

			codec := &integerCodec{targetType: fieldKind}
			binding.Encoder = codec
			binding.Decoder = codec
			break
		}
	}
}

type integerCodec struct {
	targetType reflect.Kind
}

var _ jsoniter.ValEncoder = (*integerCodec)(nil)
var _ jsoniter.ValDecoder = (*integerCodec)(nil)

func (c *integerCodec) IsEmpty(ptr unsafe.Pointer) bool {
	switch c.targetType {
	case reflect.Int64:
		return *(*int64)(ptr) == 0
	case reflect.Uint64:
		return *(*uint64)(ptr) == 0
	default:
		return false
	}
}

func (c *integerCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	switch c.targetType {
	case reflect.Int64:
		stream.WriteString(strconv.FormatInt(*(*int64)(ptr), 10))
	case reflect.Uint64:
		stream.WriteString(strconv.FormatUint(*(*uint64)(ptr), 10))
	}
}

func (c *integerCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		s := iter.ReadString()
		switch c.targetType {
		case reflect.Int64:
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				iter.ReportError("decode int64", err.Error())
				return
			}
			*(*int64)(ptr) = i
		case reflect.Uint64:
			u, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				iter.ReportError("decode uint64", err.Error())
				return
			}
			*(*uint64)(ptr) = u
		}
	case jsoniter.NumberValue:
		switch c.targetType {
		case reflect.Int64:
			*(*int64)(ptr) = iter.ReadInt64()
		case reflect.Uint64:
			*(*uint64)(ptr) = iter.ReadUint64()
		}
	default:
		iter.Skip()
	}
}

func hasTagOption(jsonTags, opt string) bool {
	if jsonTags == "" {
		return false
	}
	parts := strings.Split(jsonTags, ",")
	for _, part := range parts[1:] {
		if part == opt {
			return true
		}
	}
	return false
}
