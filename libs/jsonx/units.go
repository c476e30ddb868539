package jsonx

import (
	"reflect"
	"unsafe"

	"github.com/beatoz/fxmath/types"
	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"
)

var (
	uint256PtrType   = reflect.TypeOf((*uint256.Int)(nil))
	uint256SliceType = reflect.TypeOf([]*uint256.Int(nil))
)

// unitsExtension handles *uint256.Int and []*uint256.Int fields whose json tag
// carries the `units` (unsigned) or `sunits` (int256) option. Values are written
// as fixed-point decimal strings and read from decimal strings or numbers.
type unitsExtension struct {
	jsoniter.DummyExtension
}

func (e *unitsExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for i := range desc.Fields {
		binding := desc.Fields[i]

		jsonTags := binding.Field.Tag().Get("json")
		if jsonTags == "-" {
			continue
		}
		signed := hasTagOption(jsonTags, "sunits")
		if !signed && !hasTagOption(jsonTags, "units") {
			continue
		}

		switch binding.Field.Type().Type1() {
		case uint256PtrType:
			codec := &unitsCodec{signed: signed}
			binding.Encoder = codec
			binding.Decoder = codec
		case uint256SliceType:
			codec := &unitsSliceCodec{elem: unitsCodec{signed: signed}}
			binding.Encoder = codec
			binding.Decoder = codec
		}
	}
}

type unitsCodec struct {
	signed bool
}

var _ jsoniter.ValEncoder = (*unitsCodec)(nil)
var _ jsoniter.ValDecoder = (*unitsCodec)(nil)

func (c *unitsCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return *(**uint256.Int)(ptr) == nil
}

func (c *unitsCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	c.write(*(**uint256.Int)(ptr), stream)
}

func (c *unitsCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	*(**uint256.Int)(ptr) = c.read(iter)
}

func (c *unitsCodec) write(v *uint256.Int, stream *jsoniter.Stream) {
	switch {
	case v == nil:
		stream.WriteNil()
	case c.signed:
		stream.WriteString(types.FormatSignedUnits(v))
	default:
		stream.WriteString(types.FormatUnits(v))
	}
}

func (c *unitsCodec) read(iter *jsoniter.Iterator) *uint256.Int {
	var s string
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		s = iter.ReadString()
	case jsoniter.NumberValue:
		s = string(iter.ReadNumber())
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	default:
		iter.Skip()
		return nil
	}

	v, xerr := types.ParseUnits(s)
	if xerr != nil {
		iter.ReportError("decode units", xerr.Error())
		return nil
	}
	if !c.signed && v.Sign() < 0 {
		iter.ReportError("decode units", "negative value: "+s)
		return nil
	}
	return v
}

type unitsSliceCodec struct {
	elem unitsCodec
}

var _ jsoniter.ValEncoder = (*unitsSliceCodec)(nil)
var _ jsoniter.ValDecoder = (*unitsSliceCodec)(nil)

func (c *unitsSliceCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return len(*(*[]*uint256.Int)(ptr)) == 0
}

func (c *unitsSliceCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	vals := *(*[]*uint256.Int)(ptr)
	if vals == nil {
		stream.WriteNil()
		return
	}
	stream.WriteArrayStart()
	for i, v := range vals {
		if i > 0 {
			stream.WriteMore()
		}
		c.elem.write(v, stream)
	}
	stream.WriteArrayEnd()
}

func (c *unitsSliceCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.ReadNil()
		*(*[]*uint256.Int)(ptr) = nil
		return
	}
	var vals []*uint256.Int
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		vals = append(vals, c.elem.read(it))
		return it.Error == nil
	})
	*(*[]*uint256.Int)(ptr) = vals
}
