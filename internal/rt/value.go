package rt

import (
	"fmt"
	"math"

	"github.com/tangzhangming/nvcall/internal/descriptor"
)

// Kind 值种类
type Kind uint8

const (
	KindInvalid Kind = iota
	KindByte
	KindBoolean
	KindShort
	KindChar
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindRef
)

// KindOf 描述符标签对应的值种类，数组按引用处理
func KindOf(t descriptor.Tag) Kind {
	switch t {
	case descriptor.TagByte:
		return KindByte
	case descriptor.TagBoolean:
		return KindBoolean
	case descriptor.TagShort:
		return KindShort
	case descriptor.TagChar:
		return KindChar
	case descriptor.TagInt:
		return KindInt
	case descriptor.TagLong:
		return KindLong
	case descriptor.TagFloat:
		return KindFloat
	case descriptor.TagDouble:
		return KindDouble
	case descriptor.TagRef, descriptor.TagArray:
		return KindRef
	}
	return KindInvalid
}

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindBoolean:
		return "boolean"
	case KindShort:
		return "short"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindRef:
		return "reference"
	default:
		return "invalid"
	}
}

// ============================================================================
// 参数值
// ============================================================================

// Value 参数值（带标签的联合体）
//
// 整数类以符号/零扩展后的 64 位存放，float 存放其 32 位表示，
// double 存放 64 位表示，引用单独存放。访问器按联合体语义
// 重新解释位模式，不检查标签。
type Value struct {
	kind Kind
	bits uint64
	ref  *Object
}

func Byte(v int8) Value    { return Value{kind: KindByte, bits: uint64(int64(v))} }
func Short(v int16) Value  { return Value{kind: KindShort, bits: uint64(int64(v))} }
func Char(v uint16) Value  { return Value{kind: KindChar, bits: uint64(v)} }
func Int(v int32) Value    { return Value{kind: KindInt, bits: uint64(int64(v))} }
func Long(v int64) Value   { return Value{kind: KindLong, bits: uint64(v)} }
func Ref(o *Object) Value  { return Value{kind: KindRef, ref: o} }
func Null() Value          { return Value{kind: KindRef} }
func Float(v float32) Value {
	return Value{kind: KindFloat, bits: uint64(math.Float32bits(v))}
}
func Double(v float64) Value {
	return Value{kind: KindDouble, bits: math.Float64bits(v)}
}

// Boolean 布尔值存为 0/1
func Boolean(v bool) Value {
	if v {
		return Value{kind: KindBoolean, bits: 1}
	}
	return Value{kind: KindBoolean}
}

// Kind 值种类
func (v Value) Kind() Kind { return v.kind }

// Bits 原始 64 位
func (v Value) Bits() uint64 { return v.bits }

func (v Value) Byte() int8      { return int8(v.bits) }
func (v Value) Boolean() bool   { return uint8(v.bits) != 0 }
func (v Value) Short() int16    { return int16(v.bits) }
func (v Value) Char() uint16    { return uint16(v.bits) }
func (v Value) Int() int32      { return int32(v.bits) }
func (v Value) Long() int64     { return int64(v.bits) }
func (v Value) Float() float32  { return math.Float32frombits(uint32(v.bits)) }
func (v Value) Double() float64 { return math.Float64frombits(v.bits) }
func (v Value) Ref() *Object    { return v.ref }

func (v Value) String() string {
	switch v.kind {
	case KindByte:
		return fmt.Sprintf("byte(%d)", v.Byte())
	case KindBoolean:
		return fmt.Sprintf("boolean(%t)", v.Boolean())
	case KindShort:
		return fmt.Sprintf("short(%d)", v.Short())
	case KindChar:
		return fmt.Sprintf("char(%d)", v.Char())
	case KindInt:
		return fmt.Sprintf("int(%d)", v.Int())
	case KindLong:
		return fmt.Sprintf("long(%d)", v.Long())
	case KindFloat:
		return fmt.Sprintf("float(%g)", v.Float())
	case KindDouble:
		return fmt.Sprintf("double(%g)", v.Double())
	case KindRef:
		if v.ref == nil {
			return "null"
		}
		return fmt.Sprintf("ref(%s@%p)", v.ref.Class, v.ref)
	}
	return "invalid"
}
