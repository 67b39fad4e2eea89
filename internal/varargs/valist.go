// Package varargs 把可变参数列表规范化为带类型的参数数组
//
// VaList 模拟本机 va_list：元素经过默认参数提升，只能以
// int、long、double 和指针四种宽度读取。
package varargs

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/tangzhangming/nvcall/internal/rt"
)

var (
	ErrExhausted = errors.New("varargs: no more arguments")
	ErrMistyped  = errors.New("varargs: argument has wrong promoted type")
)

// class 提升后的宽度类别
type class uint8

const (
	classInt class = iota
	classLong
	classDouble
	classPointer
)

func (c class) String() string {
	switch c {
	case classInt:
		return "int"
	case classLong:
		return "long"
	case classDouble:
		return "double"
	}
	return "pointer"
}

type item struct {
	class class
	i     int64
	f     float64
	p     *rt.Object
}

// VaList 可变参数列表，读取会前移
type VaList struct {
	items []item
	pos   int
}

// Start 按默认参数提升规则构造列表
//
// 小于 int 的整数与 bool 提升为 int，float32 提升为 double，
// Go 的 int 视为 long，*rt.Object 与 nil 视为指针。
// rt.Value 按其种类提升。
func Start(args ...any) (*VaList, error) {
	va := &VaList{items: make([]item, 0, len(args))}
	for i, a := range args {
		it, err := promote(a)
		if err != nil {
			return nil, fmt.Errorf("varargs: argument %d: %w", i, err)
		}
		va.items = append(va.items, it)
	}
	return va, nil
}

func promote(a any) (item, error) {
	switch v := a.(type) {
	case nil:
		return item{class: classPointer}, nil
	case *rt.Object:
		return item{class: classPointer, p: v}, nil
	case bool:
		if v {
			return item{class: classInt, i: 1}, nil
		}
		return item{class: classInt}, nil
	case int8:
		return item{class: classInt, i: int64(v)}, nil
	case uint8:
		return item{class: classInt, i: int64(v)}, nil
	case int16:
		return item{class: classInt, i: int64(v)}, nil
	case uint16:
		return item{class: classInt, i: int64(v)}, nil
	case int32:
		return item{class: classInt, i: int64(v)}, nil
	case uint32:
		return item{class: classLong, i: int64(v)}, nil
	case int:
		return item{class: classLong, i: int64(v)}, nil
	case int64:
		return item{class: classLong, i: v}, nil
	case float32:
		return item{class: classDouble, f: float64(v)}, nil
	case float64:
		return item{class: classDouble, f: v}, nil
	case rt.Value:
		return promoteValue(v), nil
	}
	return item{}, fmt.Errorf("unsupported type %T", a)
}

func promoteValue(v rt.Value) item {
	switch v.Kind() {
	case rt.KindByte:
		return item{class: classInt, i: int64(v.Byte())}
	case rt.KindBoolean:
		if v.Boolean() {
			return item{class: classInt, i: 1}
		}
		return item{class: classInt}
	case rt.KindShort:
		return item{class: classInt, i: int64(v.Short())}
	case rt.KindChar:
		return item{class: classInt, i: int64(v.Char())}
	case rt.KindInt:
		return item{class: classInt, i: int64(v.Int())}
	case rt.KindLong:
		return item{class: classLong, i: v.Long()}
	case rt.KindFloat:
		return item{class: classDouble, f: float64(v.Float())}
	case rt.KindDouble:
		return item{class: classDouble, f: v.Double()}
	}
	return item{class: classPointer, p: v.Ref()}
}

func (va *VaList) next() (item, error) {
	if va == nil || va.pos >= len(va.items) {
		return item{}, ErrExhausted
	}
	it := va.items[va.pos]
	va.pos++
	return it, nil
}

// Int 以 int 宽度读取
// long 元素在 int 范围内时也可读取。
func (va *VaList) Int() (int32, error) {
	it, err := va.next()
	if err != nil {
		return 0, err
	}
	switch it.class {
	case classInt:
		return int32(it.i), nil
	case classLong:
		v, err := safecast.Convert[int32](it.i)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMistyped, err)
		}
		return v, nil
	}
	return 0, fmt.Errorf("%w: read int, have %s", ErrMistyped, it.class)
}

// Long 以 long 宽度读取
func (va *VaList) Long() (int64, error) {
	it, err := va.next()
	if err != nil {
		return 0, err
	}
	if it.class != classInt && it.class != classLong {
		return 0, fmt.Errorf("%w: read long, have %s", ErrMistyped, it.class)
	}
	return it.i, nil
}

// Double 以 double 宽度读取
func (va *VaList) Double() (float64, error) {
	it, err := va.next()
	if err != nil {
		return 0, err
	}
	if it.class != classDouble {
		return 0, fmt.Errorf("%w: read double, have %s", ErrMistyped, it.class)
	}
	return it.f, nil
}

// Pointer 以指针宽度读取
func (va *VaList) Pointer() (*rt.Object, error) {
	it, err := va.next()
	if err != nil {
		return nil, err
	}
	if it.class != classPointer {
		return nil, fmt.Errorf("%w: read pointer, have %s", ErrMistyped, it.class)
	}
	return it.p, nil
}

// Remaining 尚未读取的元素数
func (va *VaList) Remaining() int {
	if va == nil {
		return 0
	}
	return len(va.items) - va.pos
}

// Copy 复制当前读取位置（va_copy）
func (va *VaList) Copy() *VaList {
	if va == nil {
		return nil
	}
	return &VaList{items: va.items, pos: va.pos}
}
