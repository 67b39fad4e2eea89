// Package callframe 按本机调用约定对参数分类并构造调用帧
package callframe

import (
	"fmt"

	"github.com/tangzhangming/nvcall/internal/abi"
	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// 前导整数槽
const (
	SlotReserved = 0
	SlotEnv      = 1
	SlotReceiver = 2
)

// Class 参数去向
type Class uint8

const (
	InInt   Class = iota // 整数类寄存器
	InFloat              // 浮点寄存器
	OnStack              // 溢出栈
)

func (c Class) String() string {
	switch c {
	case InInt:
		return "int"
	case InFloat:
		return "fp"
	}
	return "stack"
}

// Placement 单个参数的位置
type Placement struct {
	Tag   descriptor.Tag
	Class Class
	Index int         // 在对应槽序列中的下标
	Slot  rt.SlotKind // 栈槽宽度，仅 OnStack 有意义
	Reg   string      // 寄存器名，栈槽为空
}

// Location 位置的可读形式
func (p Placement) Location() string {
	if p.Class == OnStack {
		return fmt.Sprintf("stack[%d]:%s", p.Index, p.Slot)
	}
	return p.Reg
}

// Layout 方法的帧布局，只依赖约定、静态属性和描述符
type Layout struct {
	Conv    abi.Convention
	Static  bool
	Leading int // 前导整数槽数
	Params  []Placement
	Ints    int // 已用整数槽（含前导槽）
	Floats  int
	Stack   int
}

// Slots 帧中槽位总数
func (l Layout) Slots() int { return l.Ints + l.Floats + l.Stack }

// Plan 计算参数布局
//
// 浮点参数优先进入浮点寄存器；整数类参数进入剩余的整数寄存器；
// 其余按声明顺序溢出到栈上。浮点寄存器耗尽时浮点参数直接溢出，
// 不占用整数寄存器。
func Plan(conv abi.Convention, static bool, desc string) Layout {
	l := Layout{Conv: conv, Static: static, Leading: abi.LeadingSlots}
	if static {
		l.Leading = abi.LeadingSlots - 1
	}
	l.Ints = l.Leading

	c := descriptor.NewCursor(desc)
	for t := c.Next(); t != descriptor.TagNone; t = c.Next() {
		p := Placement{Tag: t}
		switch {
		case t.IsFloat() && l.Floats < conv.FloatRegs():
			p.Class, p.Index, p.Reg = InFloat, l.Floats, conv.FloatArgRegs[l.Floats]
			l.Floats++
		case t.IsInt() && l.Ints < conv.IntRegs():
			p.Class, p.Index, p.Reg = InInt, l.Ints, conv.ArgRegs[l.Ints]
			l.Ints++
		default:
			p.Class, p.Index, p.Slot = OnStack, l.Stack, stackKind(t)
			l.Stack++
		}
		l.Params = append(l.Params, p)
	}
	return l
}

func stackKind(t descriptor.Tag) rt.SlotKind {
	switch t {
	case descriptor.TagFloat:
		return rt.SlotFloat32
	case descriptor.TagDouble:
		return rt.SlotFloat64
	}
	return rt.SlotWord
}
