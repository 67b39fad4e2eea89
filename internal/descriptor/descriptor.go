// Package descriptor 解析方法描述符
//
// 描述符形如 "(IJLjava/lang/String;[D)V"，参数列表位于括号内，
// 括号后为返回类型。调用路径上不做校验，格式错误的描述符应在
// 类加载时由 Validate 排除。
package descriptor

import (
	"fmt"
)

// Tag 类型标签
type Tag byte

const (
	TagNone    Tag = 0
	TagByte    Tag = 'B'
	TagBoolean Tag = 'Z'
	TagShort   Tag = 'S'
	TagChar    Tag = 'C'
	TagInt     Tag = 'I'
	TagLong    Tag = 'J'
	TagFloat   Tag = 'F'
	TagDouble  Tag = 'D'
	TagRef     Tag = 'L'
	TagArray   Tag = '['
	TagVoid    Tag = 'V'
)

// IsInt 是否为整数/指针类（占用整数寄存器）
func (t Tag) IsInt() bool {
	switch t {
	case TagByte, TagBoolean, TagShort, TagChar, TagInt, TagLong, TagRef, TagArray:
		return true
	}
	return false
}

// IsFloat 是否为浮点类
func (t Tag) IsFloat() bool {
	return t == TagFloat || t == TagDouble
}

// IsWide 是否为 64 位宽
func (t Tag) IsWide() bool {
	return t == TagLong || t == TagDouble
}

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagByte:
		return "byte"
	case TagBoolean:
		return "boolean"
	case TagShort:
		return "short"
	case TagChar:
		return "char"
	case TagInt:
		return "int"
	case TagLong:
		return "long"
	case TagFloat:
		return "float"
	case TagDouble:
		return "double"
	case TagRef:
		return "reference"
	case TagArray:
		return "array"
	case TagVoid:
		return "void"
	default:
		return fmt.Sprintf("Tag(%q)", byte(t))
	}
}

// ============================================================================
// 游标
// ============================================================================

// Cursor 描述符游标
type Cursor struct {
	desc string
	pos  int
}

// NewCursor 创建游标，从描述符开头开始
func NewCursor(desc string) *Cursor {
	return &Cursor{desc: desc}
}

// Pos 当前位置
func (c *Cursor) Pos() int { return c.pos }

// Done 是否已消费全部输入
func (c *Cursor) Done() bool { return c.pos >= len(c.desc) }

// Next 返回下一个类型标签并前移游标
//
// '(' 会被透明跳过；遇到 ')'、'V' 或输入结束时返回 TagNone，
// 调用方以此作为参数遍历的终止条件。数组报告为 TagArray，
// 但会一并消费其元素类型。
func (c *Cursor) Next() Tag {
	if c.pos >= len(c.desc) {
		return TagNone
	}
	ch := Tag(c.desc[c.pos])
	c.pos++
	switch ch {
	case TagByte, TagBoolean, TagShort, TagChar, TagInt, TagLong, TagFloat, TagDouble:
		return ch
	case TagArray:
		c.Next()
		return TagArray
	case TagRef:
		for c.pos < len(c.desc) && c.desc[c.pos] != ';' {
			c.pos++
		}
		if c.pos < len(c.desc) {
			c.pos++
		}
		return TagRef
	case '(':
		return c.Next()
	}
	return TagNone
}

// ============================================================================
// 辅助函数
// ============================================================================

// Params 返回参数标签列表（不含返回类型）
func Params(desc string) []Tag {
	var tags []Tag
	c := NewCursor(desc)
	for t := c.Next(); t != TagNone; t = c.Next() {
		tags = append(tags, t)
	}
	return tags
}

// ParamCount 参数个数
func ParamCount(desc string) int {
	n := 0
	c := NewCursor(desc)
	for c.Next() != TagNone {
		n++
	}
	return n
}

// Return 返回类型标签，void 返回 TagVoid
func Return(desc string) Tag {
	c := NewCursor(desc)
	for c.Next() != TagNone {
	}
	if c.pos == 0 || desc[c.pos-1] != ')' || c.Done() {
		return TagNone
	}
	if desc[c.pos] == byte(TagVoid) {
		return TagVoid
	}
	return c.Next()
}
