package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/tangzhangming/nvcall/internal/i18n"
)

// ============================================================================
// 调用错误
// ============================================================================

// Error 调用失败
type Error struct {
	Kind  Kind     // 失败种类
	Code  string   // 错误码 (R0600)
	Class string   // 类名（内部名称格式）
	Name  string   // 方法名
	Desc  string   // 方法描述符
	Hints []string // 修复建议
	Err   error    // 底层原因（可选）
}

// 各种类的哨兵，用于 errors.Is
var (
	ErrNoSuchMethod            = &Error{Kind: KindNoSuchMethod}
	ErrIncompatibleClassChange = &Error{Kind: KindIncompatibleClassChange}
	ErrOutOfMemory             = &Error{Kind: KindOutOfMemory}
	ErrUnsatisfiedLink         = &Error{Kind: KindUnsatisfiedLink}
	ErrIllegalArgument         = &Error{Kind: KindIllegalArgument}
	ErrNullPointer             = &Error{Kind: KindNullPointer}
)

// New 创建指定种类的错误
func New(kind Kind, class, name, desc string) *Error {
	e := &Error{Kind: kind, Class: class, Name: name, Desc: desc}
	if info, ok := GetErrorInfo(kind); ok {
		e.Code = info.Code
	}
	return e
}

// NoSuchMethod 找不到方法
func NoSuchMethod(class, name, desc string) *Error {
	return New(KindNoSuchMethod, class, name, desc)
}

// IncompatibleClassChange 静态/实例属性与调用方式冲突
func IncompatibleClassChange(class, name, desc string) *Error {
	return New(KindIncompatibleClassChange, class, name, desc)
}

// OutOfMemory 分配失败
func OutOfMemory(class, name, desc string, cause error) *Error {
	e := New(KindOutOfMemory, class, name, desc)
	e.Err = cause
	return e
}

// UnsatisfiedLink 本地实现无法定位
func UnsatisfiedLink(class, name, desc string) *Error {
	return New(KindUnsatisfiedLink, class, name, desc)
}

// IllegalArgument 参数与描述符不符
func IllegalArgument(class, name, desc string, cause error) *Error {
	e := New(KindIllegalArgument, class, name, desc)
	e.Err = cause
	return e
}

// NullPointer 实例调用缺少接收者
func NullPointer(class, name, desc string) *Error {
	return New(KindNullPointer, class, name, desc)
}

// WithHints 附加修复建议
func (e *Error) WithHints(hints ...string) *Error {
	e.Hints = append(e.Hints, hints...)
	return e
}

// Message 本地化后的主消息
func (e *Error) Message() string {
	info, ok := GetErrorInfo(e.Kind)
	if !ok {
		return e.Kind.String()
	}
	msg := i18n.T(info.MessageID, e.Class, e.Name, e.Desc)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.ShortName(), e.Message())
}

// Unwrap 返回底层原因
func (e *Error) Unwrap() error { return e.Err }

// Is 按种类比较
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf 提取错误种类，非调用错误返回 KindNone
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

// ============================================================================
// 格式化器
// ============================================================================

// Formatter 错误格式化器
type Formatter struct {
	Colors    bool // 是否使用颜色
	ShowHints bool // 是否显示修复建议
}

// NewFormatter 创建默认格式化器
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:    true,
		ShowHints: true,
	}
}

// Format 格式化调用错误
//
//	NoSuchMethodError[R0600]: no such method ...
//	  class: C
//	  method: m(I)V
//	 = help: ...
func (f *Formatter) Format(err *Error) string {
	var sb strings.Builder

	head := f.colorize(err.Kind.ShortName(), ColorBoldRed)
	code := f.colorize(fmt.Sprintf("[%s]", err.Code), ColorRed)
	sb.WriteString(fmt.Sprintf("%s%s: %s\n", head, code, err.Message()))

	if err.Class != "" {
		sb.WriteString(fmt.Sprintf("%s %s\n", f.colorize("  class:", ColorYellow), err.Class))
	}
	if err.Name != "" {
		sb.WriteString(fmt.Sprintf("%s %s%s\n", f.colorize("  method:", ColorYellow), err.Name, err.Desc))
	}

	if f.ShowHints {
		for _, hint := range err.Hints {
			sb.WriteString(fmt.Sprintf("%s %s\n", f.colorize(" = help:", ColorCyan), hint))
		}
	}
	return sb.String()
}

func (f *Formatter) colorize(s string, color Color) string {
	if !f.Colors {
		return s
	}
	return Colorize(s, color)
}

var defaultFormatter = NewFormatter()

// SetDefaultFormatter 设置默认格式化器
func SetDefaultFormatter(f *Formatter) {
	defaultFormatter = f
}

// Format 使用默认格式化器
func Format(err *Error) string {
	return defaultFormatter.Format(err)
}
