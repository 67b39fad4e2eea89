// Package errors 提供调用核心的错误种类、错误码与报告通道
package errors

// ============================================================================
// 错误种类
// ============================================================================

// Kind 失败种类
type Kind int

const (
	KindNone Kind = iota
	KindNoSuchMethod
	KindIncompatibleClassChange
	KindOutOfMemory
	KindUnsatisfiedLink
	KindIllegalArgument
	KindNullPointer
)

// String 返回对应的 Java 异常类名
func (k Kind) String() string {
	switch k {
	case KindNoSuchMethod:
		return "java/lang/NoSuchMethodError"
	case KindIncompatibleClassChange:
		return "java/lang/IncompatibleClassChangeError"
	case KindOutOfMemory:
		return "java/lang/OutOfMemoryError"
	case KindUnsatisfiedLink:
		return "java/lang/UnsatisfiedLinkError"
	case KindIllegalArgument:
		return "java/lang/IllegalArgumentException"
	case KindNullPointer:
		return "java/lang/NullPointerException"
	default:
		return "unknown"
	}
}

// ShortName 不带包名的异常名
func (k Kind) ShortName() string {
	s := k.String()
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return s[i+1:]
		}
	}
	return s
}

// ============================================================================
// 运行时错误码 (R 开头)
// ============================================================================

const (
	// R0600-R0699: 方法调用错误
	R0600 = "R0600" // 找不到方法
	R0601 = "R0601" // 静态/实例不兼容
	R0602 = "R0602" // 内存不足
	R0603 = "R0603" // 本地方法未链接
	R0604 = "R0604" // 参数与描述符不符
	R0605 = "R0605" // 空接收者
)

// ============================================================================
// 错误码信息
// ============================================================================

// ErrorInfo 错误码信息
type ErrorInfo struct {
	Code      string // 错误码
	Kind      Kind   // 失败种类
	MessageID string // i18n 消息 ID
	Category  string // 错误分类
}

// invokeErrors 调用错误码信息表
var invokeErrors = map[Kind]ErrorInfo{
	KindNoSuchMethod:            {R0600, KindNoSuchMethod, "invoke.no_such_method", "linkage"},
	KindIncompatibleClassChange: {R0601, KindIncompatibleClassChange, "invoke.incompatible_class_change", "linkage"},
	KindOutOfMemory:             {R0602, KindOutOfMemory, "invoke.out_of_memory", "resource"},
	KindUnsatisfiedLink:         {R0603, KindUnsatisfiedLink, "invoke.unsatisfied_link", "linkage"},
	KindIllegalArgument:         {R0604, KindIllegalArgument, "invoke.illegal_argument", "argument"},
	KindNullPointer:             {R0605, KindNullPointer, "invoke.null_receiver", "argument"},
}

// GetErrorInfo 获取种类对应的错误信息
func GetErrorInfo(k Kind) (ErrorInfo, bool) {
	info, ok := invokeErrors[k]
	return info, ok
}

// KindOfCode 由错误码反查种类
func KindOfCode(code string) (Kind, bool) {
	for k, info := range invokeErrors {
		if info.Code == code {
			return k, true
		}
	}
	return KindNone, false
}
