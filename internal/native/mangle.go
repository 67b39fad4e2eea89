// Package native 按 JNI 命名规则为本地方法定位实现
package native

import (
	"fmt"
	"strings"
)

// Mangle 按 JNI 规则转义名称
//
//	/ -> _    _ -> _1    ; -> _2    [ -> _3    非 ASCII 字母数字 -> _0xxxx
func Mangle(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r == '/':
			sb.WriteByte('_')
		case r == '_':
			sb.WriteString("_1")
		case r == ';':
			sb.WriteString("_2")
		case r == '[':
			sb.WriteString("_3")
		case r < 0x80 && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'):
			sb.WriteRune(r)
		case r > 0xffff:
			// 补充平面字符按 UTF-16 代理对转义
			r -= 0x10000
			fmt.Fprintf(&sb, "_0%04x_0%04x", 0xd800+(r>>10), 0xdc00+(r&0x3ff))
		default:
			fmt.Fprintf(&sb, "_0%04x", r)
		}
	}
	return sb.String()
}

// ShortName 短名称 Java_<类>_<方法>
func ShortName(class, method string) string {
	return "Java_" + Mangle(class) + "_" + Mangle(method)
}

// LongName 长名称，附加转义后的参数描述符
func LongName(class, method, desc string) string {
	return ShortName(class, method) + "__" + Mangle(paramsOf(desc))
}

// paramsOf 取出描述符括号内的部分
func paramsOf(desc string) string {
	start := strings.IndexByte(desc, '(')
	end := strings.LastIndexByte(desc, ')')
	if start < 0 || end < start {
		return ""
	}
	return desc[start+1 : end]
}
