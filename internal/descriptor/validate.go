package descriptor

import (
	"errors"
	"fmt"
)

// 数组最大维度
const MaxArrayDims = 255

var (
	ErrEmpty          = errors.New("descriptor: empty")
	ErrMissingParams  = errors.New("descriptor: missing '('")
	ErrUnterminated   = errors.New("descriptor: unterminated parameter list")
	ErrMissingReturn  = errors.New("descriptor: missing return type")
	ErrTrailing       = errors.New("descriptor: trailing characters")
	ErrBadClassName   = errors.New("descriptor: malformed class name")
	ErrTooManyDims    = errors.New("descriptor: too many array dimensions")
	ErrVoidParam      = errors.New("descriptor: void parameter")
	ErrUnknownTypeTag = errors.New("descriptor: unknown type tag")
)

// Validate 校验方法描述符
// 只在类加载时调用，调用路径上的解析器假设描述符合法。
func Validate(desc string) error {
	if desc == "" {
		return ErrEmpty
	}
	if desc[0] != '(' {
		return ErrMissingParams
	}
	pos := 1
	for {
		if pos >= len(desc) {
			return ErrUnterminated
		}
		if desc[pos] == ')' {
			pos++
			break
		}
		if desc[pos] == byte(TagVoid) {
			return fmt.Errorf("%w at %d", ErrVoidParam, pos)
		}
		next, err := fieldType(desc, pos)
		if err != nil {
			return err
		}
		pos = next
	}
	if pos >= len(desc) {
		return ErrMissingReturn
	}
	if desc[pos] == byte(TagVoid) {
		pos++
	} else {
		next, err := fieldType(desc, pos)
		if err != nil {
			return err
		}
		pos = next
	}
	if pos != len(desc) {
		return fmt.Errorf("%w: %q", ErrTrailing, desc[pos:])
	}
	return nil
}

// fieldType 校验一个字段类型，返回其后的位置
func fieldType(desc string, pos int) (int, error) {
	dims := 0
	for pos < len(desc) && desc[pos] == byte(TagArray) {
		dims++
		pos++
	}
	if dims > MaxArrayDims {
		return 0, ErrTooManyDims
	}
	if pos >= len(desc) {
		return 0, ErrUnterminated
	}
	switch Tag(desc[pos]) {
	case TagByte, TagBoolean, TagShort, TagChar, TagInt, TagLong, TagFloat, TagDouble:
		return pos + 1, nil
	case TagRef:
		start := pos + 1
		end := start
		for end < len(desc) && desc[end] != ';' {
			switch desc[end] {
			case '.', '[', '(', ')':
				return 0, fmt.Errorf("%w at %d", ErrBadClassName, end)
			}
			end++
		}
		if end >= len(desc) || end == start {
			return 0, fmt.Errorf("%w at %d", ErrBadClassName, start)
		}
		return end + 1, nil
	}
	return 0, fmt.Errorf("%w %q at %d", ErrUnknownTypeTag, desc[pos], pos)
}
