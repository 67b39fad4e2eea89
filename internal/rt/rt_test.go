package rt

import (
	"math"
	"testing"
	"unsafe"

	"github.com/tangzhangming/nvcall/internal/descriptor"
)

// ============================================================================
// 参数值
// ============================================================================

func TestValueUnion(t *testing.T) {
	if v := Byte(-1); v.Long() != -1 || v.Char() != 0xffff {
		t.Errorf("Byte(-1) = %d/%d", v.Long(), v.Char())
	}
	if v := Char(0xffff); v.Int() != 0xffff {
		t.Errorf("Char is zero-extended, got %d", v.Int())
	}
	if v := Int(math.MinInt32); v.Long() != math.MinInt32 {
		t.Errorf("Int is sign-extended, got %d", v.Long())
	}
	if v := Float(1.5); v.Bits() != uint64(math.Float32bits(1.5)) {
		t.Errorf("Float bits = %#x", v.Bits())
	}
	if v := Double(-2.25); v.Double() != -2.25 {
		t.Errorf("Double = %g", v.Double())
	}
	if !Boolean(true).Boolean() || Boolean(false).Boolean() {
		t.Errorf("Boolean round trip")
	}
	if Null().Ref() != nil || Null().Kind() != KindRef {
		t.Errorf("Null must be a nil reference")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(7), "int(7)"},
		{Long(-3), "long(-3)"},
		{Boolean(true), "boolean(true)"},
		{Double(0.5), "double(0.5)"},
		{Null(), "null"},
		{Value{}, "invalid"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		tag  descriptor.Tag
		want Kind
	}{
		{descriptor.TagInt, KindInt},
		{descriptor.TagChar, KindChar},
		{descriptor.TagDouble, KindDouble},
		{descriptor.TagRef, KindRef},
		{descriptor.TagArray, KindRef},
		{descriptor.TagNone, KindInvalid},
	}
	for _, tt := range tests {
		if got := KindOf(tt.tag); got != tt.want {
			t.Errorf("KindOf(%s) = %s, want %s", tt.tag, got, tt.want)
		}
	}
}

// ============================================================================
// 类与方法
// ============================================================================

func TestAccessFlags(t *testing.T) {
	f := AccPublic | AccStatic | AccNative
	if !f.IsStatic() || !f.IsNative() || f.IsPrivate() {
		t.Errorf("flag predicates wrong for %s", f)
	}
	if got := f.String(); got != "public static native" {
		t.Errorf("String() = %q", got)
	}
	if flag, ok := ParseAccessFlag("private"); !ok || flag != AccPrivate {
		t.Errorf("ParseAccessFlag(private) = %v, %v", flag, ok)
	}
	if _, ok := ParseAccessFlag("volatile"); ok {
		t.Errorf("unknown flag accepted")
	}
}

func TestClassMethods(t *testing.T) {
	base := NewClass("demo/Base", nil)
	derived := NewClass("demo/Derived", base)
	m := base.AddMethod("run", "()V", AccPublic, 0)

	if base.DeclaredMethod("run", "()V") != m {
		t.Errorf("DeclaredMethod did not find run")
	}
	if derived.DeclaredMethod("run", "()V") != nil {
		t.Errorf("DeclaredMethod must not walk superclasses")
	}
	if !derived.IsSubclassOf(base) || base.IsSubclassOf(derived) {
		t.Errorf("IsSubclassOf wrong")
	}
	if got := m.String(); got != "demo/Base.run()V" {
		t.Errorf("Method.String() = %q", got)
	}
	var nilClass *Class
	if nilClass.String() != "<nil>" {
		t.Errorf("nil class String")
	}
}

// ============================================================================
// 帧
// ============================================================================

func TestFrameLeadingSlots(t *testing.T) {
	env := NewEnv(nil)
	obj := NewObject(NewClass("demo/A", nil))
	f := &Frame{Ints: []Word{{}, {Ptr: unsafe.Pointer(env)}, {Ptr: unsafe.Pointer(obj)}}}
	if f.Env() != env {
		t.Errorf("Env() did not return the env slot")
	}
	if f.Receiver() != obj {
		t.Errorf("Receiver() did not return the receiver slot")
	}
	short := &Frame{Ints: []Word{{}}}
	if short.Env() != nil || short.Receiver() != nil {
		t.Errorf("short frame must yield nil")
	}
}

func TestStackSlotWidths(t *testing.T) {
	s32 := StackSlot{Kind: SlotFloat32, Word: Word{Bits: uint64(math.Float32bits(3.5))}}
	if s32.Float32() != 3.5 {
		t.Errorf("Float32() = %g", s32.Float32())
	}
	s64 := StackSlot{Kind: SlotFloat64, Word: Word{Bits: math.Float64bits(-1.25)}}
	if s64.Float64() != -1.25 {
		t.Errorf("Float64() = %g", s64.Float64())
	}
	if SlotWord.String() != "word" || SlotFloat32.String() != "f32" {
		t.Errorf("SlotKind names")
	}
}

func TestNewEnvDefaults(t *testing.T) {
	env := NewEnv(TrampolineFunc(func(*Frame) Raw { return Raw{GP: 1} }))
	if env.Alloc == nil || env.Reporter == nil || env.Log() == nil {
		t.Fatalf("defaults not set: %+v", env)
	}
	if env.ABI.IntRegs() < 3 {
		t.Errorf("native convention too small: %s", env.ABI)
	}
	if got := env.Trampoline.Call(&Frame{}); got.GP != 1 {
		t.Errorf("TrampolineFunc not called")
	}
}
