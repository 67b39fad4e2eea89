package emu

import (
	"math"
	"testing"

	"github.com/tangzhangming/nvcall/internal/abi"
	"github.com/tangzhangming/nvcall/internal/callframe"
	"github.com/tangzhangming/nvcall/internal/descriptor"
	"github.com/tangzhangming/nvcall/internal/rt"
)

func TestRegisterAndLookup(t *testing.T) {
	m := NewMachine()
	a := m.Register("Java_demo_A_f", func(*rt.Frame) rt.Raw { return rt.Raw{GP: 1} })
	b := m.Register("Java_demo_A_g", func(*rt.Frame) rt.Raw { return rt.Raw{GP: 2} })

	if a == 0 || b == 0 || a == b {
		t.Fatalf("entry points: %#x %#x", a, b)
	}
	if got, ok := m.Lookup("Java_demo_A_f"); !ok || got != a {
		t.Errorf("Lookup = (%#x, %v)", got, ok)
	}
	if _, ok := m.Lookup("Java_demo_A_h"); ok {
		t.Errorf("unknown symbol found")
	}
	if m.Symbol(b) != "Java_demo_A_g" {
		t.Errorf("Symbol(%#x) = %q", b, m.Symbol(b))
	}

	// 重复注册保留入口地址
	again := m.Register("Java_demo_A_f", func(*rt.Frame) rt.Raw { return rt.Raw{GP: 3} })
	if again != a {
		t.Errorf("re-register changed entry point")
	}
	if raw := m.Call(&rt.Frame{Function: a}); raw.GP != 3 {
		t.Errorf("re-registered implementation not used: %v", raw)
	}
	if m.Calls(a) != 1 {
		t.Errorf("Calls = %d", m.Calls(a))
	}
}

func TestCallUnknownEntry(t *testing.T) {
	m := NewMachine()
	if raw := m.Call(&rt.Frame{Function: 0xdead}); raw != (rt.Raw{}) {
		t.Errorf("unknown entry returned %v", raw)
	}
	if m.Misses() != 1 {
		t.Errorf("Misses = %d", m.Misses())
	}
}

func TestUnpackMatchesBuild(t *testing.T) {
	mach := NewMachine()
	env := rt.NewEnv(mach, rt.WithABI(abi.WindowsX64))
	class := rt.NewClass("demo/A", nil)
	arg := rt.NewObject(class)
	obj := rt.NewObject(class)

	desc := "(ZBCSIJFDLdemo/A;FDI)V"
	args := []rt.Value{
		rt.Boolean(true), rt.Byte(-7), rt.Char('x'), rt.Short(-300), rt.Int(123456),
		rt.Long(-1 << 50), rt.Float(0.5), rt.Double(math.Pi), rt.Ref(arg),
		rt.Float(-8), rt.Double(1e300), rt.Int(-1),
	}

	var got []rt.Value
	var this *rt.Object
	m := class.AddMethod("f", desc, rt.AccPublic, 0)
	mach.Define(m, "Java_demo_A_f", func(_ *rt.Env, self *rt.Object, in []rt.Value) rt.Value {
		this, got = self, in
		return rt.Value{}
	})

	frame, release, err := callframe.Build(env, m, obj, false, args)
	if err != nil {
		t.Fatal(err)
	}
	defer release()
	if len(frame.Stack) == 0 {
		t.Fatalf("win64 layout should overflow")
	}
	mach.Call(frame)

	if this != obj {
		t.Errorf("receiver = %p, want %p", this, obj)
	}
	if len(got) != len(args) {
		t.Fatalf("got %d args", len(got))
	}
	for i := range args {
		if got[i] != args[i] {
			t.Errorf("arg %d = %v, want %v", i, got[i], args[i])
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		ret  descriptor.Tag
		v    rt.Value
		want rt.Raw
	}{
		{descriptor.TagBoolean, rt.Boolean(true), rt.Raw{GP: 1}},
		{descriptor.TagByte, rt.Byte(-1), rt.Raw{GP: math.MaxUint64}},
		{descriptor.TagChar, rt.Char(0xffff), rt.Raw{GP: 0xffff}},
		{descriptor.TagInt, rt.Int(-2), rt.Raw{GP: math.MaxUint64 - 1}},
		{descriptor.TagLong, rt.Long(1 << 62), rt.Raw{GP: 1 << 62}},
		{descriptor.TagFloat, rt.Float(1), rt.Raw{FP: uint64(math.Float32bits(1))}},
		{descriptor.TagDouble, rt.Double(1), rt.Raw{FP: math.Float64bits(1)}},
		{descriptor.TagVoid, rt.Int(5), rt.Raw{}},
	}

	for _, tt := range tests {
		if got := Encode(tt.ret, tt.v); got != tt.want {
			t.Errorf("Encode(%s, %v) = %+v, want %+v", tt.ret, tt.v, got, tt.want)
		}
	}
}
