package resolve

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/tangzhangming/nvcall/internal/errors"
	"github.com/tangzhangming/nvcall/internal/rt"
)

// hierarchy 构造 A <- B <- C
func hierarchy() (a, b, c *rt.Class) {
	a = rt.NewClass("demo/A", nil)
	a.AddMethod(rt.InitName, "()V", rt.AccPublic, 1)
	a.AddMethod(rt.ClinitName, "()V", rt.AccStatic, 2)
	a.AddMethod("speak", "(I)I", rt.AccPublic, 3)
	a.AddMethod("create", "()Ldemo/A;", rt.AccPublic|rt.AccStatic, 4)
	a.AddMethod("secret", "()V", rt.AccPrivate, 5)

	b = rt.NewClass("demo/B", a)
	b.AddMethod("speak", "(I)I", rt.AccPublic, 6)
	b.AddMethod("secret", "()V", rt.AccPrivate, 7)

	c = rt.NewClass("demo/C", b)
	return a, b, c
}

func newEnv() (*rt.Env, *errors.Recorder) {
	rec := errors.NewRecorder(nil)
	return rt.NewEnv(nil, rt.WithReporter(rec)), rec
}

func TestInheritanceWalk(t *testing.T) {
	a, b, c := hierarchy()
	env, rec := newEnv()

	tests := []struct {
		class *rt.Class
		name  string
		desc  string
		owner *rt.Class
	}{
		{c, "speak", "(I)I", b},
		{b, "speak", "(I)I", b},
		{a, "speak", "(I)I", a},
		{c, "create", "()Ldemo/A;", a},
	}

	for _, tt := range tests {
		m, err := Method(env, tt.class, tt.name, tt.desc)
		if err != nil {
			t.Fatalf("Method(%s, %s): %v", tt.class, tt.name, err)
		}
		if m.Class != tt.owner {
			t.Errorf("Method(%s, %s) found in %s, want %s", tt.class, tt.name, m.Class, tt.owner)
		}
	}
	if rec.Count() != 0 {
		t.Errorf("successful lookups must not report, got %d", rec.Count())
	}
}

func TestConstructorsNotInherited(t *testing.T) {
	_, _, c := hierarchy()

	for _, name := range []string{rt.InitName, rt.ClinitName} {
		env, rec := newEnv()
		m, err := Method(env, c, name, "()V")
		if m != nil || !stderrors.Is(err, errors.ErrNoSuchMethod) {
			t.Errorf("%s: got (%v, %v), want NoSuchMethod", name, m, err)
		}
		if rec.Count() != 1 {
			t.Errorf("%s: %d reports, want 1", name, rec.Count())
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	_, _, c := hierarchy()
	env, _ := newEnv()

	first, err := Method(env, c, "speak", "(I)I")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Method(env, c, "speak", "(I)I")
		if err != nil || again != first {
			t.Fatalf("lookup %d returned %v, want %v", i, again, first)
		}
	}
}

func TestNoSuchMethodHints(t *testing.T) {
	_, _, c := hierarchy()
	env, rec := newEnv()

	_, err := Method(env, c, "speek", "(I)I")
	if !stderrors.Is(err, errors.ErrNoSuchMethod) {
		t.Fatalf("got %v", err)
	}
	e := rec.Pending()
	if e == nil || e.Class != "demo/C" || e.Name != "speek" {
		t.Fatalf("pending = %+v", e)
	}
	if len(e.Hints) == 0 || !strings.Contains(e.Hints[0], "speak") {
		t.Errorf("hints = %v", e.Hints)
	}
}

func TestStaticInstanceContract(t *testing.T) {
	_, _, c := hierarchy()

	tests := []struct {
		name   string
		lookup func(*rt.Env, *rt.Class, string, string) (*rt.Method, error)
		method string
		desc   string
		want   error
	}{
		{"class lookup of static", ClassMethod, "create", "()Ldemo/A;", nil},
		{"instance lookup of instance", InstanceMethod, "speak", "(I)I", nil},
		{"class lookup of instance", ClassMethod, "speak", "(I)I", errors.ErrIncompatibleClassChange},
		{"instance lookup of static", InstanceMethod, "create", "()Ldemo/A;", errors.ErrIncompatibleClassChange},
		{"missing", ClassMethod, "nope", "()V", errors.ErrNoSuchMethod},
	}

	for _, tt := range tests {
		env, rec := newEnv()
		m, err := tt.lookup(env, c, tt.method, tt.desc)
		if tt.want == nil {
			if err != nil || m == nil {
				t.Errorf("%s: got (%v, %v)", tt.name, m, err)
			}
			continue
		}
		if m != nil || !stderrors.Is(err, tt.want) {
			t.Errorf("%s: got (%v, %v), want %v", tt.name, m, err, tt.want)
		}
		if rec.Count() != 1 {
			t.Errorf("%s: %d reports, want exactly 1", tt.name, rec.Count())
		}
	}
}

func TestVirtual(t *testing.T) {
	a, b, c := hierarchy()
	env, _ := newEnv()

	speak := a.DeclaredMethod("speak", "(I)I")
	m, err := Virtual(env, rt.NewObject(c), speak)
	if err != nil {
		t.Fatal(err)
	}
	if m.Class != b {
		t.Errorf("virtual speak on C resolved to %s, want demo/B", m.Class)
	}

	m, _ = Virtual(env, rt.NewObject(a), speak)
	if m != speak {
		t.Errorf("virtual speak on A should stay A.speak")
	}

	// 私有方法不做虚分派
	secret := a.DeclaredMethod("secret", "()V")
	m, _ = Virtual(env, rt.NewObject(c), secret)
	if m != secret {
		t.Errorf("private method was re-resolved to %s", m)
	}
}

func TestVirtualMissingInReceiverClass(t *testing.T) {
	a, _, _ := hierarchy()
	other := rt.NewClass("demo/Other", nil)
	env, rec := newEnv()

	_, err := Virtual(env, rt.NewObject(other), a.DeclaredMethod("speak", "(I)I"))
	if !stderrors.Is(err, errors.ErrNoSuchMethod) || rec.Count() != 1 {
		t.Errorf("got %v with %d reports", err, rec.Count())
	}
}
