package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/tangzhangming/nvcall/internal/rt"
)

const zoo = `
classes:
  - name: demo/Dog
    super: demo/Animal
    methods:
      - name: speak
        desc: (I)I
        access: [public, native]
  - name: demo/Animal
    super: java/lang/Object
    methods:
      - name: <init>
        desc: ()V
        access: [public]
      - name: speak
        desc: (I)I
        access: [public, native]
      - name: create
        desc: ()Ldemo/Animal;
        access: [public, static, native]
  - name: java/lang/Object
`

func TestLoad(t *testing.T) {
	h, err := Load(strings.NewReader(zoo))
	if err != nil {
		t.Fatal(err)
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d", h.Len())
	}

	dog, ok := h.Class("demo/Dog")
	if !ok {
		t.Fatal("demo/Dog missing")
	}
	if dog.Super == nil || dog.Super.Name != "demo/Animal" || dog.Super.Super.Name != "java/lang/Object" {
		t.Errorf("superclass chain broken: %v", dog.Super)
	}

	animal, _ := h.Class("demo/Animal")
	create := animal.DeclaredMethod("create", "()Ldemo/Animal;")
	if create == nil || !create.IsStatic() || !create.Access.IsNative() {
		t.Errorf("create = %v", create)
	}
	if create.Class != animal || create.Impl != 0 {
		t.Errorf("create owner/impl: %v %#x", create.Class, create.Impl)
	}

	if got := len(h.Methods()); got != 4 {
		t.Errorf("Methods = %d, want 4", got)
	}
	if names := h.Names(); names[0] != "demo/Animal" {
		t.Errorf("Names not sorted: %v", names)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown super", "classes:\n  - name: A\n    super: B\n", ErrUnknownSuper},
		{"cycle", "classes:\n  - name: A\n    super: B\n  - name: B\n    super: A\n", ErrCycle},
		{"duplicate class", "classes:\n  - name: A\n  - name: A\n", ErrDuplicateClass},
		{"no name", "classes:\n  - super: A\n", ErrNoName},
		{"bad descriptor", "classes:\n  - name: A\n    methods:\n      - name: f\n        desc: (Q)V\n", ErrBadDescriptor},
		{"duplicate method", "classes:\n  - name: A\n    methods:\n      - {name: f, desc: ()V}\n      - {name: f, desc: ()V}\n", ErrDuplicateMethod},
		{"bad access", "classes:\n  - name: A\n    methods:\n      - {name: f, desc: ()V, access: [friendly]}\n", ErrBadAccess},
	}

	for _, tt := range tests {
		_, err := Load(strings.NewReader(tt.yaml))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestLoadUnknownField(t *testing.T) {
	if _, err := Load(strings.NewReader("classes:\n  - name: A\n    parent: B\n")); err == nil {
		t.Errorf("unknown field should be rejected")
	}
}

func TestLoadEmpty(t *testing.T) {
	h, err := Load(strings.NewReader(""))
	if err != nil || h.Len() != 0 {
		t.Errorf("empty input: (%v, %v)", h, err)
	}
}

func TestAccessFlagsCombined(t *testing.T) {
	h, err := Load(strings.NewReader("classes:\n  - name: A\n    methods:\n      - {name: f, desc: ()V, access: [private, static, static]}\n"))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := h.Class("A")
	m := a.DeclaredMethod("f", "()V")
	if m.Access != rt.AccPrivate|rt.AccStatic {
		t.Errorf("access = %s", m.Access)
	}
}
