package main

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	src, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	code := string(src)

	if !strings.HasPrefix(code, "// Code generated by invokegen. DO NOT EDIT.") {
		t.Errorf("missing generated header")
	}
	if n := strings.Count(code, "\nfunc "); n != len(modes)*len(retTypes)*len(styles) {
		t.Errorf("generated %d functions, want %d", n, len(modes)*len(retTypes)*len(styles))
	}

	for _, want := range []string{
		"func CallVoidInstanceMethodA(",
		"func CallNonvirtualDoubleInstanceMethodV(",
		"func CallBooleanClassMethod(",
		"return callV[int32](env, Static, nil, m, args)",
		"_, err := callA[Void](env, Nonvirtual, obj, m, args)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q", want)
		}
	}
}
