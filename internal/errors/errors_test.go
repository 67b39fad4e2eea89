package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tangzhangming/nvcall/internal/i18n"
)

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind  Kind
		short string
		code  string
	}{
		{KindNoSuchMethod, "NoSuchMethodError", R0600},
		{KindIncompatibleClassChange, "IncompatibleClassChangeError", R0601},
		{KindOutOfMemory, "OutOfMemoryError", R0602},
		{KindUnsatisfiedLink, "UnsatisfiedLinkError", R0603},
		{KindIllegalArgument, "IllegalArgumentException", R0604},
		{KindNullPointer, "NullPointerException", R0605},
	}

	for _, tt := range tests {
		if tt.kind.ShortName() != tt.short {
			t.Errorf("%v.ShortName() = %s, want %s", tt.kind, tt.kind.ShortName(), tt.short)
		}
		info, ok := GetErrorInfo(tt.kind)
		if !ok || info.Code != tt.code {
			t.Errorf("GetErrorInfo(%v) = %+v", tt.kind, info)
		}
		if k, ok := KindOfCode(tt.code); !ok || k != tt.kind {
			t.Errorf("KindOfCode(%s) = %v", tt.code, k)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := NoSuchMethod("demo/A", "foo", "(I)V")
	wrapped := fmt.Errorf("call failed: %w", err)

	if !stderrors.Is(wrapped, ErrNoSuchMethod) {
		t.Errorf("errors.Is(NoSuchMethod) = false")
	}
	if stderrors.Is(wrapped, ErrOutOfMemory) {
		t.Errorf("NoSuchMethod must not match OutOfMemory")
	}
	if KindOf(wrapped) != KindNoSuchMethod {
		t.Errorf("KindOf = %v", KindOf(wrapped))
	}
	if KindOf(stderrors.New("plain")) != KindNone {
		t.Errorf("KindOf(plain) should be KindNone")
	}
}

func TestErrorMessage(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)

	err := OutOfMemory("demo/A", "foo", "(I)V", stderrors.New("quota"))
	msg := err.Error()
	for _, want := range []string{"OutOfMemoryError", "demo/A.foo(I)V", "quota"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	if !stderrors.Is(err, err.Err) {
		t.Errorf("Unwrap should expose the cause")
	}
}

func TestErrorMessageChinese(t *testing.T) {
	i18n.SetLanguage(i18n.LangChinese)
	defer i18n.SetLanguage(i18n.LangEnglish)

	msg := NoSuchMethod("demo/A", "foo", "()V").Message()
	if !strings.Contains(msg, "不存在方法") {
		t.Errorf("got %q", msg)
	}
}

func TestFormatter(t *testing.T) {
	f := &Formatter{Colors: false, ShowHints: true}
	err := NoSuchMethod("demo/A", "fooo", "()V").WithHints("did you mean 'foo'?")

	out := f.Format(err)
	for _, want := range []string{"NoSuchMethodError[R0600]", "class: demo/A", "method: fooo()V", "= help: did you mean 'foo'?"} {
		if !strings.Contains(out, want) {
			t.Errorf("format output missing %q:\n%s", want, out)
		}
	}
	if Strip(out) != out {
		t.Errorf("colours disabled but output has escape codes")
	}
}

// ============================================================================
// 建议
// ============================================================================

func TestFindSimilar(t *testing.T) {
	candidates := []string{"toString", "hashCode", "equals"}

	tests := []struct {
		name string
		want string
	}{
		{"tostring", "toString"},
		{"toStrin", "toString"},
		{"hashcod", "hashCode"},
		{"equal", "equals"},
		{"completelyDifferent", ""},
	}

	for _, tt := range tests {
		if got := FindSimilar(tt.name, candidates, 2); got != tt.want {
			t.Errorf("FindSimilar(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSuggestMethod(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	candidates := []Candidate{{"speak", "(I)I"}, {"run", "()V"}}

	hints := SuggestMethod("speak", "(J)I", candidates)
	if len(hints) != 1 || !strings.Contains(hints[0], "(I)I") {
		t.Errorf("other descriptor hint: %v", hints)
	}

	hints = SuggestMethod("speek", "(I)I", candidates)
	if len(hints) != 1 || !strings.Contains(hints[0], "speak") {
		t.Errorf("similar name hint: %v", hints)
	}

	if hints := SuggestMethod("zzz", "()V", candidates); len(hints) != 0 {
		t.Errorf("unexpected hints: %v", hints)
	}
}

// ============================================================================
// 报告器
// ============================================================================

func TestRecorder(t *testing.T) {
	r := NewRecorder(nil)
	if r.Err() != nil || r.Pending() != nil {
		t.Fatalf("fresh recorder should be empty")
	}

	first := NoSuchMethod("A", "a", "()V")
	second := NullPointer("B", "b", "()V")
	r.Throw(first)
	r.Throw(second)

	if r.Count() != 2 {
		t.Errorf("Count = %d, want 2", r.Count())
	}
	if r.Pending() != second {
		t.Errorf("Pending should be the last raised error")
	}
	if !stderrors.Is(r.Err(), ErrNoSuchMethod) || !stderrors.Is(r.Err(), ErrNullPointer) {
		t.Errorf("combined error %v should match both kinds", r.Err())
	}

	if r.Clear() != second || r.Pending() != nil {
		t.Errorf("Clear should return and drop the pending error")
	}
	if r.Count() != 2 {
		t.Errorf("Clear must keep history")
	}

	r.Reset()
	if r.Count() != 0 || r.Err() != nil {
		t.Errorf("Reset should drop history")
	}
}
