package i18n

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"zh", LangChinese},
		{"ZH-CN", LangChinese},
		{"chinese", LangChinese},
		{"en", LangEnglish},
		{"", LangEnglish},
		{"fr", LangEnglish},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestT(t *testing.T) {
	defer SetLanguage(GetLanguage())

	SetLanguage(LangEnglish)
	if got := T("cli.unknown_command", "x"); got != "unknown command: x" {
		t.Errorf("en = %q", got)
	}
	if got := T("no.such.id"); got != "no.such.id" {
		t.Errorf("missing id = %q", got)
	}

	SetLanguageFromString("zh")
	got := T("invoke.no_such_method", "demo/A", "f", "()V")
	if got != "类 demo/A 及其父类中不存在方法 f()V" {
		t.Errorf("zh = %q", got)
	}
}

// 两张表的键必须一致
func TestTablesMatch(t *testing.T) {
	for id := range messagesEN {
		if _, ok := messagesZH[id]; !ok {
			t.Errorf("zh missing %s", id)
		}
	}
	for id := range messagesZH {
		if _, ok := messagesEN[id]; !ok {
			t.Errorf("en missing %s", id)
		}
	}
}
