package textcase

import "testing"

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Hello", true},
		{"hello", false},
		{"HELLO", false},
		{"H", false},
		{"", false},
		{"Él", true},
		{"H2o", true},
		{"H2O", false},
	}
	for _, tt := range tests {
		if got := IsTitleCase(tt.in); got != tt.want {
			t.Errorf("IsTitleCase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsAllUpper(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"NASA", true},
		{"Nasa", false},
		{"nasa", false},
		{"N1A", true},
		{"123", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAllUpper(tt.in); got != tt.want {
			t.Errorf("IsAllUpper(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"word", true},
		{"naïve", true},
		{"wo-rd", false},
		{"word1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAlphabetic(tt.in); got != tt.want {
			t.Errorf("IsAlphabetic(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestContainsDigit(t *testing.T) {
	if !ContainsDigit("a1b") {
		t.Error(`ContainsDigit("a1b") = false, want true`)
	}
	if ContainsDigit("abc") {
		t.Error(`ContainsDigit("abc") = true, want false`)
	}
}

func TestUpperLowerFirst(t *testing.T) {
	if got := UpperFirst("élan"); got != "Élan" {
		t.Errorf(`UpperFirst("élan") = %q, want "Élan"`, got)
	}
	if got := UpperFirst(""); got != "" {
		t.Errorf(`UpperFirst("") = %q, want ""`, got)
	}
	if got := LowerFirst("Hello"); got != "hello" {
		t.Errorf(`LowerFirst("Hello") = %q, want "hello"`, got)
	}
}

func TestApplyCase(t *testing.T) {
	tests := []struct {
		original    string
		replacement string
		want        string
	}{
		{"Recieve", "receive", "Receive"},
		{"RECIEVE", "receive", "RECEIVE"},
		{"recieve", "receive", "receive"},
		{"Wierd", "weird", "Weird"},
		{"", "receive", "receive"},
		{"Recieve", "", ""},
	}
	for _, tt := range tests {
		if got := ApplyCase(tt.original, tt.replacement); got != tt.want {
			t.Errorf("ApplyCase(%q, %q) = %q, want %q", tt.original, tt.replacement, got, tt.want)
		}
	}
}
