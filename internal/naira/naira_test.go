package naira

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₦0"},
		{5, "₦5"},
		{999, "₦999"},
		{1000, "₦1,000"},
		{5000, "₦5,000"},
		{12500, "₦12,500"},
		{100000, "₦100,000"},
		{1234567, "₦1,234,567"},
	}
	for _, tt := range tests {
		if got := Format(tt.amount); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestParseIsLeftInverseOfFormat(t *testing.T) {
	amounts := []int{0, 1, 99, 100, 999, 1000, 9999, 10000, 123456, 1234567, 1000000000}
	for _, n := range amounts {
		got, err := Parse(Format(n))
		if err != nil {
			t.Fatalf("Parse(Format(%d)) returned error: %v", n, err)
		}
		if got != n {
			t.Errorf("Parse(Format(%d)) = %d", n, got)
		}
	}
}

func TestParseAcceptsBareNumbers(t *testing.T) {
	got, err := Parse("15000")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != 15000 {
		t.Errorf("Parse(\"15000\") = %d", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "₦", "₦abc", "five thousand"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) expected error", s)
		}
	}
}
