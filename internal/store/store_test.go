package store

import "testing"

func TestOrderNumberFromID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"64b5f3a2c9e77a0012d4e9ab", "ORD-D4E9AB"},
		{"0f8fad5b-d9cb-469f-a165-70867728950e", "ORD-28950E"},
		{"abc", "ORD-000ABC"},
		{"", "ORD-000000"},
	}
	for _, tt := range tests {
		if got := OrderNumberFromID(tt.id); got != tt.want {
			t.Errorf("OrderNumberFromID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestOrderNumberFromIDSkipsNonHex(t *testing.T) {
	if got := OrderNumberFromID("zz-12de-xy-34af"); got != "ORD-DE34AF" {
		t.Errorf("got %q", got)
	}
}
