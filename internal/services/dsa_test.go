package services

import "testing"

func TestRequiresDSA(t *testing.T) {
	tests := []struct {
		name      string
		countries []string
		want      bool
	}{
		{"eu member", []string{"IT"}, true},
		{"eea member", []string{"NO"}, true},
		{"mixed", []string{"US", "BR", "DE"}, true},
		{"outside", []string{"US", "GB", "CH"}, false},
		{"empty", nil, false},
		{"lowercase not matched", []string{"it"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiresDSA(tt.countries); got != tt.want {
				t.Fatalf("RequiresDSA(%v) = %v, want %v", tt.countries, got, tt.want)
			}
		})
	}
}
