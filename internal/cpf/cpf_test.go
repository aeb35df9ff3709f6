package cpf

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid plain", "52998224725", true},
		{"valid plain 2", "11144477735", true},
		{"valid plain 3", "16899535009", true},
		{"valid formatted", "529.982.247-25", true},
		{"valid formatted 2", "111.444.777-35", true},
		{"flipped last digit", "52998224726", false},
		{"flipped middle digit", "52988224725", false},
		{"flipped first check digit", "11144477745", false},
		{"all zeros", "00000000000", false},
		{"all ones", "11111111111", false},
		{"all nines", "99999999999", false},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
		{"empty", "", false},
		{"only punctuation", "...-", false},
		{"letters ignored leaves short", "abc529982247", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.in); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("529.982.247-25"); got != "52998224725" {
		t.Errorf("Normalize: got %q", got)
	}
	if got := Normalize("no digits"); got != "" {
		t.Errorf("Normalize: got %q, want empty", got)
	}
}
