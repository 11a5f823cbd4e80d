package utils

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Besi   Beton 10mm ", "Besi Beton 10mm"},
		{"Semen 50kg", "Semen 50kg"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Besi Beton 10mm", "besi-beton-10mm"},
		{"Semen (50kg) / Sak", "semen-50kg-sak"},
		{"  PIPA---PVC  ", "pipa-pvc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
