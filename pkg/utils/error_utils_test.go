package utils

import "testing"

func TestIsValidPIN(t *testing.T) {
	valid := []string{"0000", "0099", "1234", "9999"}
	for _, pin := range valid {
		if !IsValidPIN(pin) {
			t.Errorf("expected %q to be valid", pin)
		}
	}

	invalid := []string{"", "123", "12345", "12a4", "12 4", "١٢٣٤", "-123", "12.4"}
	for _, pin := range invalid {
		if IsValidPIN(pin) {
			t.Errorf("expected %q to be invalid", pin)
		}
	}
}
