package utils

import "testing"

func TestGetenvBool(t *testing.T) {
	cases := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"TRUE", false, true},
		{"1", false, true},
		{"yes", false, true},
		{"false", true, false},
		{"0", true, false},
		{"no", true, false},
		{"", true, true},
		{"", false, false},
		{"maybe", true, true},
	}
	for _, tc := range cases {
		t.Setenv("POS_TEST_BOOL", tc.value)
		if got := GetenvBool("POS_TEST_BOOL", tc.fallback); got != tc.want {
			t.Errorf("GetenvBool(%q, %v) = %v, want %v", tc.value, tc.fallback, got, tc.want)
		}
	}
}

func TestGetenvList(t *testing.T) {
	fallback := []string{"http://localhost:3000"}

	t.Setenv("POS_TEST_LIST", "a, b ,c")
	got := GetenvList("POS_TEST_LIST", fallback)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("GetenvList = %v, want [a b c]", got)
	}

	t.Setenv("POS_TEST_LIST", "")
	got = GetenvList("POS_TEST_LIST", fallback)
	if len(got) != 1 || got[0] != fallback[0] {
		t.Errorf("GetenvList on empty = %v, want fallback", got)
	}

	t.Setenv("POS_TEST_LIST", " , ,")
	got = GetenvList("POS_TEST_LIST", fallback)
	if len(got) != 1 || got[0] != fallback[0] {
		t.Errorf("GetenvList on blank entries = %v, want fallback", got)
	}
}
