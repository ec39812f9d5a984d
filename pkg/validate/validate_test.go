package validate

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInteger(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"+7", 7, true},
		{"-3", -3, true},
		{"", 0, false},
		{" 5", 0, false},
		{"5 ", 0, false},
		{"5\t", 0, false},
		{"3.5", 0, false},
		{"abc", 0, false},
		{"4a", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := Integer(tc.in)
			if ok != tc.ok {
				t.Fatalf("Integer(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("Integer(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestMenuChoice(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"3", 3, true},
		{"5", 5, true},
		{"05", 5, true},
		{"0", 0, false},
		{"6", 0, false},
		{"-1", 0, false},
		{" 5", 0, false},
		{"5 ", 0, false},
		{"1 2", 0, false},
		{"two", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := MenuChoice(tc.in, 1, 5)
			if ok != tc.ok {
				t.Fatalf("MenuChoice(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("MenuChoice(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecimal(t *testing.T) {
	valid := []struct {
		in   string
		want string
	}{
		{"3000", "3000"},
		{"3000.50", "3000.5"},
		{"0", "0"},
		{"0.99", "0.99"},
		{"12.5", "12.5"},
		{"007", "7"},
	}
	for _, tc := range valid {
		t.Run(tc.in, func(t *testing.T) {
			d, ok := Decimal(tc.in)
			if !ok {
				t.Fatalf("Decimal(%q) rejected", tc.in)
			}
			if !d.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("Decimal(%q) = %s, want %s", tc.in, d, tc.want)
			}
		})
	}

	invalid := []string{
		"3.555", ".5", "3.", "+2.5", "-1", "-1.50", "1e3", "12,50",
		"", " 12", "12 ", "12. 5", "12.5.0", "abc",
	}
	for _, in := range invalid {
		t.Run(in, func(t *testing.T) {
			if _, ok := Decimal(in); ok {
				t.Errorf("Decimal(%q) accepted, want rejection", in)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	valid := []string{"EMP001", "e1", "123", "E", "abcXYZ789"}
	for _, in := range valid {
		if !Identifier(in) {
			t.Errorf("Identifier(%q) = false, want true", in)
		}
	}

	invalid := []string{"", "EMP 001", " EMP001", "emp-001", "emp_1", "émp", "id!", "\t"}
	for _, in := range invalid {
		if Identifier(in) {
			t.Errorf("Identifier(%q) = true, want false", in)
		}
	}
}
