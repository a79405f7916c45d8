//go:build go1.18

package domain

import (
	"testing"
	"unicode/utf8"
)

// FuzzParseEmployeeID tests that parsing never panics on arbitrary input
// and always returns either a valid ID or an error.
func FuzzParseEmployeeID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE employees;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseEmployeeID(input)
		if err == nil {
			roundTrip, err2 := ParseEmployeeID(id.String())
			if err2 != nil {
				t.Errorf("Valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("Round-trip changed ID value")
			}
			if id.IsNil() {
				t.Error("nil UUID was accepted")
			}
		}

		if !utf8.ValidString(input) && err == nil {
			t.Error("Non-UTF8 input was accepted")
		}
	})
}

// FuzzParseRole ensures only the closed role set parses.
func FuzzParseRole(f *testing.F) {
	f.Add("ADMIN")
	f.Add("")
	f.Add("root")

	f.Fuzz(func(t *testing.T, input string) {
		role, err := ParseRole(input)
		if err == nil && !role.IsValid() {
			t.Errorf("ParseRole accepted %q outside the closed set", input)
		}
	})
}
