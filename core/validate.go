package core

import (
	"math"
	"net/mail"
	"strconv"
	"strings"
)

// IsPresent reports whether a submitted value is non-empty.
func IsPresent(v string) bool {
	return v != ""
}

// IsNumeric reports whether v parses as a finite number.
func IsNumeric(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsEmail reports whether v is a bare e-mail address.
func IsEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil {
		return false
	}
	return addr.Address == v && strings.Contains(addr.Address[strings.LastIndexByte(addr.Address, '@')+1:], ".")
}

// MaxLength reports whether v holds at most n bytes.
func MaxLength(v string, n int) bool {
	return len(v) <= n
}

// MinLength reports whether v holds at least n bytes.
func MinLength(v string, n int) bool {
	return len(v) >= n
}
