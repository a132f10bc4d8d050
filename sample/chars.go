// SPDX-License-Identifier: MIT
// Package: numrange/sample
//
// chars.go — ASCII character and string sampling.
//
// Characters are byte-range draws over fixed ASCII bounds. A mixed
// alphanumeric position flips a coin for letter vs digit, and a letter flips
// another coin for its case, so digits make up half of the output on average.

package sample

import "github.com/katalvlaran/numrange/bound"

// ASCII bounds used by the character samplers and classifiers.
var (
	Uppercase = bound.New[int8]('A', 'Z') // 65–90
	Lowercase = bound.New[int8]('a', 'z') // 97–122
	Numeric   = bound.New[int8]('0', '9') // 48–57
)

// DefaultStringLength is the length of RandomString.
const DefaultStringLength = 16

// char draws one byte from an ASCII bound. The bounds above are valid
// sampling ranges, so Within cannot fail here.
func (s *Sampler) char(b bound.Bound[int8]) byte {
	c, _ := Within(s, b)

	return byte(c)
}

// Upper returns a random letter in [A-Z].
func (s *Sampler) Upper() byte { return s.char(Uppercase) }

// Lower returns a random letter in [a-z].
func (s *Sampler) Lower() byte { return s.char(Lowercase) }

// Digit returns a random digit character in [0-9].
func (s *Sampler) Digit() byte { return s.char(Numeric) }

// Letter returns a random letter in [a-zA-Z], the case chosen by a coin flip.
func (s *Sampler) Letter() byte {
	if s.Bool() {
		return s.Upper()
	}

	return s.Lower()
}

// Alphanumeric returns a letter or a digit, chosen by a coin flip.
func (s *Sampler) Alphanumeric() byte {
	if s.Bool() {
		return s.Letter()
	}

	return s.Digit()
}

// String returns length independent Alphanumeric characters.
// String(0) is "". Returns ErrNegativeLength when length < 0.
// Complexity: O(length).
func (s *Sampler) String(length int) (string, error) {
	if length < 0 {
		return "", sampleErrorf(methodString, ErrNegativeLength, "length=%d", length)
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = s.Alphanumeric()
	}

	return string(buf), nil
}

// Digits returns length random digit characters.
// Returns ErrNegativeLength when length < 0.
// Complexity: O(length).
func (s *Sampler) Digits(length int) (string, error) {
	if length < 0 {
		return "", sampleErrorf(methodDigits, ErrNegativeLength, "length=%d", length)
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = s.Digit()
	}

	return string(buf), nil
}

// RandomString returns DefaultStringLength alphanumeric characters.
func (s *Sampler) RandomString() string {
	str, _ := s.String(DefaultStringLength)

	return str
}

// IsUpper reports whether c is in [A-Z].
func IsUpper(c byte) bool { return admitByte(Uppercase, c) }

// IsLower reports whether c is in [a-z].
func IsLower(c byte) bool { return admitByte(Lowercase, c) }

// IsLetter reports whether c is in [a-zA-Z].
func IsLetter(c byte) bool { return IsUpper(c) || IsLower(c) }

// IsDigit reports whether c is in [0-9].
func IsDigit(c byte) bool { return admitByte(Numeric, c) }

// IsAlphanumeric reports whether every byte of str is a letter or a digit.
func IsAlphanumeric(str string) bool {
	for i := 0; i < len(str); i++ {
		if !IsLetter(str[i]) && !IsDigit(str[i]) {
			return false
		}
	}

	return true
}

// IsUpperString reports whether every byte of str is in [A-Z].
// The empty string qualifies.
func IsUpperString(str string) bool { return admitString(Uppercase, str) }

// IsLowerString reports whether every byte of str is in [a-z].
// The empty string qualifies.
func IsLowerString(str string) bool { return admitString(Lowercase, str) }

func admitString(b bound.Bound[int8], str string) bool {
	for i := 0; i < len(str); i++ {
		if !admitByte(b, str[i]) {
			return false
		}
	}

	return true
}

// admitByte checks c against an ASCII bound; bytes above 127 never match.
func admitByte(b bound.Bound[int8], c byte) bool {
	return c <= 127 && b.Admit(int8(c))
}
