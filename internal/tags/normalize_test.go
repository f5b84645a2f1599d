package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already normalized", raw: "04A3B2C1", want: "04A3B2C1"},
		{name: "lower case", raw: "04a3b2c1", want: "04A3B2C1"},
		{name: "inner spaces", raw: "04 a3 b2 c1", want: "04A3B2C1"},
		{name: "tabs and newlines", raw: "\t04a3\nb2c1\r\n", want: "04A3B2C1"},
		{name: "hyphen kept", raw: " ab-12 ", want: "AB-12"},
		{name: "colon kept", raw: "ab:12", want: "AB:12"},
		{name: "only whitespace", raw: " \t ", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, raw := range []string{" ab-12 ", "04 a3 b2 c1", "x y:z"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalize_WhitespaceAndCaseVariantsCollide(t *testing.T) {
	variants := []string{"ab12", "AB12", " a b 1 2 ", "Ab\t12"}
	for _, v := range variants {
		assert.Equal(t, "AB12", Normalize(v), v)
	}
}

func TestNormalize_HyphenIsSignificant(t *testing.T) {
	assert.NotEqual(t, Normalize("ab12"), Normalize(" ab-12 "))
}

func TestNormalizer_StripSeparators(t *testing.T) {
	n := NewNormalizer(true)

	assert.Equal(t, "AB12", n.Normalize(" ab-12 "))
	assert.Equal(t, "04A3B2C1", n.Normalize("04:a3:b2:c1"))
	assert.Equal(t, "04A3B2C1", n.Normalize("04.A3.B2.C1"))
	assert.Equal(t, n.Normalize("ab12"), n.Normalize("a-b 1.2"))
}
