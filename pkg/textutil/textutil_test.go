package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "hello", "olleh"},
		{"empty", "", ""},
		{"single", "a", "a"},
		{"multibyte runes", "héllo", "olléh"},
		{"combining mark stays attached", "e\u0301a", "ae\u0301"},
		{"flag emoji stays whole", "ab🇯🇵", "🇯🇵ba"},
		{"zwj family stays whole", "x👨‍👩‍👧y", "y👨‍👩‍👧x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reverse(tt.in))
		})
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	for _, s := range []string{"hello world", "naïve café", "🇯🇵🇫🇷", "é̂z"} {
		assert.Equal(t, s, Reverse(Reverse(s)))
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"hello world rust", 3},
		{"hello   world  rust", 3},
		{"  leading and trailing  ", 3},
		{"", 0},
		{" \t\n ", 0},
		{"tabs\tand\nnewlines", 3},
		{"one", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.in), "CountWords(%q)", tt.in)
	}
}

func TestIsPlausibleAddress(t *testing.T) {
	assert.True(t, IsPlausibleAddress("test@example.com"))
	assert.True(t, IsPlausibleAddress(".@"))
	assert.False(t, IsPlausibleAddress("test@example"))
	assert.False(t, IsPlausibleAddress("test.example.com"))
	assert.False(t, IsPlausibleAddress(""))
}

func TestFormatGreeting(t *testing.T) {
	assert.Equal(t, "Hello Alice: welcome back", FormatGreeting("Alice", "welcome back"))
}
