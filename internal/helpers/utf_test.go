package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUTF16RoundTrip(t *testing.T) {
	for _, text := range []string{"", "foo", "fooBar", "プロップ", "a\U0001F355b"} {
		require.Equal(t, text, UTF16ToString(StringToUTF16(text)))
		require.True(t, UTF16EqualsString(StringToUTF16(text), text))
	}
}

func TestUTF16EqualsString(t *testing.T) {
	require.False(t, UTF16EqualsString(StringToUTF16("foo"), "bar"))
	require.False(t, UTF16EqualsString(StringToUTF16("foo"), "fo"))
	require.True(t, UTF16EqualsUTF16(StringToUTF16("foo"), StringToUTF16("foo")))
	require.False(t, UTF16EqualsUTF16(StringToUTF16("foo"), StringToUTF16("fooo")))
}
