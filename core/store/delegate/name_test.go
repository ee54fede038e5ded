package delegate

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestValidateName_Boundaries(t *testing.T) {
	require.False(t, ValidateName([]byte("ab")))
	require.True(t, ValidateName([]byte("abc")))
	require.True(t, ValidateName([]byte("abcdefghijklmnop"))) // 16 chars
	require.False(t, ValidateName([]byte("abcdefghijklmnopq")))
}

func TestValidateName_Alphabet(t *testing.T) {
	require.True(t, ValidateName([]byte("go_sem_123")))
	require.False(t, ValidateName([]byte("Go_SEM")))
	require.False(t, ValidateName([]byte("has space")))
	require.False(t, ValidateName([]byte("has-dash")))
	require.False(t, ValidateName([]byte("emoji🙂")))
}

func TestValidateName_RoundTrip(t *testing.T) {
	alphabet := []byte("abcdefghijklmnopqrstuvwxyz0123456789_")

	f := func(seed uint32, n uint8) bool {
		length := int(n%14) + MinNameLength // [3, 16]
		name := make([]byte, length)

		for i := range name {
			seed = seed*1103515245 + 12345
			name[i] = alphabet[int(seed)%len(alphabet)]
		}

		return ValidateName(name)
	}

	require.NoError(t, quick.Check(f, nil))
}
