package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSha256Factory_New(t *testing.T) {
	factory := NewHashFactory(Sha256)
	require.NotNil(t, factory.New())
}

func TestSha3Factory_New(t *testing.T) {
	factory := NewHashFactory(Sha3_224)
	require.NotNil(t, factory.New())
}
