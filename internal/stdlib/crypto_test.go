package stdlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestCryptoSha256MatchesKnownVector(t *testing.T) {
	mod := stdlib.Crypto()
	result := callBuiltin(t, mod, "sha256", &object.Str{Value: "abc"})
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", result.(*object.Str).Value)
}

func TestCryptoHmacSha256IsDeterministic(t *testing.T) {
	mod := stdlib.Crypto()
	a := callBuiltin(t, mod, "hmac_sha256", &object.Str{Value: "key"}, &object.Str{Value: "message"})
	b := callBuiltin(t, mod, "hmac_sha256", &object.Str{Value: "key"}, &object.Str{Value: "message"})
	assert.Equal(t, a.(*object.Str).Value, b.(*object.Str).Value)

	c := callBuiltin(t, mod, "hmac_sha256", &object.Str{Value: "different-key"}, &object.Str{Value: "message"})
	assert.NotEqual(t, a.(*object.Str).Value, c.(*object.Str).Value)
}
