package stdlib

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/quest-lang/quest/internal/object"
)

// Crypto builds the std/crypto module covering spec.md §1's "crypto" entry
// with the standard library (crypto/sha256, crypto/hmac) — no pack
// dependency offers hashing/HMAC more directly than Go's own crypto tree.
func Crypto() *object.Module {
	exports := map[string]object.Value{
		"sha256": fn("crypto.sha256", func(args []object.Value) (object.Value, error) {
			data, err := bytesOrStrArg("crypto.sha256", args)
			if err != nil {
				return nil, err
			}
			sum := sha256.Sum256(data)
			return &object.Str{Value: hex.EncodeToString(sum[:])}, nil
		}),
		"hmac_sha256": fn("crypto.hmac_sha256", func(args []object.Value) (object.Value, error) {
			if len(args) != 2 {
				return nil, errArgs("crypto.hmac_sha256", 2, len(args))
			}
			key, err := bytesOrStrArg("crypto.hmac_sha256", args[:1])
			if err != nil {
				return nil, err
			}
			data, err := bytesOrStrArg("crypto.hmac_sha256", args[1:])
			if err != nil {
				return nil, err
			}
			mac := hmac.New(sha256.New, key)
			mac.Write(data)
			return &object.Str{Value: hex.EncodeToString(mac.Sum(nil))}, nil
		}),
	}
	return &object.Module{Name: "crypto", Exports: exports}
}

func bytesOrStrArg(name string, args []object.Value) ([]byte, error) {
	if len(args) != 1 {
		return nil, errArgs(name, 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Str:
		return []byte(v.Value), nil
	case *object.Bytes:
		return v.Get(), nil
	default:
		return nil, errType(name, "Str or Bytes", args[0])
	}
}
