// Package codegen implements the one-time code generator used for account
// activation and password reset.
package codegen

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"craftapp/internal/domain/service"
)

const (
	// codeAlphabet matches the codes sent in activation and reset emails:
	// uppercase letters and digits, easy to read back from a mail client.
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

type codeGenerator struct {
	length int
}

// NewCodeGenerator returns a generator producing fixed-length alphanumeric codes.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{length: codeLength}
}

// Generate draws each character from crypto/rand.
func (g *codeGenerator) Generate() (string, error) {
	code := make([]byte, g.length)
	max := big.NewInt(int64(len(codeAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw random code character")
		}
		code[i] = codeAlphabet[n.Int64()]
	}

	return string(code), nil
}
