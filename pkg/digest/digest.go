package digest

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Digester is a one-way password transform. Stored digests are compared via
// Verify instead of keeping plaintext around.
type Digester interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// SHA256 digests passwords with a single unsalted SHA-256 round, hex
// encoded. This matches the digests of existing deployments, which is the
// only reason it is the default: without a per-user salt it is NOT a secure
// password-storage scheme. New deployments should set PASSWORD_SCHEME=bcrypt.
type SHA256 struct{}

func (SHA256) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (d SHA256) Verify(password, encoded string) bool {
	computed, _ := d.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(encoded)) == 1
}

// Bcrypt digests passwords with bcrypt. Cost 0 means bcrypt.DefaultCost.
type Bcrypt struct {
	Cost int
}

func (d Bcrypt) Hash(password string) (string, error) {
	cost := d.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (Bcrypt) Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}

// FromScheme maps a configured scheme name to a Digester. Unknown values
// fall back to the legacy SHA-256 scheme.
func FromScheme(scheme string) Digester {
	if scheme == "bcrypt" {
		return Bcrypt{}
	}
	return SHA256{}
}
