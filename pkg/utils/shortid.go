package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewShortID returns a short random identifier, used for generated scenario
// preset keys.
func NewShortID() (string, error) {
	return gonanoid.Generate(shortIDAlphabet, 8)
}

// NewPassword returns a random one-time password for bootstrapped users.
func NewPassword() (string, error) {
	return gonanoid.Generate("ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789", 12)
}
