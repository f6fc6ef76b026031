package utils

import "math/rand"

const inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInviteCode returns an 8-character uppercase-alphanumeric code.
// Uniqueness is not checked at generation time; the join lookup resolves
// a code to the first matching restaurant.
func GenerateInviteCode() string {
	code := make([]byte, 8)
	for i := range code {
		code[i] = inviteAlphabet[rand.Intn(len(inviteAlphabet))]
	}
	return string(code)
}
