package auth

// SigningKeySize is the fixed length of the HMAC-SHA256 signing key.
const SigningKeySize = 32

// DeriveSigningKey turns the configured secret into the 32-byte
// symmetric signing key. Secrets shorter than 32 bytes are right-padded
// with ASCII '0'; longer secrets are truncated to their first 32 bytes.
// The derivation is pure: the same secret always yields the same key.
func DeriveSigningKey(secret string) []byte {
	key := make([]byte, SigningKeySize)
	copied := copy(key, secret)
	for i := copied; i < SigningKeySize; i++ {
		key[i] = '0'
	}
	return key
}
