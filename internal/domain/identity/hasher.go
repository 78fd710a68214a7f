package identity

// PasswordHasher abstracts the credential hashing primitive so the domain and
// application layers never depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash derives an encoded hash from a plaintext password. Empty
	// plaintext is an error.
	Hash(password string) (string, error)
	// Verify reports whether the plaintext matches the encoded hash.
	// Malformed encodings fail closed.
	Verify(password, encodedHash string) bool
}
