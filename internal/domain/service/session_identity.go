package service

// SessionIdentity is the single place session tokens are minted. Activity
// recording injects it instead of scattering ad hoc token generation across
// call sites; a token is minted only when the client did not present one.
type SessionIdentity interface {
	// Mint returns a fresh opaque session token.
	Mint() string
}
