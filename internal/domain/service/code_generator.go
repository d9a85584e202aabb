package service

// CodeGenerator produces the one-time codes used for account activation and
// password reset. Codes must come from a cryptographically secure source.
type CodeGenerator interface {
	// Generate returns a random alphanumeric code.
	Generate() (string, error)
}
