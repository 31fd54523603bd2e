package types

// AuthSession is what sign-in hands back. AccessToken is empty when the
// account still needs email confirmation.
type AuthSession struct {
	AccessToken string
	ExpiresIn   int
}
