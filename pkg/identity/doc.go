// Package identity creates the session identifiers used to log in to the
// IKS identity/session subsystem.
//
// IKS itself lives on the database side; this package only produces what
// the caller is responsible for: a random session key and the login
// options around it.
//
// # Basic Usage
//
//	s, err := identity.New("470")
//	if err != nil {
//	    return err
//	}
//	res, err := s.Login(module.NewIKS(), "2810", "")
//
//	// Carry the session through a request
//	ctx = identity.Set(ctx, s)
//	s, ok := identity.Get(ctx)
//
// # Session Keys
//
// A session key is 20 bytes from crypto/rand, hex encoded to 40
// characters. IKS treats it as opaque.
package identity
