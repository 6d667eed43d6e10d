package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Session.
	Key ContextKey = "session"

	// SessionKeyBytes is the number of random bytes in a session key.
	SessionKeyBytes = 20
)

// randReader is swapped in tests.
var randReader io.Reader = rand.Reader

// Session is an IKS session opened by this process.
type Session struct {
	// Key is the hex-encoded session identifier handed to IKS.
	Key string
	// UID is the user the session was opened for.
	UID string
	// StartedAt is when the key was generated.
	StartedAt time.Time
}

// NewSessionKey returns SessionKeyBytes random bytes, hex encoded.
func NewSessionKey() (string, error) {
	b := make([]byte, SessionKeyBytes)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", fmt.Errorf("failed to generate session key: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// New creates a session for uid with a fresh key.
func New(uid string) (*Session, error) {
	key, err := NewSessionKey()
	if err != nil {
		return nil, err
	}
	return &Session{
		Key:       key,
		UID:       uid,
		StartedAt: time.Now(),
	}, nil
}

// LoginOptions builds the options for IKS.Login. pass2 may be empty.
func (s *Session) LoginOptions(pass1, pass2 string) mumps.LoginOptions {
	return mumps.LoginOptions{
		Key:   s.Key,
		UID:   s.UID,
		Pass1: pass1,
		Pass2: pass2,
	}
}

// Login logs the session in through iks.
func (s *Session) Login(iks mumps.IKS, pass1, pass2 string) (mumps.Result, error) {
	return iks.Login(s.LoginOptions(pass1, pass2))
}

// NewLogin is New followed by LoginOptions.
func NewLogin(uid, pass1, pass2 string) (mumps.LoginOptions, error) {
	s, err := New(uid)
	if err != nil {
		return mumps.LoginOptions{}, err
	}
	return s.LoginOptions(pass1, pass2), nil
}

// Get retrieves Session from context.
func Get(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(Key).(*Session)
	return s, ok
}

// Set stores Session in context.
func Set(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, Key, s)
}
