package ctxutil

import (
	"context"
	"time"
)

// private keys to avoid collisions
type key int

const (
	keySubject key = iota
	keyEmail
	keyOpName
)

// WithSubject carries the authenticated account id through the request.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, keySubject, subject)
}

func Subject(ctx context.Context) (string, bool) {
	v := ctx.Value(keySubject)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, keyEmail, email)
}

func Email(ctx context.Context) (string, bool) {
	v := ctx.Value(keyEmail)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// WithOp names the operation for logs.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

var DefaultDBTimeout = 5 * time.Second

func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}

// WithDBTimeout caps a store call at DefaultDBTimeout, or at whatever is
// left of the parent deadline if that is shorter.
func WithDBTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		if remain := time.Until(dl); remain < DefaultDBTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultDBTimeout)
}
