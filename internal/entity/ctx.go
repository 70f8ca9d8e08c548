package entity

import "context"

type CtxKey int

const (
	CtxKeyUser CtxKey = iota
	CtxKeyJWT
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromCtx returns the user from context or ErrUnauthenticated.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}

func CtxWithJWT(ctx context.Context, jwt string) context.Context {
	return context.WithValue(ctx, CtxKeyJWT, jwt)
}

// JWTFromCtx returns the JWT from context or an empty string.
func JWTFromCtx(ctx context.Context) string {
	jwt, ok := ctx.Value(CtxKeyJWT).(string)
	if !ok {
		return ""
	}

	return jwt
}
