package middleware

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ tokenResolver = &tokenResolverMock{}

type tokenResolverMock struct {
	ResolveTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)

	calls struct {
		ResolveToken []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolveToken sync.RWMutex
}

func (mock *tokenResolverMock) ResolveToken(ctx context.Context, token string) (uuid.UUID, error) {
	if mock.ResolveTokenFunc == nil {
		panic("tokenResolverMock.ResolveTokenFunc: method is nil but tokenResolver.ResolveToken was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolveToken.Lock()
	mock.calls.ResolveToken = append(mock.calls.ResolveToken, callInfo)
	mock.lockResolveToken.Unlock()
	return mock.ResolveTokenFunc(ctx, token)
}

func (mock *tokenResolverMock) ResolveTokenCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolveToken.RLock()
	calls := mock.calls.ResolveToken
	mock.lockResolveToken.RUnlock()
	return calls
}
