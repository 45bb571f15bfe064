package auth

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	IssueFunc   func(userID uuid.UUID) (string, error)
	ResolveFunc func(token string) (uuid.UUID, error)

	calls struct {
		Issue []struct {
			UserID uuid.UUID
		}
		Resolve []struct {
			Token string
		}
	}
	lockIssue   sync.RWMutex
	lockResolve sync.RWMutex
}

func (mock *tokenManagerMock) Issue(userID uuid.UUID) (string, error) {
	if mock.IssueFunc == nil {
		panic("tokenManagerMock.IssueFunc: method is nil but tokenManager.Issue was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID)
}

func (mock *tokenManagerMock) IssueCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenManagerMock) Resolve(token string) (uuid.UUID, error) {
	if mock.ResolveFunc == nil {
		panic("tokenManagerMock.ResolveFunc: method is nil but tokenManager.Resolve was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(token)
}

func (mock *tokenManagerMock) ResolveCalls() []struct {
	Token string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
