package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
// Use cases receive a factory inside TransactionManager.Execute and must use
// it for every read and write that has to be atomic.
type RepositoryFactory interface {
	UserRepo() UserRepository
	CredentialRepo() CredentialRepository
	RefreshTokenRepo() RefreshTokenRepository
	AttendeeRepo() AttendeeRepository
	ActivityRepo() ActivityRepository
	FollowingRepo() FollowingRepository
	PhotoRepo() PhotoRepository
}

// TransactionManager runs a function within a single database transaction.
// The transaction is the sole serialization point for the refresh token
// working set: no in-process lock is ever held across the store calls, and a
// cancelled request rolls back with no partial state observable.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
