package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RyanLee0396/SVDiscordBot/internal/metrics"
)

// Policy bounds how a failed transaction is retried.
type Policy struct {
	MaxAttempts     uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultPolicy is used for any zero field of a caller supplied Policy.
var DefaultPolicy = Policy{
	MaxAttempts:     4,
	InitialInterval: 50 * time.Millisecond,
	MaxInterval:     time.Second,
}

// Transactor runs functions inside database transactions, retrying the whole
// transaction when it fails with a transient error.
type Transactor struct {
	db     *gorm.DB
	policy Policy
	log    *zap.Logger
}

// NewTransactor creates a Transactor on top of a pooled gorm handle.
func NewTransactor(db *gorm.DB, policy Policy, log *zap.Logger) *Transactor {
	if policy.MaxAttempts == 0 {
		policy.MaxAttempts = DefaultPolicy.MaxAttempts
	}
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = DefaultPolicy.InitialInterval
	}
	if policy.MaxInterval <= 0 {
		policy.MaxInterval = DefaultPolicy.MaxInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Transactor{db: db, policy: policy, log: log}
}

// DB returns the un-transacted handle for plain reads.
func (t *Transactor) DB(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx)
}

// Dialect returns the name of the underlying gorm dialector.
func (t *Transactor) Dialect() string {
	return t.db.Dialector.Name()
}

// Do runs fn in a transaction. fn's error rolls the transaction back and is
// returned unchanged, unless it is transient: then the transaction is retried
// with exponential backoff and, once attempts run out, ErrUnavailable is
// returned wrapping the last failure.
func (t *Transactor) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = t.policy.InitialInterval
	b.MaxInterval = t.policy.MaxInterval

	operation := func() (struct{}, error) {
		err := t.db.WithContext(ctx).Transaction(fn)
		if err != nil && !IsRetryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}
	notify := func(err error, next time.Duration) {
		metrics.RecordTxRetry()
		t.log.Debug("retrying transaction", zap.Error(err), zap.Duration("backoff", next))
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(t.policy.MaxAttempts),
		backoff.WithNotify(notify),
	)
	if err == nil {
		return nil
	}
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	if IsRetryable(err) {
		metrics.RecordTxUnavailable()
		t.log.Warn("transaction retries exhausted", zap.Error(err), zap.Uint("attempts", t.policy.MaxAttempts))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
