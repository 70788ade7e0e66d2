package browser

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ErrResourcePool marks a pool that could not be constructed. It is fatal:
// no aggregation runs without a usable pool.
var ErrResourcePool = eris.New("browser: session pool unusable")

// DefaultPoolSize is the number of sessions kept when no size is configured.
const DefaultPoolSize = 3

// Pool holds a fixed-size set of sessions. Acquire blocks while the pool is
// exhausted, which is the service's natural backpressure; there is no
// acquire timeout beyond the caller's context. The pool never holds more
// than its configured size, though it may run below it after a session is
// discarded on a failed reset and the refill also fails.
type Pool struct {
	sessions chan Session
	factory  func() (Session, error)
	size     int
	log      *zap.Logger
}

// NewPool eagerly creates size sessions from factory. Any creation failure
// tears down the sessions built so far and returns ErrResourcePool.
func NewPool(size int, factory func() (Session, error), log *zap.Logger) (*Pool, error) {
	if size <= 0 {
		size = DefaultPoolSize
	}
	p := &Pool{
		sessions: make(chan Session, size),
		factory:  factory,
		size:     size,
		log:      log,
	}
	for i := 0; i < size; i++ {
		s, err := factory()
		if err != nil {
			p.Drain()
			return nil, eris.Wrapf(ErrResourcePool, "creating session %d of %d: %v", i+1, size, err)
		}
		p.sessions <- s
	}
	log.Info("browser pool ready", zap.Int("size", size))
	return p, nil
}

// Acquire hands out an exclusive session, blocking until one is free or the
// context is done.
func (p *Pool) Acquire(ctx context.Context) (Session, error) {
	select {
	case s := <-p.sessions:
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release resets s and returns it to the pool. A session whose reset fails
// is corrupt; it is closed instead of being pooled again and the pool
// refills from the factory on a best-effort basis.
func (p *Pool) Release(s Session) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Reset(ctx); err != nil {
		p.log.Warn("discarding session after failed reset", zap.Error(err))
		s.Close()

		fresh, ferr := p.factory()
		if ferr != nil {
			p.log.Warn("pool refill failed, running below target size", zap.Error(ferr))
			return
		}
		s = fresh
	}

	select {
	case p.sessions <- s:
	default:
		// Already at capacity; never grow past it.
		s.Close()
	}
}

// Drain closes every pooled session and empties the pool. Used at shutdown.
func (p *Pool) Drain() {
	for {
		select {
		case s := <-p.sessions:
			s.Close()
		default:
			return
		}
	}
}

// Size reports the configured maximum number of sessions.
func (p *Pool) Size() int {
	return p.size
}
