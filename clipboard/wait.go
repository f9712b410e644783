package clipboard

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/Microsoft/lazywinapi/internal/log"
	"github.com/Microsoft/lazywinapi/internal/logfields"
	"github.com/Microsoft/lazywinapi/internal/oserror"
)

// OpenWait is like [Open] but retries while another window holds the
// clipboard, until timeout elapses or ctx is done. A timeout of 0 retries
// until ctx is done.
func OpenWait(ctx context.Context, timeout time.Duration) (*Session, error) {
	return openWait(ctx, newBackOff(timeout))
}

func openWait(ctx context.Context, b backoff.BackOff) (*Session, error) {
	var s *Session
	attempt := 0
	op := func() (err error) {
		attempt++
		s, err = Open(ctx)
		if err != nil && !isBusy(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		log.G(ctx).WithFields(logrus.Fields{
			logrus.ErrorKey:   err,
			logfields.Attempt: attempt,
			logfields.RetryIn: next,
		}).Debug("clipboard busy, retrying open")
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}
	log.G(ctx).WithField(logfields.Attempt, attempt).Trace("clipboard opened")
	return s, nil
}

// newBackOff starts in the tens of milliseconds; clipboard owners usually
// hold it only for the length of a copy.
func newBackOff(timeout time.Duration) backoff.BackOff {
	return &backoff.ExponentialBackOff{
		InitialInterval:     20 * time.Millisecond,
		RandomizationFactor: backoff.DefaultRandomizationFactor,
		Multiplier:          backoff.DefaultMultiplier,
		MaxInterval:         time.Second,
		MaxElapsedTime:      timeout,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
}

// OpenClipboard fails with access denied while another window has it open.
func isBusy(err error) bool {
	return oserror.IsAny(err, oserror.ERROR_ACCESS_DENIED, oserror.ERROR_BUSY)
}
