// Package contact implements the per-namespace contact record: a canonical
// phone number plus a change counter, publicly readable and mutated only by
// the administrator.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/andestack/contactline/internal/phone"
	"github.com/andestack/contactline/internal/record"
	"github.com/andestack/contactline/pkg/logging"
)

// ReadResult is what the public read reports. Degraded means the store was
// unreachable and the values are configured fallbacks, not stored state.
type ReadResult struct {
	Phone       string
	ChangeCount int
	Degraded    bool
}

// UpdateResult reports the outcome of a successful update.
type UpdateResult struct {
	Phone       string
	ChangeCount int
}

// Service implements the record operations over the store. A nil store means
// "not configured": reads degrade to defaults, mutations fail with
// ErrStoreUnavailable.
type Service struct {
	store  record.Store
	logger *logging.Logger
	tracer trace.Tracer
}

// NewService creates the contact service.
func NewService(store record.Store, logger *logging.Logger, tracer trace.Tracer) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if tracer == nil {
		tracer = otel.Tracer("contactline.internal.contact")
	}
	return &Service{store: store, logger: logger, tracer: tracer}
}

// Read returns the record for ns. Absent values fall back to defaultPhone
// and a zero counter; so does any store failure, because the public read
// path must stay available no matter what.
func (s *Service) Read(ctx context.Context, ns, defaultPhone string) ReadResult {
	ctx, span := s.tracer.Start(ctx, "contact.read")
	defer span.End()

	if s.store == nil {
		return ReadResult{Phone: defaultPhone, Degraded: true}
	}

	phoneVal, phoneErr := s.store.Get(ctx, record.PhoneKey(ns))
	countVal, countErr := s.store.Get(ctx, record.ChangeCountKey(ns))
	if storeFailed(phoneErr) || storeFailed(countErr) {
		err := phoneErr
		if !storeFailed(err) {
			err = countErr
		}
		span.RecordError(err)
		s.logger.Warn("record store unavailable on read, serving defaults",
			"namespace", ns,
			"error", err,
		)
		return ReadResult{Phone: defaultPhone, Degraded: true}
	}

	res := ReadResult{Phone: defaultPhone}
	if phoneErr == nil && phoneVal != "" {
		res.Phone = phoneVal
	}
	if countErr == nil {
		res.ChangeCount = parseCount(countVal)
	}
	return res
}

// Update normalizes raw, overwrites the namespace's number and bumps the
// counter. The counter is read, incremented and written back without any
// locking: two concurrent updates may lose an increment. That is accepted
// for this record's write rate.
func (s *Service) Update(ctx context.Context, ns, raw string) (UpdateResult, error) {
	ctx, span := s.tracer.Start(ctx, "contact.update")
	defer span.End()

	canonical, err := phone.Normalize(raw)
	if err != nil {
		span.RecordError(err)
		return UpdateResult{}, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if !phone.IsCanonical(canonical) {
		// Normalize guarantees this shape; a violation means the normalizer
		// regressed, and the value must never be persisted.
		err := fmt.Errorf("%w: normalizer produced %q", ErrInvalidNumber, canonical)
		span.RecordError(err)
		s.logger.Error("normalized phone failed canonical check",
			"namespace", ns,
			"normalized", canonical,
		)
		return UpdateResult{}, err
	}

	if s.store == nil {
		return UpdateResult{}, fmt.Errorf("%w: store not configured", ErrStoreUnavailable)
	}

	if err := s.store.Set(ctx, record.PhoneKey(ns), canonical); err != nil {
		span.RecordError(err)
		return UpdateResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	current, err := s.store.Get(ctx, record.ChangeCountKey(ns))
	if storeFailed(err) {
		span.RecordError(err)
		return UpdateResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	next := parseCount(current) + 1
	if err := s.store.Set(ctx, record.ChangeCountKey(ns), strconv.Itoa(next)); err != nil {
		span.RecordError(err)
		return UpdateResult{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("contact number updated",
		"namespace", ns,
		"change_count", next,
	)
	return UpdateResult{Phone: canonical, ChangeCount: next}, nil
}

// Reset forces the namespace's counter back to zero. The stored number is
// left untouched.
func (s *Service) Reset(ctx context.Context, ns string) error {
	ctx, span := s.tracer.Start(ctx, "contact.reset")
	defer span.End()

	if s.store == nil {
		return fmt.Errorf("%w: store not configured", ErrStoreUnavailable)
	}
	if err := s.store.Set(ctx, record.ChangeCountKey(ns), "0"); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("change counter reset", "namespace", ns)
	return nil
}

// storeFailed distinguishes a broken store from a key that was simply never
// written.
func storeFailed(err error) bool {
	return err != nil && !errors.Is(err, record.ErrNotFound)
}

// parseCount interprets the stored base-10 counter. Malformed or negative
// values count as zero.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
