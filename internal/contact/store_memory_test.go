package contact

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"leadgate/pkg/domain"
	"leadgate/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) newSubmission(urgency domain.Urgency, area string) domain.Submission {
	id, err := s.store.NextID(context.Background())
	s.Require().NoError(err)
	return domain.Submission{
		ID:        id,
		FullName:  "Maria Silva",
		Urgency:   urgency,
		LegalArea: area,
		Protocol:  fmt.Sprintf("PAN-1700000000000-%04d", id),
	}
}

func (s *InMemoryStoreSuite) TestIDAllocation() {
	ctx := context.Background()

	first, err := s.store.NextID(ctx)
	s.Require().NoError(err)
	second, err := s.store.NextID(ctx)
	s.Require().NoError(err)

	s.Equal(int64(1), first)
	s.Equal(int64(2), second)
	s.Greater(second, first)
}

func (s *InMemoryStoreSuite) TestInsertAndLookup() {
	ctx := context.Background()
	sub := s.newSubmission(domain.UrgencyHigh, "Direito Civil")
	s.Require().NoError(s.store.Insert(ctx, sub))

	s.Run("by id", func() {
		found, err := s.store.GetByID(ctx, sub.ID)
		s.Require().NoError(err)
		s.Equal(sub, found)
	})

	s.Run("by protocol", func() {
		found, err := s.store.GetByProtocol(ctx, sub.Protocol)
		s.Require().NoError(err)
		s.Equal(sub.ID, found.ID)
	})

	s.Run("absent id is ErrNotFound", func() {
		_, err := s.store.GetByID(ctx, 999)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("absent protocol is ErrNotFound", func() {
		_, err := s.store.GetByProtocol(ctx, "PAN-0-0000")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestInsertConflicts() {
	ctx := context.Background()
	sub := s.newSubmission(domain.UrgencyLow, "Trabalhista")
	s.Require().NoError(s.store.Insert(ctx, sub))

	s.Run("duplicate id rejected", func() {
		dup := sub
		dup.Protocol = "PAN-1700000000001-0001"
		s.Require().ErrorIs(s.store.Insert(ctx, dup), sentinel.ErrConflict)
	})

	s.Run("duplicate protocol rejected", func() {
		dup := s.newSubmission(domain.UrgencyLow, "Trabalhista")
		dup.Protocol = sub.Protocol
		s.Require().ErrorIs(s.store.Insert(ctx, dup), sentinel.ErrConflict)
	})
}

func (s *InMemoryStoreSuite) TestFiltersAndCount() {
	ctx := context.Background()
	s.Require().NoError(s.store.Insert(ctx, s.newSubmission(domain.UrgencyHigh, "Direito Civil")))
	s.Require().NoError(s.store.Insert(ctx, s.newSubmission(domain.UrgencyHigh, "Trabalhista")))
	s.Require().NoError(s.store.Insert(ctx, s.newSubmission(domain.UrgencyLow, "Direito Civil")))

	all, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal(int64(1), all[0].ID, "list is ordered by id")

	high, err := s.store.ListByUrgency(ctx, domain.UrgencyHigh)
	s.Require().NoError(err)
	s.Len(high, 2)

	civil, err := s.store.ListByArea(ctx, "Direito Civil")
	s.Require().NoError(err)
	s.Len(civil, 2)

	none, err := s.store.ListByUrgency(ctx, domain.UrgencyEmergency)
	s.Require().NoError(err)
	s.Empty(none)

	count, err := s.store.Count(ctx)
	s.Require().NoError(err)
	s.Equal(3, count)
}

func (s *InMemoryStoreSuite) TestReset() {
	ctx := context.Background()
	s.Require().NoError(s.store.Insert(ctx, s.newSubmission(domain.UrgencyMedium, "Tributário")))

	s.store.Reset()

	count, err := s.store.Count(ctx)
	s.Require().NoError(err)
	s.Zero(count)

	id, err := s.store.NextID(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), id, "counter rewinds to the start")
}
