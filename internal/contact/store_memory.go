package contact

import (
	"context"
	"sort"
	"sync"

	"leadgate/pkg/domain"
	"leadgate/pkg/platform/sentinel"
)

// InMemoryStore keeps the initial implementation lightweight and testable. It
// intentionally favors clarity over performance: all state is lost on process
// restart, which is acceptable for this feature.
//
// The mutex covers the id counter and both maps, so concurrent request
// handlers cannot observe duplicate ids or partially inserted records.
type InMemoryStore struct {
	mu        sync.RWMutex
	nextID    int64
	subs      map[int64]domain.Submission
	protocols map[string]int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		subs:      make(map[int64]domain.Submission),
		protocols: make(map[string]int64),
	}
}

func (s *InMemoryStore) NextID(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID, nil
}

func (s *InMemoryStore) Insert(_ context.Context, sub domain.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[sub.ID]; ok {
		return sentinel.ErrConflict
	}
	if _, ok := s.protocols[sub.Protocol]; ok {
		// Protocol uniqueness is enforced here so GetByProtocol stays
		// unambiguous.
		return sentinel.ErrConflict
	}
	s.subs[sub.ID] = sub
	s.protocols[sub.Protocol] = sub.ID
	return nil
}

func (s *InMemoryStore) GetByID(_ context.Context, id int64) (domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.subs[id]; ok {
		return sub, nil
	}
	return domain.Submission{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) GetByProtocol(_ context.Context, protocol string) (domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.protocols[protocol]; ok {
		return s.subs[id], nil
	}
	return domain.Submission{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) List(_ context.Context) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(domain.Submission) bool { return true }), nil
}

func (s *InMemoryStore) ListByUrgency(_ context.Context, urgency domain.Urgency) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(sub domain.Submission) bool { return sub.Urgency == urgency }), nil
}

func (s *InMemoryStore) ListByArea(_ context.Context, area string) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(sub domain.Submission) bool { return sub.LegalArea == area }), nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs), nil
}

// Reset clears all records and rewinds the id counter. Test isolation only;
// it is never reachable from the request path.
func (s *InMemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = 0
	s.subs = make(map[int64]domain.Submission)
	s.protocols = make(map[string]int64)
}

// collect returns matching records ordered by id. Callers must hold the lock.
func (s *InMemoryStore) collect(match func(domain.Submission) bool) []domain.Submission {
	out := make([]domain.Submission, 0, len(s.subs))
	for _, sub := range s.subs {
		if match(sub) {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
