package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/fields"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/notification"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type stubCandidates struct {
	profiles map[uuid.UUID]candidate.Profile
	records  map[uuid.UUID]fields.Record
	err      error
	patches  []fields.Record
}

func (s *stubCandidates) GetByID(_ context.Context, id uuid.UUID) (candidate.Profile, error) {
	if s.err != nil {
		return candidate.Profile{}, s.err
	}
	p, ok := s.profiles[id]
	if !ok {
		return candidate.Profile{}, repository.ErrCandidateNotFound
	}
	return p, nil
}

// Upsert merges key by key, like the JSONB concatenation the repository runs.
func (s *stubCandidates) Upsert(_ context.Context, id uuid.UUID, patch fields.Record) (candidate.Profile, error) {
	s.patches = append(s.patches, patch)
	if s.err != nil {
		return candidate.Profile{}, s.err
	}
	if s.records == nil {
		s.records = map[uuid.UUID]fields.Record{}
	}
	if s.profiles == nil {
		s.profiles = map[uuid.UUID]candidate.Profile{}
	}
	rec := s.records[id]
	if rec == nil {
		rec = fields.Record{}
	}
	for k, v := range patch {
		rec[k] = v
	}
	s.records[id] = rec
	s.profiles[id] = candidate.FromRecord(id, rec)
	return s.profiles[id], nil
}

type stubJobs struct {
	mu       sync.Mutex
	items    map[uuid.UUID]job.Posting
	order    []uuid.UUID
	err      error
	listHits int
}

func newStubJobs(items ...job.Posting) *stubJobs {
	s := &stubJobs{items: map[uuid.UUID]job.Posting{}}
	for _, it := range items {
		s.items[it.ID] = it
		s.order = append(s.order, it.ID)
	}
	return s
}

func (s *stubJobs) ListAll(context.Context) ([]job.Posting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listHits++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]job.Posting, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *stubJobs) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (s *stubJobs) Create(_ context.Context, p job.Posting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[p.ID] = p
	s.order = append(s.order, p.ID)
	return nil
}

func (s *stubJobs) Update(_ context.Context, p job.Posting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[p.ID]; !ok {
		return repository.ErrJobNotFound
	}
	s.items[p.ID] = p
	return nil
}

func (s *stubJobs) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repository.ErrJobNotFound
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// stubNotifications is an in-memory NotificationRepository.
type stubNotifications struct {
	mu        sync.Mutex
	items     []notification.Notification
	now       func() time.Time
	createErr error
	listErr   error
}

func newStubNotifications() *stubNotifications {
	return &stubNotifications{now: time.Now}
}

func (s *stubNotifications) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return notification.Notification{}, s.createErr
	}
	n.CreatedAt = s.now()
	s.items = append(s.items, n)
	return n, nil
}

func (s *stubNotifications) filter(candidateID uuid.UUID, keep func(notification.Notification) bool) []notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notification.Notification, 0)
	for _, n := range s.items {
		if n.CandidateID == candidateID && keep(n) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *stubNotifications) List(_ context.Context, candidateID uuid.UUID) ([]notification.Notification, error) {
	return s.filter(candidateID, func(notification.Notification) bool { return true }), nil
}

func (s *stubNotifications) ListByType(_ context.Context, candidateID uuid.UUID, typ notification.Type) ([]notification.Notification, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.filter(candidateID, func(n notification.Notification) bool { return n.Type == typ }), nil
}

func (s *stubNotifications) Recent(ctx context.Context, candidateID uuid.UUID, limit int) ([]notification.Notification, error) {
	all, _ := s.List(ctx, candidateID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *stubNotifications) UnreadCount(_ context.Context, candidateID uuid.UUID) (int, error) {
	return len(s.filter(candidateID, func(n notification.Notification) bool { return !n.IsRead })), nil
}

func (s *stubNotifications) MarkAsRead(_ context.Context, candidateID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].CandidateID == candidateID && s.items[i].ID == id {
			s.items[i].IsRead = true
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (s *stubNotifications) MarkAllAsRead(_ context.Context, candidateID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.items {
		if s.items[i].CandidateID == candidateID && !s.items[i].IsRead {
			s.items[i].IsRead = true
			n++
		}
	}
	return n, nil
}

func (s *stubNotifications) Delete(_ context.Context, candidateID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].CandidateID == candidateID && s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (s *stubNotifications) ClearAll(_ context.Context, candidateID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	var n int64
	for _, it := range s.items {
		if it.CandidateID == candidateID {
			n++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return n, nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	got  []notification.Notification
	fail bool
}

func (p *recordingPublisher) Publish(_ context.Context, n notification.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, n)
	if p.fail {
		return errors.New("publish failed")
	}
	return nil
}

// memCache is an in-memory JobPoolCache.
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	enabled bool
	deletes []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}, enabled: true}
}

func (c *memCache) Available() bool { return c.enabled }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.deletes = append(c.deletes, key)
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = []byte(value)
	return true, nil
}
