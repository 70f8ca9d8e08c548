package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

type mutationState int8

const (
	mutationPending mutationState = iota
	mutationConfirmed
	mutationRolledBack
)

// pendingMutation tracks one optimistic read-flag flip until the store
// confirms or rejects it. The three states let a delta survive a snapshot
// replace: pending and confirmed flips are re-applied on top of incoming
// snapshots until the store's own data reflects them.
type pendingMutation struct {
	prev  bool
	state mutationState
}

// Session is the local state reconciler for one user. It exclusively owns the
// canonical snapshot; everything else reads it or requests changes through it.
type Session struct {
	user     entity.User
	fetcher  *Fetcher
	store    Store
	producer Producer
	mailer   Mailer
	log      *slog.Logger

	mu           sync.Mutex
	snapshot     entity.Snapshot
	startedGen   uint64
	committedGen uint64
	syncing      bool
	followUp     bool
	pending      map[uuid.UUID]*pendingMutation
	alerted      map[uuid.UUID]struct{}
	feeds        map[chan entity.Snapshot]struct{}
	lastSeen     time.Time
	closed       bool
}

func newSession(
	user entity.User,
	fetcher *Fetcher,
	store Store,
	producer Producer,
	mailer Mailer,
	log *slog.Logger,
) *Session {
	return &Session{
		user:     user,
		fetcher:  fetcher,
		store:    store,
		producer: producer,
		mailer:   mailer,
		log:      log.With("user_id", user.ID),
		pending:  make(map[uuid.UUID]*pendingMutation),
		alerted:  make(map[uuid.UUID]struct{}),
		feeds:    make(map[chan entity.Snapshot]struct{}),
		lastSeen: time.Now(),
	}
}

func (s *Session) Snapshot() entity.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) seenBefore(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastSeen.Before(cutoff)
}

// Refresh runs one synchronize pass and commits its result, unless a newer
// pass has committed in the meantime.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.ErrSessionClosed
	}

	s.startedGen++
	gen := s.startedGen
	s.mu.Unlock()

	snap, err := s.fetcher.Synchronize(ctx, s.user.ID)

	return s.complete(gen, snap, err)
}

// trigger requests a re-synchronize from a change event. A trigger arriving
// while a fetch is in flight schedules exactly one follow-up fetch, never a
// queue.
func (s *Session) trigger() {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	if s.syncing {
		s.followUp = true
		s.mu.Unlock()

		return
	}

	s.syncing = true
	s.mu.Unlock()

	go s.syncLoop()
}

func (s *Session) syncLoop() {
	ctx := context.Background()

	for {
		s.mu.Lock()
		if s.closed {
			s.syncing = false
			s.mu.Unlock()

			return
		}

		s.startedGen++
		gen := s.startedGen
		s.mu.Unlock()

		snap, err := s.fetcher.Synchronize(ctx, s.user.ID)

		err = s.complete(gen, snap, err)
		if err != nil {
			s.log.Error("background synchronize failed", "error", err)
		}

		s.mu.Lock()
		if s.followUp && !s.closed {
			s.followUp = false
			s.mu.Unlock()

			continue
		}

		s.syncing = false
		s.mu.Unlock()

		return
	}
}

// complete commits the result of a synchronize pass. Stale generations are
// discarded: a pass that started earlier must never overwrite the snapshot of
// one that started later, regardless of completion order. A fetch error keeps
// the last-good snapshot in place.
func (s *Session) complete(gen uint64, snap entity.Snapshot, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return entity.ErrSessionClosed
	}

	if err != nil {
		return err
	}

	if gen <= s.committedGen {
		return nil
	}

	s.reapplyPending(&snap)

	snap.Generation = gen
	snap.SyncedAt = time.Now()
	s.snapshot = snap
	s.committedGen = gen

	s.alertUrgent()
	s.broadcast()

	return nil
}

// reapplyPending overlays outstanding optimistic deltas on an incoming
// snapshot so an in-flight fetch that started before a mutation cannot
// silently undo it. A confirmed delta is retired once the store's data shows
// the flip.
func (s *Session) reapplyPending(snap *entity.Snapshot) {
	if len(s.pending) == 0 {
		return
	}

	for i := range snap.Notifications {
		n := &snap.Notifications[i]

		p, ok := s.pending[n.ID]
		if !ok {
			continue
		}

		switch p.state {
		case mutationPending:
			n.Read = true
		case mutationConfirmed:
			if n.Read {
				delete(s.pending, n.ID)
			} else {
				n.Read = true
			}
		case mutationRolledBack:
			delete(s.pending, n.ID)
		}
	}
}

// MarkRead optimistically flips a notification to read and confirms the flip
// with the store. On store failure the flag rolls back to its prior value and
// a WriteError is returned. Calling it again for an already-read id is a
// no-op; a call racing an in-flight flip of the same id is absorbed.
func (s *Session) MarkRead(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return entity.ErrSessionClosed
	}

	n := s.snapshot.Notification(id)
	if n == nil {
		s.mu.Unlock()
		return entity.ErrNotFound
	}

	if p, ok := s.pending[id]; ok && p.state == mutationPending {
		s.mu.Unlock()
		return nil
	}

	if n.Read {
		s.mu.Unlock()
		return nil
	}

	s.pending[id] = &pendingMutation{prev: n.Read, state: mutationPending}
	s.setRead(id, true)
	s.broadcast()
	s.mu.Unlock()

	err := s.store.MarkNotificationRead(ctx, id, s.user.ID)

	s.mu.Lock()

	p := s.pending[id]

	if err != nil {
		if p != nil && p.state == mutationPending {
			p.state = mutationRolledBack
			s.setRead(id, p.prev)
			delete(s.pending, id)
			s.broadcast()
		}

		s.mu.Unlock()

		return &entity.WriteError{Op: "mark_read", ID: id, Err: err}
	}

	if p != nil {
		p.state = mutationConfirmed
	}
	s.mu.Unlock()

	s.producer.NotificationsChanged(ctx, s.user.ID, []uuid.UUID{id})

	return nil
}

// MarkAllRead flips every currently-unread notification in one batched scoped
// write. Ids the store reports as not updated roll back individually; the
// rest stay read.
func (s *Session) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return entity.ErrSessionClosed
	}

	var ids []uuid.UUID

	ns := slices.Clone(s.snapshot.Notifications)
	for i := range ns {
		if ns[i].Read {
			continue
		}

		if p, ok := s.pending[ns[i].ID]; ok && p.state == mutationPending {
			continue
		}

		s.pending[ns[i].ID] = &pendingMutation{prev: false, state: mutationPending}
		ns[i].Read = true
		ids = append(ids, ns[i].ID)
	}

	if len(ids) == 0 {
		s.mu.Unlock()
		return nil
	}

	s.snapshot.Notifications = ns
	s.broadcast()
	s.mu.Unlock()

	updated, err := s.store.MarkNotificationsRead(ctx, ids, s.user.ID)

	s.mu.Lock()

	if err != nil {
		for _, id := range ids {
			s.rollback(id)
		}

		s.broadcast()
		s.mu.Unlock()

		return &entity.WriteError{Op: "mark_all_read", Err: err}
	}

	confirmed := make(map[uuid.UUID]struct{}, len(updated))
	for _, id := range updated {
		confirmed[id] = struct{}{}
	}

	var failed int

	for _, id := range ids {
		p := s.pending[id]
		if p == nil {
			continue
		}

		if _, ok := confirmed[id]; ok {
			p.state = mutationConfirmed
			continue
		}

		s.rollback(id)
		failed++
	}

	if failed > 0 {
		s.broadcast()
		s.mu.Unlock()

		return &entity.WriteError{
			Op:  "mark_all_read",
			Err: fmt.Errorf("%d of %d notifications not updated", failed, len(ids)),
		}
	}

	s.mu.Unlock()

	s.producer.NotificationsChanged(ctx, s.user.ID, updated)

	return nil
}

// rollback restores one optimistic flip. Caller holds the lock.
func (s *Session) rollback(id uuid.UUID) {
	p := s.pending[id]
	if p == nil || p.state != mutationPending {
		return
	}

	p.state = mutationRolledBack
	s.setRead(id, p.prev)
	delete(s.pending, id)
}

// setRead flips one read flag via copy-on-write, so snapshots already handed
// to readers stay immutable. Caller holds the lock.
func (s *Session) setRead(id uuid.UUID, read bool) {
	ns := slices.Clone(s.snapshot.Notifications)

	for i := range ns {
		if ns[i].ID == id {
			ns[i].Read = read
			s.snapshot.Notifications = ns

			return
		}
	}
}

// subscribeFeed registers a live feed primed with the current snapshot. A slow
// consumer only ever lags by one snapshot: newer states replace undelivered
// ones.
func (s *Session) subscribeFeed() (chan entity.Snapshot, func()) {
	ch := make(chan entity.Snapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)

		return ch, func() {}
	}

	s.feeds[ch] = struct{}{}
	ch <- s.snapshot
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.feeds[ch]; ok {
			delete(s.feeds, ch)
			close(ch)
		}
		s.mu.Unlock()
	}

	return ch, cancel
}

// broadcast pushes the current snapshot to every feed. Caller holds the lock.
func (s *Session) broadcast() {
	for ch := range s.feeds {
		select {
		case ch <- s.snapshot:
		default:
			select {
			case <-ch:
			default:
			}

			select {
			case ch <- s.snapshot:
			default:
			}
		}
	}
}

// alertUrgent emails the owner about unread urgent notifications it has not
// alerted on before. Best effort: a mail failure never fails the sync.
// Caller holds the lock.
func (s *Session) alertUrgent() {
	if s.mailer == nil || s.user.Email == "" {
		return
	}

	for _, n := range s.snapshot.Notifications {
		if n.Type != entity.NotificationTypeUrgent || n.Read {
			continue
		}

		if _, ok := s.alerted[n.ID]; ok {
			continue
		}

		s.alerted[n.ID] = struct{}{}

		go s.sendAlert(n)
	}
}

func (s *Session) sendAlert(n entity.Notification) {
	body := n.Message
	if n.BillNumber != "" {
		body += "\n\nBill: " + n.BillNumber + " " + n.BillTitle
	}

	err := s.mailer.SendMessage("Urgent: "+n.Title, body, []string{s.user.Email})
	if err != nil {
		s.log.Error("send urgent alert", "error", err, "notification_id", n.ID)
	}
}

// close tears the session down. No feed delivery and no commit happens after
// it returns.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true

	for ch := range s.feeds {
		close(ch)
	}

	s.feeds = make(map[chan entity.Snapshot]struct{})
}
