package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

// Store is the remote data store: batched reads for the dashboard join and
// owner-scoped writes.
type Store interface {
	UserClientIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ClientsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Client, error)
	TrackedBillsByClientIDs(ctx context.Context, ids []uuid.UUID) ([]entity.TrackedBill, error)
	RecentNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error
	MarkNotificationsRead(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error)
	CreateClient(ctx context.Context, client entity.Client, ownerID uuid.UUID) error
	UpsertBillLink(ctx context.Context, link entity.BillLink) error
	DeleteBillLink(ctx context.Context, clientID, billID uuid.UUID) error
	UpdateBillLinkPosition(ctx context.Context, clientID, billID uuid.UUID, position entity.BillPosition) error
	IsClientMember(ctx context.Context, userID, clientID uuid.UUID) (bool, error)
}

// Producer publishes change events so other portal instances and the user's
// other sessions re-synchronize.
type Producer interface {
	BillChanged(ctx context.Context, billID uuid.UUID)
	NotificationsChanged(ctx context.Context, userID uuid.UUID, ids []uuid.UUID)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

// Service owns the per-user dashboard sessions and every mutation entry point
// exposed to the API layer.
type Service struct {
	store    Store
	producer Producer
	mailer   Mailer
	fetcher  *Fetcher
	idleTTL  time.Duration
	log      *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func New(store Store, producer Producer, mailer Mailer, idleTTL time.Duration) *Service {
	return &Service{
		store:    store,
		producer: producer,
		mailer:   mailer,
		fetcher:  NewFetcher(store),
		idleTTL:  idleTTL,
		log:      slog.Default().With("component", "dashboard"),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// session returns the caller's dashboard session, creating and synchronizing
// it on first access.
func (s *Service) session(ctx context.Context) (*Session, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()

	sess, ok := s.sessions[user.ID]
	if ok {
		sess.touch()
		s.mu.Unlock()

		return sess, nil
	}

	sess = newSession(user, s.fetcher, s.store, s.producer, s.mailer, s.log)
	s.sessions[user.ID] = sess
	s.mu.Unlock()

	err = sess.Refresh(ctx)
	if err != nil {
		// The session never held a snapshot; drop it so the next request
		// retries from scratch instead of serving an empty dashboard.
		s.mu.Lock()
		if s.sessions[user.ID] == sess {
			delete(s.sessions, user.ID)
		}
		s.mu.Unlock()

		sess.close()

		return nil, err
	}

	return sess, nil
}

// Dashboard returns the caller's current snapshot, synchronizing first if no
// session exists yet.
func (s *Service) Dashboard(ctx context.Context) (entity.Snapshot, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return entity.Snapshot{}, err
	}

	return sess.Snapshot(), nil
}

// Refresh re-runs the relational fetch for the caller. It stays functional
// when live subscriptions are degraded.
func (s *Service) Refresh(ctx context.Context) (entity.Snapshot, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return entity.Snapshot{}, err
	}

	err = sess.Refresh(ctx)
	if err != nil {
		// The previous snapshot stays in place; the caller gets it together
		// with the error so the dashboard is never blanked by a bad fetch.
		return sess.Snapshot(), err
	}

	return sess.Snapshot(), nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	sess, err := s.session(ctx)
	if err != nil {
		return err
	}

	return sess.MarkRead(ctx, id)
}

func (s *Service) MarkAllNotificationsRead(ctx context.Context) error {
	sess, err := s.session(ctx)
	if err != nil {
		return err
	}

	return sess.MarkAllRead(ctx)
}

// Subscribe attaches a live feed to the caller's session. The returned cancel
// must be called when the consumer goes away.
func (s *Service) Subscribe(ctx context.Context) (<-chan entity.Snapshot, func(), error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, nil, err
	}

	feed, cancel := sess.subscribeFeed()

	return feed, cancel, nil
}

// CloseSession tears the caller's session down: subscriptions stop and any
// in-flight synchronize result is discarded, not committed.
func (s *Service) CloseSession(ctx context.Context) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	sess, ok := s.sessions[user.ID]
	delete(s.sessions, user.ID)
	s.mu.Unlock()

	if ok {
		sess.close()
	}

	return nil
}

// CloseIdleSessions reaps sessions without recent API activity. Run as a
// background job.
func (s *Service) CloseIdleSessions(ctx context.Context) error {
	cutoff := time.Now().Add(-s.idleTTL)

	s.mu.Lock()

	var idle []*Session

	for id, sess := range s.sessions {
		if sess.seenBefore(cutoff) {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}

	s.mu.Unlock()

	for _, sess := range idle {
		sess.close()
	}

	if len(idle) > 0 {
		s.log.InfoContext(ctx, "closed idle dashboard sessions", "count", len(idle))
	}

	return nil
}

// NotifyBillChanged re-synchronizes every open session: any bill change can
// affect any tracked link.
func (s *Service) NotifyBillChanged(ctx context.Context) {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))

	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.trigger()
	}
}

// NotifyUserNotificationsChanged re-synchronizes one user's session.
func (s *Service) NotifyUserNotificationsChanged(ctx context.Context, userID uuid.UUID) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()

	if ok {
		sess.trigger()
	}
}

// CreateClient creates a client owned by the caller.
func (s *Service) CreateClient(ctx context.Context, client entity.Client) (entity.Client, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Client{}, err
	}

	err = validateClient(client)
	if err != nil {
		return entity.Client{}, err
	}

	client.ID = uuid.Must(uuid.NewV4())
	client.CreatedAt = time.Now()

	if client.Status == "" {
		client.Status = entity.ClientStatusActive
	}

	err = s.store.CreateClient(ctx, client, user.ID)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.NotifyUserNotificationsChanged(ctx, user.ID)

	return client, nil
}

// TrackBill attaches a bill to a client the caller is a member of.
func (s *Service) TrackBill(ctx context.Context, link entity.BillLink) error {
	err := s.authorizeClient(ctx, link.ClientID)
	if err != nil {
		return err
	}

	err = validateBillLink(link)
	if err != nil {
		return err
	}

	link.CreatedAt = time.Now()

	err = s.store.UpsertBillLink(ctx, link)
	if err != nil {
		return fmt.Errorf("track bill: %w", err)
	}

	s.producer.BillChanged(ctx, link.BillID)
	s.NotifyBillChanged(ctx)

	return nil
}

// UntrackBill removes the link between a client and a bill.
func (s *Service) UntrackBill(ctx context.Context, clientID, billID uuid.UUID) error {
	err := s.authorizeClient(ctx, clientID)
	if err != nil {
		return err
	}

	err = s.store.DeleteBillLink(ctx, clientID, billID)
	if err != nil {
		return err
	}

	s.producer.BillChanged(ctx, billID)
	s.NotifyBillChanged(ctx)

	return nil
}

// UpdateBillPosition changes the caller's client position on a tracked bill.
func (s *Service) UpdateBillPosition(ctx context.Context, clientID, billID uuid.UUID, position entity.BillPosition) error {
	err := s.authorizeClient(ctx, clientID)
	if err != nil {
		return err
	}

	if !position.IsValid() {
		return fmt.Errorf("%w: position %q", entity.ErrIncorrectRequestBody, position)
	}

	err = s.store.UpdateBillLinkPosition(ctx, clientID, billID, position)
	if err != nil {
		return err
	}

	s.producer.BillChanged(ctx, billID)
	s.NotifyBillChanged(ctx)

	return nil
}

func (s *Service) authorizeClient(ctx context.Context, clientID uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	ok, err := s.store.IsClientMember(ctx, user.ID, clientID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}

	if !ok {
		return fmt.Errorf("%w: user %s is not a member of client %s", entity.ErrForbidden, user.ID, clientID)
	}

	return nil
}
