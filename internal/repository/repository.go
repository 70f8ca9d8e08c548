package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// UserClientIDs resolves the client memberships of a user.
func (r *Repository) UserClientIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT client_id FROM user_clients WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID

		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ClientsByIDs fetches client records in one batched request, newest first,
// with the derived tracked-bill count.
func (r *Repository) ClientsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Client, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	stmt := sq.Select(
		"c.id",
		"c.name",
		"c.contact_email",
		"c.phone",
		"c.industry",
		"c.address",
		"c.status",
		"c.created_at",
		"count(cb.bill_id) AS tracked_bills",
	).From("clients c").
		LeftJoin("client_bills cb ON cb.client_id = c.id").
		Where(sq.Eq{"c.id": ids}).
		GroupBy("c.id").
		OrderBy("c.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	clients := make([]entity.Client, 0, len(ids))

	for rows.Next() {
		var c entity.Client

		err = rows.Scan(
			&c.ID,
			&c.Name,
			&c.ContactEmail,
			&c.Phone,
			&c.Industry,
			&c.Address,
			&c.Status,
			&c.CreatedAt,
			&c.TrackedBills,
		)
		if err != nil {
			return nil, err
		}

		clients = append(clients, c)
	}

	return clients, rows.Err()
}

// TrackedBillsByClientIDs fetches all client-bill links with their referenced
// bills in one joined request, most recently tracked first. Links whose bill
// no longer exists are excluded by the join.
func (r *Repository) TrackedBillsByClientIDs(ctx context.Context, ids []uuid.UUID) ([]entity.TrackedBill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	stmt := sq.Select(
		"cb.client_id",
		"cb.position",
		"cb.tracking_reason",
		"cb.priority_override",
		"cb.created_at",
		"b.id",
		"b.bill_number",
		"b.title",
		"b.summary",
		"b.status",
		"b.priority",
		"b.chamber",
		"b.author",
		"b.last_action",
		"b.created_at",
	).From("client_bills cb").
		Join("bills b ON b.id = cb.bill_id").
		Where(sq.Eq{"cb.client_id": ids}).
		OrderBy("cb.created_at DESC").
		PlaceholderFormat(sq.Dollar)

	q, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bills []entity.TrackedBill

	for rows.Next() {
		var (
			tb       entity.TrackedBill
			override zeronull.Text
		)

		err = rows.Scan(
			&tb.ClientID,
			&tb.Position,
			&tb.TrackingReason,
			&override,
			&tb.TrackedAt,
			&tb.Bill.ID,
			&tb.Bill.Number,
			&tb.Bill.Title,
			&tb.Bill.Summary,
			&tb.Bill.Status,
			&tb.Bill.Priority,
			&tb.Bill.Chamber,
			&tb.Bill.Author,
			&tb.Bill.LastAction,
			&tb.Bill.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		tb.PriorityOverride = entity.BillPriority(override)

		bills = append(bills, tb)
	}

	return bills, rows.Err()
}

// RecentNotifications fetches up to limit most recent notifications of a user,
// newest first, with the denormalized bill projection when linked.
func (r *Repository) RecentNotifications(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Notification, error) {
	q := selectNotifications + ` WHERE n.user_id = $1 ORDER BY n.created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	notifications := make([]entity.Notification, 0, limit)

	for rows.Next() {
		var (
			n                     entity.Notification
			billNumber, billTitle zeronull.Text
		)

		err = rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.Read,
			&n.BillID,
			&n.CreatedAt,
			&billNumber,
			&billTitle,
		)
		if err != nil {
			return nil, err
		}

		n.BillNumber = string(billNumber)
		n.BillTitle = string(billTitle)

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead flips the read flag of one notification, scoped to its
// owner.
func (r *Repository) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	const q = `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkNotificationsRead flips the read flag of the given notifications in one
// scoped batch and returns the ids the store actually updated.
func (r *Repository) MarkNotificationsRead(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const q = `UPDATE notifications SET read = true WHERE id = ANY($1) AND user_id = $2 RETURNING id`

	rows, err := r.db.Query(ctx, q, ids, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	updated := make([]uuid.UUID, 0, len(ids))

	for rows.Next() {
		var id uuid.UUID

		err = rows.Scan(&id)
		if err != nil {
			return nil, err
		}

		updated = append(updated, id)
	}

	return updated, rows.Err()
}

// CreateClient inserts a client and attaches the creating user as a member.
func (r *Repository) CreateClient(ctx context.Context, client entity.Client, ownerID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	const insertClient = `
	INSERT INTO clients (id, name, contact_email, phone, industry, address, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(ctx, insertClient,
		client.ID,
		client.Name,
		client.ContactEmail,
		client.Phone,
		client.Industry,
		client.Address,
		client.Status,
		client.CreatedAt,
	)
	if err != nil {
		return err
	}

	const insertMembership = `
	INSERT INTO user_clients (user_id, client_id, created_at)
	VALUES ($1, $2, $3)`

	_, err = tx.Exec(ctx, insertMembership, ownerID, client.ID, client.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpsertBillLink attaches a bill to a client. A second attach for the same
// pair updates the link metadata instead of violating the one-link invariant.
func (r *Repository) UpsertBillLink(ctx context.Context, link entity.BillLink) error {
	const q = `
	INSERT INTO client_bills (client_id, bill_id, position, tracking_reason, priority_override, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (client_id, bill_id) DO UPDATE
	SET position = EXCLUDED.position,
		tracking_reason = EXCLUDED.tracking_reason,
		priority_override = EXCLUDED.priority_override`

	_, err := r.db.Exec(ctx, q,
		link.ClientID,
		link.BillID,
		link.Position,
		link.TrackingReason,
		zeronull.Text(link.PriorityOverride),
		link.CreatedAt,
	)

	return err
}

// DeleteBillLink untracks a bill for a client.
func (r *Repository) DeleteBillLink(ctx context.Context, clientID, billID uuid.UUID) error {
	const q = `DELETE FROM client_bills WHERE client_id = $1 AND bill_id = $2`

	result, err := r.db.Exec(ctx, q, clientID, billID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// UpdateBillLinkPosition changes the position of an existing link.
func (r *Repository) UpdateBillLinkPosition(ctx context.Context, clientID, billID uuid.UUID, position entity.BillPosition) error {
	const q = `UPDATE client_bills SET position = $1 WHERE client_id = $2 AND bill_id = $3`

	result, err := r.db.Exec(ctx, q, position, clientID, billID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// IsClientMember reports whether a user belongs to a client.
func (r *Repository) IsClientMember(ctx context.Context, userID, clientID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM user_clients WHERE user_id = $1 AND client_id = $2)`

	var ok bool

	err := r.db.QueryRow(ctx, q, userID, clientID).Scan(&ok)
	if err != nil {
		return false, err
	}

	return ok, nil
}
