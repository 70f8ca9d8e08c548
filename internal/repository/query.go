package repository

const (
	selectNotifications = `SELECT
		n.id,
		n.user_id,
		n.title,
		n.message,
		n.type,
		n.read,
		n.bill_id,
		n.created_at,
		b.bill_number,
		b.title
	FROM notifications n
	LEFT JOIN bills b ON b.id = n.bill_id`
)
