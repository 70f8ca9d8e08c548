package entity

// FilterAll is the wildcard value of every exact-match predicate. An empty
// string is treated the same way so that absent query params need no mapping.
const FilterAll = "all"

const (
	ReadStateRead   = "read"
	ReadStateUnread = "unread"
)

// ClientFilter subsets the client collection. Search is a case-insensitive
// substring match over name, contact email and industry.
type ClientFilter struct {
	Search string
	Status string
}

// BillFilter subsets the tracked-bill collection. Search matches bill number,
// title and author; Priority matches the effective priority (override first).
type BillFilter struct {
	Search   string
	Status   string
	Priority string
	Position string
}

// NotificationFilter subsets the notification collection. Read is one of
// "all", "read" or "unread".
type NotificationFilter struct {
	Type string
	Read string
}
