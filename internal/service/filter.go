package service

import (
	"strings"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
)

// The filter functions are pure: they never mutate their input and always
// return a fresh slice, so handlers can run them on a shared snapshot.

// FilterClients applies substring search and a status filter.
func FilterClients(clients []entity.Client, f entity.ClientFilter) []entity.Client {
	out := make([]entity.Client, 0, len(clients))

	for _, c := range clients {
		if !matchAll(f.Status, string(c.Status)) {
			continue
		}

		if !matchSearch(f.Search, c.Name, c.ContactEmail, c.Industry) {
			continue
		}

		out = append(out, c)
	}

	return out
}

// FilterBills applies substring search plus status, priority and position
// filters. Priority matches against the effective priority, override
// included.
func FilterBills(bills []entity.TrackedBill, f entity.BillFilter) []entity.TrackedBill {
	out := make([]entity.TrackedBill, 0, len(bills))

	for _, b := range bills {
		if !matchAll(f.Status, string(b.Status)) {
			continue
		}

		if !matchAll(f.Priority, string(b.EffectivePriority())) {
			continue
		}

		if !matchAll(f.Position, string(b.Position)) {
			continue
		}

		if !matchSearch(f.Search, b.Number, b.Title, b.Author) {
			continue
		}

		out = append(out, b)
	}

	return out
}

// FilterNotifications applies type and read-state filters.
func FilterNotifications(ns []entity.Notification, f entity.NotificationFilter) []entity.Notification {
	out := make([]entity.Notification, 0, len(ns))

	for _, n := range ns {
		if !matchAll(f.Type, string(n.Type)) {
			continue
		}

		if !matchRead(f.Read, n.Read) {
			continue
		}

		out = append(out, n)
	}

	return out
}

// matchAll treats empty and "all" as wildcards and compares exactly otherwise.
func matchAll(filter, value string) bool {
	return filter == "" || filter == entity.FilterAll || filter == value
}

// matchSearch reports whether any field contains the query, case-insensitive.
// An empty query matches everything.
func matchSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}

	return false
}

func matchRead(filter string, read bool) bool {
	switch filter {
	case "", entity.FilterAll:
		return true
	case entity.ReadStateRead:
		return read
	case entity.ReadStateUnread:
		return !read
	default:
		return false
	}
}
