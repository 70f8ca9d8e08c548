package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
	"github.com/Rasamaha24/m5-advocate-portal/internal/service"
)

// @title Advocate Portal API
// @version 1.0
// @description Dashboard synchronization API for the advocate client portal
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Service interface {
	Dashboard(ctx context.Context) (entity.Snapshot, error)
	Refresh(ctx context.Context) (entity.Snapshot, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan entity.Snapshot, func(), error)
	CloseSession(ctx context.Context) error
	CreateClient(ctx context.Context, client entity.Client) (entity.Client, error)
	TrackBill(ctx context.Context, link entity.BillLink) error
	UntrackBill(ctx context.Context, clientID, billID uuid.UUID) error
	UpdateBillPosition(ctx context.Context, clientID, billID uuid.UUID, position entity.BillPosition) error
}

type Handler struct {
	s    Service
	live func() bool
}

func NewHandler(s Service, live func() bool) *Handler {
	return &Handler{
		s:    s,
		live: live,
	}
}

type ClientResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contactEmail"`
	Phone        string    `json:"phone,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	Address      string    `json:"address,omitempty"`
	Status       string    `json:"status"`
	TrackedBills int       `json:"trackedBills"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TrackedBillResponse struct {
	ID                uuid.UUID `json:"id"`
	ClientID          uuid.UUID `json:"clientId"`
	Number            string    `json:"number"`
	Title             string    `json:"title"`
	Summary           string    `json:"summary,omitempty"`
	Status            string    `json:"status"`
	Priority          string    `json:"priority"`
	EffectivePriority string    `json:"effectivePriority"`
	Position          string    `json:"position"`
	TrackingReason    string    `json:"trackingReason,omitempty"`
	Chamber           string    `json:"chamber,omitempty"`
	Author            string    `json:"author,omitempty"`
	LastAction        string    `json:"lastAction,omitempty"`
	TrackedAt         time.Time `json:"trackedAt"`
}

type NotificationResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	Read       bool      `json:"read"`
	BillID     *string   `json:"billId,omitempty"`
	BillNumber string    `json:"billNumber,omitempty"`
	BillTitle  string    `json:"billTitle,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type DashboardResponse struct {
	Clients       []ClientResponse       `json:"clients"`
	Bills         []TrackedBillResponse  `json:"bills"`
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
	Generation    uint64                 `json:"generation"`
	SyncedAt      time.Time              `json:"syncedAt"`
	Live          bool                   `json:"live"`
}

func (h *Handler) dashboardResponse(snap entity.Snapshot, r *http.Request) DashboardResponse {
	q := r.URL.Query()

	clients := service.FilterClients(snap.Clients, entity.ClientFilter{
		Search: q.Get("clientSearch"),
		Status: q.Get("clientStatus"),
	})
	bills := service.FilterBills(snap.Bills, entity.BillFilter{
		Search:   q.Get("billSearch"),
		Status:   q.Get("billStatus"),
		Priority: q.Get("billPriority"),
		Position: q.Get("billPosition"),
	})
	notifications := service.FilterNotifications(snap.Notifications, entity.NotificationFilter{
		Type: q.Get("notificationType"),
		Read: q.Get("notificationRead"),
	})

	resp := DashboardResponse{
		Clients:       make([]ClientResponse, 0, len(clients)),
		Bills:         make([]TrackedBillResponse, 0, len(bills)),
		Notifications: make([]NotificationResponse, 0, len(notifications)),
		UnreadCount:   snap.UnreadCount(),
		Generation:    snap.Generation,
		SyncedAt:      snap.SyncedAt,
		Live:          h.live(),
	}

	for _, c := range clients {
		resp.Clients = append(resp.Clients, ClientResponse{
			ID:           c.ID,
			Name:         c.Name,
			ContactEmail: c.ContactEmail,
			Phone:        c.Phone,
			Industry:     c.Industry,
			Address:      c.Address,
			Status:       c.Status.String(),
			TrackedBills: c.TrackedBills,
			CreatedAt:    c.CreatedAt,
		})
	}

	for _, b := range bills {
		resp.Bills = append(resp.Bills, TrackedBillResponse{
			ID:                b.ID,
			ClientID:          b.ClientID,
			Number:            b.Number,
			Title:             b.Title,
			Summary:           b.Summary,
			Status:            b.Status.String(),
			Priority:          b.Priority.String(),
			EffectivePriority: b.EffectivePriority().String(),
			Position:          b.Position.String(),
			TrackingReason:    b.TrackingReason,
			Chamber:           b.Chamber,
			Author:            b.Author,
			LastAction:        b.LastAction,
			TrackedAt:         b.TrackedAt,
		})
	}

	for _, n := range notifications {
		nr := NotificationResponse{
			ID:         n.ID,
			Title:      n.Title,
			Message:    n.Message,
			Type:       n.Type.String(),
			Read:       n.Read,
			BillNumber: n.BillNumber,
			BillTitle:  n.BillTitle,
			CreatedAt:  n.CreatedAt,
		}

		if n.BillID.Valid {
			id := n.BillID.UUID.String()
			nr.BillID = &id
		}

		resp.Notifications = append(resp.Notifications, nr)
	}

	return resp
}

// Dashboard returns the caller's dashboard snapshot
// @Summary Get dashboard
// @Description Returns the synchronized dashboard state, filtered by the query parameters
// @Tags dashboard
// @Produce json
// @Param clientSearch query string false "Client substring search"
// @Param clientStatus query string false "Client status or all"
// @Param billSearch query string false "Bill substring search"
// @Param billStatus query string false "Bill status or all"
// @Param billPriority query string false "Effective bill priority or all"
// @Param billPosition query string false "Client position or all"
// @Param notificationType query string false "Notification type or all"
// @Param notificationRead query string false "read, unread or all"
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 502 {object} ErrorResponse "Data store unavailable"
// @Router /dashboard [get]
// @Security BearerAuth
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := h.s.Dashboard(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.dashboardResponse(snap, r))
}

// RefreshDashboard forces a full re-synchronize
// @Summary Refresh dashboard
// @Description Re-runs the relational fetch and returns the new snapshot. On fetch failure the session keeps its previous snapshot.
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 502 {object} ErrorResponse "Data store unavailable"
// @Router /dashboard/refresh [post]
// @Security BearerAuth
func (h *Handler) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap, err := h.s.Refresh(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.dashboardResponse(snap, r))
}

// CloseSession drops the caller's server-side dashboard session
// @Summary Close dashboard session
// @Tags dashboard
// @Success 204
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /dashboard/session [delete]
// @Security BearerAuth
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.CloseSession(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkNotificationRead marks one notification as read
// @Summary Mark notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid notification id"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Notification not found"
// @Failure 502 {object} ErrorResponse "Write failed, change rolled back"
// @Router /notifications/{id}/read [put]
// @Security BearerAuth
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid notification id")
		return
	}

	err = h.s.MarkNotificationRead(ctx, id)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead marks every unread notification as read
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 204
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 502 {object} ErrorResponse "Write failed, unconfirmed changes rolled back"
// @Router /notifications/read [put]
// @Security BearerAuth
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.s.MarkAllNotificationsRead(ctx)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CreateClientRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Industry     string `json:"industry"`
	Address      string `json:"address"`
	Status       string `json:"status"`
}

// CreateClient creates a client owned by the caller
// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Param CreateClientRequest body CreateClientRequest true "Client creation request"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Router /clients [post]
// @Security BearerAuth
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	client, err := h.s.CreateClient(ctx, entity.Client{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Industry:     req.Industry,
		Address:      req.Address,
		Status:       entity.ClientStatus(req.Status),
	})
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		ContactEmail: client.ContactEmail,
		Phone:        client.Phone,
		Industry:     client.Industry,
		Address:      client.Address,
		Status:       client.Status.String(),
		CreatedAt:    client.CreatedAt,
	})
}

type TrackBillRequest struct {
	BillID           string `json:"billId"`
	Position         string `json:"position"`
	TrackingReason   string `json:"trackingReason"`
	PriorityOverride string `json:"priorityOverride"`
}

// TrackBill attaches a bill to a client
// @Summary Track bill
// @Description Attaches a bill to a client with a position. Tracking an already-tracked bill updates the link metadata.
// @Tags bills
// @Accept json
// @Produce json
// @Param clientID path string true "Client id"
// @Param TrackBillRequest body TrackBillRequest true "Bill tracking request"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the client"
// @Router /clients/{clientID}/bills [post]
// @Security BearerAuth
func (h *Handler) TrackBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := uuid.FromString(chi.URLParam(r, "clientID"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req TrackBillRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	billID, err := uuid.FromString(req.BillID)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bill id")
		return
	}

	err = h.s.TrackBill(ctx, entity.BillLink{
		ClientID:         clientID,
		BillID:           billID,
		Position:         entity.BillPosition(req.Position),
		TrackingReason:   req.TrackingReason,
		PriorityOverride: entity.BillPriority(req.PriorityOverride),
	})
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UntrackBill removes a client-bill link
// @Summary Untrack bill
// @Tags bills
// @Produce json
// @Param clientID path string true "Client id"
// @Param billID path string true "Bill id"
// @Success 204
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the client"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Router /clients/{clientID}/bills/{billID} [delete]
// @Security BearerAuth
func (h *Handler) UntrackBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, billID, err := linkIDs(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	err = h.s.UntrackBill(ctx, clientID, billID)
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type UpdatePositionRequest struct {
	Position string `json:"position"`
}

// UpdateBillPosition changes the client's position on a tracked bill
// @Summary Update bill position
// @Tags bills
// @Accept json
// @Produce json
// @Param clientID path string true "Client id"
// @Param billID path string true "Bill id"
// @Param UpdatePositionRequest body UpdatePositionRequest true "New position"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the client"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Router /clients/{clientID}/bills/{billID}/position [put]
// @Security BearerAuth
func (h *Handler) UpdateBillPosition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, billID, err := linkIDs(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid id")
		return
	}

	var req UpdatePositionRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.s.UpdateBillPosition(ctx, clientID, billID, entity.BillPosition(req.Position))
	if err != nil {
		h.sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler responds to health checks
// @Summary Health check
// @Tags health
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func linkIDs(r *http.Request) (clientID, billID uuid.UUID, err error) {
	clientID, err = uuid.FromString(chi.URLParam(r, "clientID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	billID, err = uuid.FromString(chi.URLParam(r, "billID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return clientID, billID, nil
}

func (h *Handler) sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var writeErr *entity.WriteError

	switch {
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action forbidden")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrIncorrectRequestBody):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request body")
	case errors.As(err, &writeErr):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Write failed, change rolled back")
	default:
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Data store unavailable")
	}
}
