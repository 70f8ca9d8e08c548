package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Rasamaha24/m5-advocate-portal/internal/api"
	"github.com/Rasamaha24/m5-advocate-portal/internal/entity"
	"github.com/Rasamaha24/m5-advocate-portal/internal/mocks"
	"github.com/Rasamaha24/m5-advocate-portal/internal/service"
)

type testAPI struct {
	server   *httptest.Server
	store    *mocks.MockStore
	producer *mocks.MockProducer
	auth     *mocks.MockAuthService
	user     entity.User
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	auth := mocks.NewMockAuthService(ctrl)

	user := entity.User{
		ID:        uuid.Must(uuid.NewV4()),
		FirstName: "Test first name",
		LastName:  "Test last name",
		Email:     "user@example.com",
	}

	auth.EXPECT().User(gomock.Any(), "dev").Return(user, nil).AnyTimes()

	s := service.New(store, producer, nil, 30*time.Minute)
	h := api.NewHandler(s, func() bool { return true })
	mw := api.NewMiddleware(auth)

	server := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(server.Close)

	return &testAPI{
		server:   server,
		store:    store,
		producer: producer,
		auth:     auth,
		user:     user,
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer dev")

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func (a *testAPI) expectFetch(ns []entity.Notification) {
	a.store.EXPECT().UserClientIDs(gomock.Any(), a.user.ID).Return(nil, nil)
	a.store.EXPECT().RecentNotifications(gomock.Any(), a.user.ID, entity.RecentNotificationLimit).
		Return(ns, nil)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp, err := a.server.Client().Get(a.server.URL + "/api/health")
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Dashboard_Unauthorized(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp, err := a.server.Client().Get(a.server.URL + "/api/dashboard")
	require.NoError(t, err)

	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	ns := []entity.Notification{
		{ID: uuid.Must(uuid.NewV4()), Title: "read one", Type: entity.NotificationTypeInfo, Read: true},
		{ID: uuid.Must(uuid.NewV4()), Title: "unread one", Type: entity.NotificationTypeUrgent},
	}
	a.expectFetch(ns)

	resp := a.do(t, http.MethodGet, "/api/dashboard?notificationRead=unread", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dashboard api.DashboardResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dashboard))
	require.Equal(t, uint64(1), dashboard.Generation)
	require.True(t, dashboard.Live)
	require.Equal(t, 1, dashboard.UnreadCount)

	// The read-state filter applies to the response, not the session state.
	require.Len(t, dashboard.Notifications, 1)
	require.Equal(t, "unread one", dashboard.Notifications[0].Title)
}

func TestHandler_MarkNotificationRead(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	n := entity.Notification{ID: uuid.Must(uuid.NewV4()), Type: entity.NotificationTypeInfo}
	a.expectFetch([]entity.Notification{n})

	a.store.EXPECT().MarkNotificationRead(gomock.Any(), n.ID, a.user.ID).Return(nil)
	a.producer.EXPECT().NotificationsChanged(gomock.Any(), a.user.ID, []uuid.UUID{n.ID})

	resp := a.do(t, http.MethodPut, "/api/notifications/"+n.ID.String()+"/read", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_MarkNotificationRead_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.expectFetch(nil)

	resp := a.do(t, http.MethodPut, "/api/notifications/"+uuid.Must(uuid.NewV4()).String()+"/read", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_MarkNotificationRead_BadID(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodPut, "/api/notifications/not-a-uuid/read", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_CreateClient(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	a.store.EXPECT().CreateClient(gomock.Any(), gomock.Any(), a.user.ID).Return(nil)

	resp := a.do(t, http.MethodPost, "/api/clients", api.CreateClientRequest{
		Name:         "Acme Health",
		ContactEmail: "ops@acme.test",
		Industry:     "healthcare",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.ClientResponse

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, "Acme Health", created.Name)
	require.Equal(t, "active", created.Status)
	require.False(t, created.ID.IsNil())
}

func TestHandler_CreateClient_Invalid(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/clients", api.CreateClientRequest{
		ContactEmail: "ops@acme.test",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_TrackBill_Forbidden(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	billID := uuid.Must(uuid.NewV4())

	a.store.EXPECT().IsClientMember(gomock.Any(), a.user.ID, clientID).Return(false, nil)

	resp := a.do(t, http.MethodPost, "/api/clients/"+clientID.String()+"/bills", api.TrackBillRequest{
		BillID:   billID.String(),
		Position: "support",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_UpdateBillPosition(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	billID := uuid.Must(uuid.NewV4())

	a.store.EXPECT().IsClientMember(gomock.Any(), a.user.ID, clientID).Return(true, nil)
	a.store.EXPECT().UpdateBillLinkPosition(gomock.Any(), clientID, billID, entity.BillPositionOppose).Return(nil)
	a.producer.EXPECT().BillChanged(gomock.Any(), billID)

	resp := a.do(t, http.MethodPut,
		"/api/clients/"+clientID.String()+"/bills/"+billID.String()+"/position",
		api.UpdatePositionRequest{Position: "oppose"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_UntrackBill_NotFound(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	clientID := uuid.Must(uuid.NewV4())
	billID := uuid.Must(uuid.NewV4())

	a.store.EXPECT().IsClientMember(gomock.Any(), a.user.ID, clientID).Return(true, nil)
	a.store.EXPECT().DeleteBillLink(gomock.Any(), clientID, billID).Return(entity.ErrNotFound)

	resp := a.do(t, http.MethodDelete, "/api/clients/"+clientID.String()+"/bills/"+billID.String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
