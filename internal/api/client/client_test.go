package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/helpdesk/internal/entity"
	gerr "github.com/jekabolt/helpdesk/internal/errors"
	"github.com/jekabolt/helpdesk/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	cl, err := New(&Config{BaseURL: srv.URL + "/", HTTPTimeout: 2 * time.Second})
	require.NoError(t, err)
	return cl, srv
}

func TestNew_Validation(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)
	_, err = New(&Config{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	cl, err := New(&Config{BaseURL: "http://helpdesk.local:5000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://helpdesk.local:5000", cl.BaseURL())
}

func TestSubmitTicket(t *testing.T) {
	var got entity.TicketInsert
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submit-ticket", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"ticket_id":42,"message":"Ticket created successfully"}`))
	})

	id, err := cl.SubmitTicket(context.Background(), entity.TicketInsert{
		UserName:  "Asha",
		UserEmail: "asha@example.com",
		Priority:  entity.PriorityHigh,
		Subject:   "VPN",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.Equal(t, "asha@example.com", got.UserEmail)
	assert.Equal(t, entity.PriorityHigh, got.Priority)
}

func TestSubmitTicket_ServerError(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Missing required field: subject"}`))
	})

	_, err := cl.SubmitTicket(context.Background(), entity.TicketInsert{})
	var se *gerr.ServerError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	msg, ok := gerr.ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Missing required field: subject", msg)
	assert.False(t, gerr.IsTransport(err))
}

func TestSubmitTicket_MissingID(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	_, err := cl.SubmitTicket(context.Background(), entity.TicketInsert{})
	assert.ErrorIs(t, err, gerr.ErrMalformedResponse)
}

func TestGetTickets_SendsAllThreeParams(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tickets", r.URL.Path)
		q := r.URL.Query()
		assert.Len(t, q, 3)
		assert.Equal(t, "Open", q.Get("status"))
		assert.Equal(t, "High", q.Get("priority"))
		assert.Equal(t, "vpn", q.Get("search"))
		w.Write([]byte(`{"success":true,"tickets":[{"ticket_id":1,"subject":"VPN down","status":"Open","priority":"High","created_at":"2024-11-15 10:30:00"}]}`))
	})

	tickets, err := cl.GetTickets(context.Background(), entity.TicketFilters{Status: "Open", Priority: "High", Search: "vpn"})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "VPN down", tickets[0].Subject)
	assert.False(t, tickets[0].CreatedAt.IsZero())
}

func TestGetTickets_DefaultsAndMissingList(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "status=all&priority=all&search=", sortedQuery(r))
		w.Write([]byte(`{"success":true}`))
	})

	tickets, err := cl.GetTickets(context.Background(), entity.DefaultFilters())
	require.NoError(t, err)
	assert.NotNil(t, tickets)
	assert.Empty(t, tickets)
}

func sortedQuery(r *http.Request) string {
	q := r.URL.Query()
	return "status=" + q.Get("status") + "&priority=" + q.Get("priority") + "&search=" + q.Get("search")
}

func TestGetTickets_ServerFailure(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Database connection failed"}`))
	})

	_, err := cl.GetTickets(context.Background(), entity.DefaultFilters())
	msg, ok := gerr.ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "Database connection failed", msg)
}

func TestGetDashboardStats(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard-stats", r.URL.Path)
		w.Write([]byte(`{"success":true,"stats":{"total":9,"open":4,"resolved":2}}`))
	})

	stats, err := cl.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.Stats{Total: 9, Open: 4, Resolved: 2}, stats)
}

func TestGetDashboardStats_Malformed(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html>oops</html>`))
	})

	_, err := cl.GetDashboardStats(context.Background())
	assert.ErrorIs(t, err, gerr.ErrMalformedResponse)
	assert.False(t, gerr.IsTransport(err))
}

func TestUpdateTicketStatus(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tickets/7/status", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"Resolved","resolution_notes":""}`, string(body))
		w.Write([]byte(`{"success":true,"message":"Status updated"}`))
	})

	err := cl.UpdateTicketStatus(context.Background(), 7, entity.StatusUpdate{Status: entity.StatusResolved})
	assert.NoError(t, err)
}

func TestUpdateTicketStatus_Locked(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"locked"}`))
	})

	err := cl.UpdateTicketStatus(context.Background(), 7, entity.StatusUpdate{Status: entity.StatusResolved})
	msg, ok := gerr.ServerMessage(err)
	assert.True(t, ok)
	assert.Equal(t, "locked", msg)
}

func TestUpdateTicketStatus_InvalidID(t *testing.T) {
	cl, err := New(&Config{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	assert.ErrorIs(t, cl.UpdateTicketStatus(context.Background(), 0, entity.StatusUpdate{}), gerr.ErrInvalidTicketID)
}

func TestRedirectIsAuthRequired(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/login", http.StatusFound)
	})

	_, err := cl.GetTickets(context.Background(), entity.DefaultFilters())
	assert.ErrorIs(t, err, gerr.ErrAuthRequired)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cl, err := New(&Config{BaseURL: srv.URL, HTTPTimeout: time.Second})
	require.NoError(t, err)

	_, err = cl.GetDashboardStats(context.Background())
	require.Error(t, err)
	assert.True(t, gerr.IsTransport(err))
}

func TestSessionCookieAndRequestID(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get(middleware.RequestIDHeader))
		w.Write([]byte(`{"success":true,"stats":{}}`))
	})
	_, err := cl.GetDashboardStats(middleware.WithRequestID(context.Background(), "req-1"))
	require.NoError(t, err)

	var cookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			cookie = c.Value
		}
		assert.NotEmpty(t, r.Header.Get(middleware.RequestIDHeader))
		w.Write([]byte(`{"success":true,"stats":{}}`))
	}))
	defer srv.Close()

	cl, err = New(&Config{BaseURL: srv.URL, SessionCookie: "s3cr3t"})
	require.NoError(t, err)
	_, err = cl.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cookie)
}
