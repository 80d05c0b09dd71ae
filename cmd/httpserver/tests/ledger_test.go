//go:build integration

package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/internal/integrationtest"
	"github.com/go-petr/pocket-ledger/pkg/randompkg"
	"github.com/go-petr/pocket-ledger/pkg/web"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("authorization", "bearer "+token)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	return w
}

// TestLedgerAPI walks the whole user journey: open a session, initialize the
// balance, submit entries, then read them back as listings and reports.
func TestLedgerAPI(t *testing.T) {
	defer integrationtest.Flush(t, server.DB)

	username := randompkg.Username()

	// Open a session.
	w := doRequest(t, http.MethodPost, "/sessions", "", map[string]string{"username": username})
	require.Equal(t, http.StatusOK, w.Code)

	var session web.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&session))
	require.NotEmpty(t, session.AccessToken)

	token := session.AccessToken

	// Entries are rejected until the balance exists.
	w = doRequest(t, http.MethodPost, "/entries", token, map[string]string{
		"name":     "groceries",
		"amount":   "50",
		"kind":     "Credit",
		"category": "Food",
		"date":     "2024-01-05",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Initialize the balance.
	w = doRequest(t, http.MethodPost, "/balances", token, map[string]string{"initial": "100"})
	require.Equal(t, http.StatusOK, w.Code)

	balanceRes := web.Response{
		Data: &struct {
			Balance domain.Balance `json:"balance"`
		}{},
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&balanceRes))

	gotBalance := balanceRes.Data.(*struct {
		Balance domain.Balance `json:"balance"`
	})
	require.Equal(t, "100", gotBalance.Balance.Current)

	// A repeated initialization conflicts.
	w = doRequest(t, http.MethodPost, "/balances", token, map[string]string{"initial": "100"})
	require.Equal(t, http.StatusConflict, w.Code)

	// Submit a credit and a debit.
	type submitData struct {
		Entry   domain.Entry   `json:"entry"`
		Balance domain.Balance `json:"balance"`
	}

	w = doRequest(t, http.MethodPost, "/entries", token, map[string]string{
		"name":     "salary",
		"amount":   "50",
		"kind":     "Credit",
		"category": "Food",
		"date":     "2024-01-05",
	})
	require.Equal(t, http.StatusOK, w.Code)

	submitRes := web.Response{Data: &submitData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&submitRes))
	require.Equal(t, "150", submitRes.Data.(*submitData).Balance.Current)

	w = doRequest(t, http.MethodPost, "/entries", token, map[string]string{
		"name":     "electricity",
		"amount":   "20",
		"kind":     "Debit",
		"category": "Bill",
		"date":     "2024-01-06",
	})
	require.Equal(t, http.StatusOK, w.Code)

	submitRes = web.Response{Data: &submitData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&submitRes))
	require.Equal(t, "130", submitRes.Data.(*submitData).Balance.Current)

	// The running balance reflects both submissions.
	w = doRequest(t, http.MethodGet, "/balances", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	balanceRes = web.Response{
		Data: &struct {
			Balance domain.Balance `json:"balance"`
		}{},
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&balanceRes))

	gotBalance = balanceRes.Data.(*struct {
		Balance domain.Balance `json:"balance"`
	})
	require.Equal(t, "130", gotBalance.Balance.Current)

	// Latest listing returns the most recent entry first.
	type listData struct {
		Entries []domain.Entry `json:"entries"`
	}

	w = doRequest(t, http.MethodGet, "/entries?limit=5", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	listRes := web.Response{Data: &listData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listRes))

	entries := listRes.Data.(*listData).Entries
	require.Len(t, entries, 2)
	require.Equal(t, "electricity", entries[0].Name)
	require.Equal(t, "salary", entries[1].Name)

	// Range listing returns them in date order.
	w = doRequest(t, http.MethodGet, "/entries/range?from=2024-01-01&to=2024-01-31", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	listRes = web.Response{Data: &listData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listRes))

	entries = listRes.Data.(*listData).Entries
	require.Len(t, entries, 2)
	require.Equal(t, "salary", entries[0].Name)
	require.Equal(t, "electricity", entries[1].Name)

	// Report sums the range by category.
	type reportData struct {
		Sums map[string]string `json:"sums"`
	}

	w = doRequest(t, http.MethodGet, "/reports?from=2024-01-01&to=2024-01-31&group_by=category", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	reportRes := web.Response{Data: &reportData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reportRes))

	wantSums := map[string]string{"Food": "50", "Bill": "20"}
	if diff := cmp.Diff(wantSums, reportRes.Data.(*reportData).Sums); diff != "" {
		t.Errorf("report sums mismatch (-want +got):\n%s", diff)
	}

	// Reconcile recomputes the same balance from the ledger.
	w = doRequest(t, http.MethodPost, "/balances/reconcile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	balanceRes = web.Response{
		Data: &struct {
			Balance domain.Balance `json:"balance"`
		}{},
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&balanceRes))

	gotBalance = balanceRes.Data.(*struct {
		Balance domain.Balance `json:"balance"`
	})
	require.Equal(t, "130", gotBalance.Balance.Current)
}

// TestLedgerAPIIsolation checks that one user's ledger never leaks into
// another user's listings.
func TestLedgerAPIIsolation(t *testing.T) {
	defer integrationtest.Flush(t, server.DB)

	users := []string{randompkg.Username(), randompkg.Username()}
	tokens := make([]string, len(users))

	for i, username := range users {
		w := doRequest(t, http.MethodPost, "/sessions", "", map[string]string{"username": username})
		require.Equal(t, http.StatusOK, w.Code)

		var session web.Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&session))
		tokens[i] = session.AccessToken

		w = doRequest(t, http.MethodPost, "/balances", tokens[i], map[string]string{"initial": "0"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doRequest(t, http.MethodPost, "/entries", tokens[0], map[string]string{
		"name":     "books",
		"amount":   "15",
		"kind":     "Debit",
		"category": "Shop",
		"date":     "2024-01-10",
	})
	require.Equal(t, http.StatusOK, w.Code)

	type listData struct {
		Entries []domain.Entry `json:"entries"`
	}

	w = doRequest(t, http.MethodGet, "/entries?limit=10", tokens[1], nil)
	require.Equal(t, http.StatusOK, w.Code)

	listRes := web.Response{Data: &listData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listRes))
	require.Empty(t, listRes.Data.(*listData).Entries)

	w = doRequest(t, http.MethodGet, "/entries?limit=10", tokens[0], nil)
	require.Equal(t, http.StatusOK, w.Code)

	listRes = web.Response{Data: &listData{}}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&listRes))
	require.Len(t, listRes.Data.(*listData).Entries, 1)
}
