package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcast/entities"
	"cropcast/pkg/recommend"
)

func TestBearerHeaderAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/farms", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]entities.Farm{{ID: "f1", Name: "North"}})
	}))
	defer srv.Close()

	farms, err := New(srv.URL, StaticToken("tok")).ListFarms(context.Background())
	require.NoError(t, err)
	require.Len(t, farms, 1)
	assert.Equal(t, "North", farms[0].Name)
}

func TestNoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "t", "user": map[string]string{"id": "u1"}})
	}))
	defer srv.Close()

	res, err := New(srv.URL, nil).DevLogin(context.Background(), "a@b.co", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "t", res.AccessToken)
	assert.Equal(t, "u1", res.User.ID)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Field ID and soil type are required"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Recommend(context.Background(), recommend.Request{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Field ID and soil type are required", apiErr.Message)
}

func TestAPIErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Chat(context.Background(), "hi")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestQueryParams(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.RequestURI())
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.ListCrops(context.Background(), "f1", 3)
	require.NoError(t, err)
	_, err = c.ChatHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"/farms/f1/crops?limit=3", "/chat/messages"}, got)
}

func TestDeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL, nil).DeleteFarm(context.Background(), "f1"))
}

func TestExportFileName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="north-report.xlsx"`)
		_, _ = w.Write([]byte("PK"))
	}))
	defer srv.Close()

	b, name, err := New(srv.URL, nil).ExportFarm(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "north-report.xlsx", name)
	assert.Equal(t, []byte("PK"), b)
}

func TestReminderCompletePatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["is_completed"])
		_, _ = w.Write([]byte(`{"id":"r1","is_completed":true,"past_due":false}`))
	}))
	defer srv.Close()

	v, err := New(srv.URL, nil).SetReminderCompleted(context.Background(), "r1", true)
	require.NoError(t, err)
	assert.True(t, v.IsCompleted)
}

func TestListsDecodeItemsAndFailWithNil(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	}))
	defer srv.Close()
	c := New(srv.URL, StaticToken("tok"))
	ctx := context.Background()

	lists := map[string]func() (int, error){
		"farms":     func() (int, error) { v, err := c.ListFarms(ctx); return len(v), err },
		"fields":    func() (int, error) { v, err := c.ListFields(ctx, "f1"); return len(v), err },
		"crops":     func() (int, error) { v, err := c.ListCrops(ctx, "f1", 0); return len(v), err },
		"reminders": func() (int, error) { v, err := c.ListReminders(ctx); return len(v), err },
		"chat":      func() (int, error) { v, err := c.ChatHistory(ctx, 10); return len(v), err },
	}
	for name, list := range lists {
		fail = false
		n, err := list()
		require.NoError(t, err, name)
		assert.Equal(t, 2, n, name)

		fail = true
		n, err = list()
		assert.Error(t, err, name)
		assert.Zero(t, n, name)
	}

	fail = true
	farms, err := c.ListFarms(ctx)
	assert.Error(t, err)
	assert.Nil(t, farms)
}
