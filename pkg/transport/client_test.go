package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk/pkg/serrors"
)

type wireEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0, nil)
}

func TestGet_BareEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/events", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`[{"id":"1","title":"standup"}]`))
	})

	resp, err := Get[[]wireEvent](context.Background(), c, "/events", Bare())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	require.Equal(t, "standup", resp.Data[0].Title)
	require.Equal(t, http.StatusOK, resp.Meta.Status)
	require.NotEmpty(t, resp.Meta.RequestID)
}

func TestGet_DataEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"9","title":"retro"}}`))
	})

	resp, err := Get[wireEvent](context.Background(), c, "/events/9", DataField())
	require.NoError(t, err)
	require.Equal(t, "retro", resp.Data.Title)
}

func TestGet_NamedEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"events":[{"id":"1"},{"id":"2"}]}`))
	})

	resp, err := Get[[]wireEvent](context.Background(), c, "/events", Named("events"))
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
}

func TestGet_NamedEnvelopeSuccessFalse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"backend said no"}`))
	})

	_, err := Get[[]wireEvent](context.Background(), c, "/events", Named("events"))
	require.Error(t, err)
	require.Equal(t, "backend said no", serrors.Message(err))
}

func TestPost_SendsJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"new","title":"created"}`))
	})

	resp, err := Post[wireEvent](context.Background(), c, "/events", map[string]string{"title": "created"}, Bare())
	require.NoError(t, err)
	require.Equal(t, "new", resp.Data.ID)
	require.Equal(t, http.StatusCreated, resp.Meta.Status)
}

func TestErrorNormalization_MessageBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database is down"}`))
	})

	_, err := Get[[]wireEvent](context.Background(), c, "/events", Bare())
	require.Error(t, err)
	require.Equal(t, serrors.CodeRequestFailed, serrors.Code(err))
	require.Equal(t, "database is down", serrors.Message(err))
}

func TestErrorNormalization_NotFoundIsEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No holidays found"}`))
	})

	_, err := Get[[]wireEvent](context.Background(), c, "/holidays", Bare())
	require.Error(t, err)
	require.True(t, serrors.IsEmptyResult(err))
}

func TestErrorNormalization_EmptyMessagePatternWithoutStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"no announcements found for this month"}`))
	})

	_, err := Get[[]wireEvent](context.Background(), c, "/announcements", Bare())
	require.True(t, serrors.IsEmptyResult(err))
}

func TestErrorNormalization_StructuredCodeWins(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"nothing for you","code":"EMPTY_RESULT"}`))
	})

	_, err := Get[[]wireEvent](context.Background(), c, "/tickets", Bare())
	require.True(t, serrors.IsEmptyResult(err))
}

func TestErrorNormalization_NetworkFailure(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 0, nil)
	_, err := Get[[]wireEvent](context.Background(), c, "/events", Bare())
	require.Error(t, err)
	require.Equal(t, serrors.CodeTransport, serrors.Code(err))
}

func TestDecode_NullPayloadYieldsZero(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	resp, err := Get[[]wireEvent](context.Background(), c, "/events", DataField())
	require.NoError(t, err)
	require.Nil(t, resp.Data)
}
