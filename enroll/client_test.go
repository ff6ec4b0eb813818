package enroll

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strimtechdev/academy/registration"
)

func validReg() registration.Registration {
	return registration.Registration{
		Firstname:   "Ada",
		Lastname:    "Obi",
		Email:       "ada@example.com",
		PhoneNumber: "08012345678",
		State:       "Lagos",
		CourseID:    "UI/UX DESIGN TRAINING",
		Ref:         "carol",
	}
}

func TestSubmitSuccessReturnsBodyVerbatim(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"enrollmentId":"e-42","status":"pending"}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL).Submit(context.Background(), validReg())
	require.NoError(t, err)
	assert.JSONEq(t, `{"enrollmentId":"e-42","status":"pending"}`, string(body))

	assert.Equal(t, "UI/UX DESIGN TRAINING", gotBody["courseId"])
	assert.Equal(t, "carol", gotBody["ref"])
}

func TestSubmitRejectionUsesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Email already registered"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Submit(context.Background(), validReg())
	require.Error(t, err)

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Equal(t, "Email already registered", se.Message)
}

func TestSubmitRejectionWithoutMessageFallsBack(t *testing.T) {
	for _, body := range []string{`{}`, `not json`, ``, `{"message":""}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(body))
		}))

		_, err := NewClient(srv.URL).Submit(context.Background(), validReg())
		require.Error(t, err)

		var se *Error
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusBadGateway, se.Status)
		assert.Equal(t, MsgRejected, se.Message)
		srv.Close()
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := NewClient(srv.URL).Submit(context.Background(), validReg())
	require.Error(t, err)

	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Zero(t, se.Status, "transport failures carry no backend status")
	assert.Equal(t, MsgTransport, se.Message)
}

func TestSubmitHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).Submit(ctx, validReg())
	require.Error(t, err)
}
