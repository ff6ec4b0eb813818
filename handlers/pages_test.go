package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strimtechdev/academy/enroll"
	"github.com/strimtechdev/academy/referral"
)

func getPage(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func postRegister(r http.Handler, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	r.ServeHTTP(w, req)
	return w
}

func validForm() url.Values {
	return url.Values{
		"course":      {"course-1"},
		"firstname":   {"Ada"},
		"lastname":    {"Obi"},
		"email":       {"ada@example.com"},
		"phoneNumber": {"08012345678"},
		"state":       {"Lagos"},
	}
}

func TestCoursesCapturesReferralFromQuery(t *testing.T) {
	r := newTestRouter(t, &stubSubmitter{})

	w := getPage(r, "/courses?ref=alice123")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ref=alice123")
	assert.Contains(t, w.Body.String(), "count=8")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, referral.StorageKey, cookies[0].Name)
	assert.Equal(t, "alice123", cookies[0].Value)
}

func TestCoursesFallsBackToStoredReferral(t *testing.T) {
	r := newTestRouter(t, &stubSubmitter{})

	w := getPage(r, "/courses",
		&http.Cookie{Name: referral.StorageKey, Value: "bob456"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ref=bob456")
	assert.Empty(t, w.Result().Cookies(), "stored value reused without rewrite")
}

func TestCoursesQueryOverwritesStoredReferral(t *testing.T) {
	r := newTestRouter(t, &stubSubmitter{})

	w := getPage(r, "/courses?ref=alice123",
		&http.Cookie{Name: referral.StorageKey, Value: "bob456"})

	assert.Contains(t, w.Body.String(), "ref=alice123")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "alice123", cookies[0].Value)
}

func TestRegisterFormUnknownCourseRedirects(t *testing.T) {
	r := newTestRouter(t, &stubSubmitter{})

	w := getPage(r, "/register?course=course-99")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/courses", w.Header().Get("Location"))
}

func TestRegisterFormShowsSelectedCourse(t *testing.T) {
	r := newTestRouter(t, &stubSubmitter{})

	w := getPage(r, "/register?course=course-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "course=course-1")
}

func TestRegisterSuccessShowsCommunityLink(t *testing.T) {
	sub := &stubSubmitter{body: json.RawMessage(`{}`)}
	r := newTestRouter(t, sub)

	w := postRegister(r, validForm(),
		&http.Cookie{Name: referral.StorageKey, Value: "carol"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success link=https://wa.me/2348146020799")

	require.Equal(t, 1, sub.calls)
	assert.Equal(t, "UI/UX DESIGN TRAINING", sub.last.CourseID, "course sent as title")
	assert.Equal(t, "carol", sub.last.Ref)
}

func TestRegisterValidationFailureStaysOnForm(t *testing.T) {
	sub := &stubSubmitter{}
	r := newTestRouter(t, sub)

	form := validForm()
	form.Set("email", "not-an-email")
	w := postRegister(r, form)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "err=Please enter a valid email address.")
	assert.Contains(t, w.Body.String(), "email=not-an-email", "field values retained")
	assert.Zero(t, sub.calls, "no network call on validation failure")
}

func TestRegisterBackendFailureStaysOnForm(t *testing.T) {
	sub := &stubSubmitter{err: &enroll.Error{Status: http.StatusBadRequest, Message: "Email already registered"}}
	r := newTestRouter(t, sub)

	w := postRegister(r, validForm())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "err=Email already registered")
	assert.Contains(t, w.Body.String(), "email=ada@example.com", "field values retained for retry")
}

func TestRegisterUnknownCourseRedirects(t *testing.T) {
	sub := &stubSubmitter{}
	r := newTestRouter(t, sub)

	form := validForm()
	form.Set("course", "course-99")
	w := postRegister(r, form)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Zero(t, sub.calls)
}

func TestHomeRenders(t *testing.T) {
	r := newTestRouter(t, &stubSubmitter{})

	w := getPage(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "index title=")
}
