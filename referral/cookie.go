package referral

import (
	"github.com/gin-gonic/gin"
)

// CookieStore persists values as long-lived cookies on the visitor's
// browser. One instance is bound to a single request/response pair; Set
// writes the cookie on the response, Get reads it from the request.
type CookieStore struct {
	c      *gin.Context
	maxAge int
}

// NewCookieStore wraps the current request. maxAge is in seconds.
func NewCookieStore(c *gin.Context, maxAge int) *CookieStore {
	return &CookieStore{c: c, maxAge: maxAge}
}

func (s *CookieStore) Get(key string) (string, bool) {
	v, err := s.c.Cookie(key)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

func (s *CookieStore) Set(key, value string) {
	s.c.SetCookie(key, value, s.maxAge, "/", "", false, true)
}
