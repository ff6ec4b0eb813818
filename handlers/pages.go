package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/strimtechdev/academy/catalog"
	"github.com/strimtechdev/academy/monitoring"
	"github.com/strimtechdev/academy/referral"
	"github.com/strimtechdev/academy/registration"
)

// captureReferral resolves the visitor's referral token for this request,
// refreshing the durable cookie when the ref query parameter is present.
func (h *Handlers) captureReferral(c *gin.Context) string {
	store := referral.NewCookieStore(c, h.cfg.ReferralCookieMaxAge)
	return referral.Capture(c.Query(referral.Param), store)
}

func (h *Handlers) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "StudySmart Academy - Master In-Demand Tech Skills",
	})
}

func (h *Handlers) Courses(c *gin.Context) {
	c.HTML(http.StatusOK, "courses.html", gin.H{
		"Title":    "Our Courses - StudySmart Academy",
		"Courses":  catalog.Courses(),
		"Referrer": h.captureReferral(c),
	})
}

// RegisterForm shows the registration dialog for one course.
func (h *Handlers) RegisterForm(c *gin.Context) {
	course, ok := catalog.ByID(c.Query("course"))
	if !ok {
		c.Redirect(http.StatusFound, "/courses")
		return
	}
	form := registration.NewForm(course, h.captureReferral(c))
	h.renderForm(c, form, "")
}

// Register drives the form workflow for one server-rendered submission:
// bind fields, validate, submit through the shared Submitter, and render
// either the confirmation or the form again with the error inline.
func (h *Handlers) Register(c *gin.Context) {
	course, ok := catalog.ByID(c.PostForm("course"))
	if !ok {
		c.Redirect(http.StatusFound, "/courses")
		return
	}

	form := registration.NewForm(course, h.captureReferral(c))
	for _, field := range registration.EditableFields {
		form.Set(field, strings.TrimSpace(c.PostForm(field)))
	}

	outcome := form.Submit(c.Request.Context(), h.submitter.Submit)
	if !outcome.OK {
		if form.ValidationError() != "" {
			monitoring.EnrollmentsTotal.WithLabelValues("invalid").Inc()
		} else {
			monitoring.EnrollmentsTotal.WithLabelValues("rejected").Inc()
		}
		h.renderForm(c, form, outcome.Message)
		return
	}

	monitoring.EnrollmentsTotal.WithLabelValues("accepted").Inc()
	h.notifier.EnrollmentReceived(form.Registration())
	c.HTML(http.StatusOK, "success.html", gin.H{
		"Title":       "Registration Successful!",
		"WhatsAppURL": h.cfg.WhatsAppGroupURL,
	})
}

func (h *Handlers) renderForm(c *gin.Context, form *registration.Form, errMsg string) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title":    "Register for " + form.Course().Title,
		"Course":   form.Course(),
		"Referrer": form.Ref(),
		"Values":   form.Values(),
		"Error":    errMsg,
	})
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
