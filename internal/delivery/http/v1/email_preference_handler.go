package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EmailPreferenceHandler struct {
	preferenceUC domain.EmailPreferenceUsecase
	frontendURL  string
}

func NewEmailPreferenceHandler(public, protected *gin.RouterGroup, preferenceUC domain.EmailPreferenceUsecase, frontendURL string) {
	handler := &EmailPreferenceHandler{preferenceUC: preferenceUC, frontendURL: frontendURL}

	public.GET("/email-preferences/unsubscribe/:token", handler.Unsubscribe)

	prefs := protected.Group("/email-preferences")
	{
		prefs.GET("", handler.Get)
		prefs.PUT("", handler.Update)
	}
}

type EmailPreferenceRequest struct {
	ApplicationUpdates    *bool `json:"application_updates"`
	NewApplications       *bool `json:"new_applications"`
	WeeklyRecommendations *bool `json:"weekly_recommendations"`
	MarketingEmails       *bool `json:"marketing_emails"`
}

// Get godoc
// @Summary      My email preferences
// @Description  Defaults are created on first read
// @Tags         email-preferences
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmailPreference}
// @Router       /email-preferences [get]
// @Security     BearerAuth
func (h *EmailPreferenceHandler) Get(c *gin.Context) {
	pref, err := h.preferenceUC.Get(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email preferences", pref)
}

// Update godoc
// @Summary      Update email preferences
// @Tags         email-preferences
// @Accept       json
// @Produce      json
// @Param        body  body      EmailPreferenceRequest  true  "Flags to change"
// @Success      200   {object}  response.Response{data=domain.EmailPreference}
// @Router       /email-preferences [put]
// @Security     BearerAuth
func (h *EmailPreferenceHandler) Update(c *gin.Context) {
	var req EmailPreferenceRequest
	if !bindJSON(c, &req) {
		return
	}
	pref, err := h.preferenceUC.Update(c.Request.Context(), callerID(c), domain.EmailPreferenceUpdate{
		ApplicationUpdates:    req.ApplicationUpdates,
		NewApplications:       req.NewApplications,
		WeeklyRecommendations: req.WeeklyRecommendations,
		MarketingEmails:       req.MarketingEmails,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email preferences updated", pref)
}

// Unsubscribe godoc
// @Summary      One-click unsubscribe
// @Description  Turns off every email category and redirects to the frontend
// @Tags         email-preferences
// @Param        token  path  string  true  "Unsubscribe token"
// @Success      302
// @Failure      404  {object}  response.Response
// @Router       /email-preferences/unsubscribe/{token} [get]
func (h *EmailPreferenceHandler) Unsubscribe(c *gin.Context) {
	if err := h.preferenceUC.Unsubscribe(c.Request.Context(), c.Param("token")); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, h.frontendURL+"/unsubscribe-success")
}
