package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type EmployerProfileHandler struct {
	profileUC domain.EmployerProfileUsecase
}

func NewEmployerProfileHandler(public, protected *gin.RouterGroup, employerOnly gin.HandlerFunc, profileUC domain.EmployerProfileUsecase) {
	handler := &EmployerProfileHandler{profileUC: profileUC}

	public.GET("/employer-profiles/user/:userId", handler.GetByUserID)

	mine := protected.Group("/employer-profiles", employerOnly)
	{
		mine.GET("/me", handler.GetMine)
		mine.PUT("/me", handler.Upsert)
		mine.POST("/logo", handler.UploadLogo)
		mine.POST("/cover", handler.UploadCover)
		mine.POST("/locations", handler.AddLocation)
		mine.PATCH("/locations/:id/headquarters", handler.SetHeadquarters)
		mine.DELETE("/locations/:id", handler.DeleteLocation)
	}
}

type EmployerProfileRequest struct {
	CompanyName  *string                     `json:"company_name" binding:"omitempty,min=2,max=100"`
	Website      *string                     `json:"website" binding:"omitempty,url"`
	Industry     *string                     `json:"industry" binding:"omitempty,max=100"`
	CompanySize  *string                     `json:"company_size" binding:"omitempty,company_size"`
	FoundedYear  *int                        `json:"founded_year" binding:"omitempty,min=1800,max_current_year"`
	Description  *string                     `json:"description" binding:"omitempty,max=2000"`
	SocialLinks  *domain.EmployerSocialLinks `json:"social_links"`
	ContactEmail *string                     `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string                     `json:"contact_phone" binding:"omitempty,valid_phone"`
}

type LocationRequest struct {
	Address        string `json:"address" binding:"required,max=200"`
	IsHeadquarters bool   `json:"is_headquarters"`
}

// GetMine godoc
// @Summary      Get my company profile
// @Tags         employer-profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404  {object}  response.Response
// @Router       /employer-profiles/me [get]
// @Security     BearerAuth
func (h *EmployerProfileHandler) GetMine(c *gin.Context) {
	profile, err := h.profileUC.GetMine(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile", profile)
}

// Upsert godoc
// @Summary      Create or update my company profile
// @Description  company_name is required when the profile is first created
// @Tags         employer-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      EmployerProfileRequest  true  "Company fields"
// @Success      200   {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400   {object}  response.Response
// @Router       /employer-profiles/me [put]
// @Security     BearerAuth
func (h *EmployerProfileHandler) Upsert(c *gin.Context) {
	var req EmployerProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.profileUC.Upsert(c.Request.Context(), callerID(c), domain.EmployerProfileUpdate{
		CompanyName:  req.CompanyName,
		Website:      req.Website,
		Industry:     req.Industry,
		CompanySize:  req.CompanySize,
		FoundedYear:  req.FoundedYear,
		Description:  req.Description,
		SocialLinks:  req.SocialLinks,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile saved", profile)
}

// GetByUserID godoc
// @Summary      Public company page
// @Tags         employer-profiles
// @Produce      json
// @Param        userId  path      string  true  "Employer user ID"
// @Success      200     {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404     {object}  response.Response
// @Router       /employer-profiles/user/{userId} [get]
func (h *EmployerProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileUC.GetByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile", profile)
}

// UploadLogo godoc
// @Summary      Upload company logo
// @Tags         employer-profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Logo image"
// @Success      200    {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400    {object}  response.Response
// @Router       /employer-profiles/logo [post]
// @Security     BearerAuth
func (h *EmployerProfileHandler) UploadLogo(c *gin.Context) {
	filename, data, ok := readUpload(c, "image", domain.UploadImage)
	if !ok {
		return
	}
	profile, err := h.profileUC.UploadLogo(c.Request.Context(), callerID(c), filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo updated", profile)
}

// UploadCover godoc
// @Summary      Upload company cover image
// @Tags         employer-profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Cover image"
// @Success      200    {object}  response.Response{data=domain.EmployerProfile}
// @Failure      400    {object}  response.Response
// @Router       /employer-profiles/cover [post]
// @Security     BearerAuth
func (h *EmployerProfileHandler) UploadCover(c *gin.Context) {
	filename, data, ok := readUpload(c, "image", domain.UploadImage)
	if !ok {
		return
	}
	profile, err := h.profileUC.UploadCover(c.Request.Context(), callerID(c), filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Cover image updated", profile)
}

// AddLocation godoc
// @Summary      Add an office location
// @Tags         employer-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      LocationRequest  true  "Location"
// @Success      201   {object}  response.Response{data=domain.EmployerProfile}
// @Router       /employer-profiles/locations [post]
// @Security     BearerAuth
func (h *EmployerProfileHandler) AddLocation(c *gin.Context) {
	var req LocationRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.profileUC.AddLocation(c.Request.Context(), callerID(c), req.Address, req.IsHeadquarters)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Location added", profile)
}

// SetHeadquarters godoc
// @Summary      Mark a location as headquarters
// @Tags         employer-profiles
// @Produce      json
// @Param        id   path      string  true  "Location ID"
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404  {object}  response.Response
// @Router       /employer-profiles/locations/{id}/headquarters [patch]
// @Security     BearerAuth
func (h *EmployerProfileHandler) SetHeadquarters(c *gin.Context) {
	profile, err := h.profileUC.SetHeadquarters(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Headquarters updated", profile)
}

// DeleteLocation godoc
// @Summary      Remove an office location
// @Tags         employer-profiles
// @Produce      json
// @Param        id   path      string  true  "Location ID"
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      404  {object}  response.Response
// @Router       /employer-profiles/locations/{id} [delete]
// @Security     BearerAuth
func (h *EmployerProfileHandler) DeleteLocation(c *gin.Context) {
	profile, err := h.profileUC.DeleteLocation(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Location removed", profile)
}
