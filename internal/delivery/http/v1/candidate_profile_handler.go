package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateProfileHandler struct {
	profileUC domain.CandidateProfileUsecase
}

func NewCandidateProfileHandler(protected *gin.RouterGroup, candidateOnly gin.HandlerFunc, viewers gin.HandlerFunc, profileUC domain.CandidateProfileUsecase) {
	handler := &CandidateProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/candidate-profiles")
	profiles.GET("/user/:userId", viewers, handler.GetByUserID)

	mine := profiles.Group("", candidateOnly)
	{
		mine.GET("/me", handler.GetMine)
		mine.PUT("/me", handler.Upsert)
		mine.POST("/education", handler.AddEducation)
		mine.DELETE("/education/:id", handler.DeleteEducation)
		mine.POST("/experience", handler.AddExperience)
		mine.DELETE("/experience/:id", handler.DeleteExperience)
		mine.POST("/skills", handler.AddSkill)
		mine.DELETE("/skills/:id", handler.DeleteSkill)
		mine.POST("/resume", handler.UploadResume)
	}
}

type CandidateProfileRequest struct {
	DateOfBirth    *string                      `json:"date_of_birth"`
	Phone          *string                      `json:"phone" binding:"omitempty,valid_phone"`
	Address        *string                      `json:"address" binding:"omitempty,max=200"`
	Bio            *string                      `json:"bio" binding:"omitempty,max=1000"`
	Headline       *string                      `json:"headline" binding:"omitempty,max=100"`
	SocialLinks    *domain.CandidateSocialLinks `json:"social_links"`
	JobPreferences *JobPreferencesRequest       `json:"job_preferences"`
}

type JobPreferencesRequest struct {
	JobType        []string `json:"job_type" binding:"omitempty,dive,job_type"`
	ExpectedSalary *float64 `json:"expected_salary" binding:"omitempty,gte=0"`
	Location       string   `json:"location"`
	Industries     []string `json:"industries"`
}

type EducationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"field_of_study"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description" binding:"max=1000"`
}

type ExperienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description" binding:"max=1000"`
}

type SkillRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Level string `json:"level" binding:"omitempty,skill_level"`
}

// GetMine godoc
// @Summary      Get my candidate profile
// @Tags         candidate-profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/me [get]
// @Security     BearerAuth
func (h *CandidateProfileHandler) GetMine(c *gin.Context) {
	profile, err := h.profileUC.GetMine(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// Upsert godoc
// @Summary      Create or update my candidate profile
// @Description  Only the fields present in the body are changed
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      CandidateProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Router       /candidate-profiles/me [put]
// @Security     BearerAuth
func (h *CandidateProfileHandler) Upsert(c *gin.Context) {
	var req CandidateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	in := domain.CandidateProfileUpdate{
		Phone:       req.Phone,
		Address:     req.Address,
		Bio:         req.Bio,
		Headline:    req.Headline,
		SocialLinks: req.SocialLinks,
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate("date_of_birth", *req.DateOfBirth)
		if err != nil {
			c.Error(err)
			return
		}
		in.DateOfBirth = dob
	}
	if p := req.JobPreferences; p != nil {
		in.JobPreferences = &domain.JobPreferences{
			JobType:        p.JobType,
			ExpectedSalary: p.ExpectedSalary,
			Location:       p.Location,
			Industries:     p.Industries,
		}
	}

	profile, err := h.profileUC.Upsert(c.Request.Context(), callerID(c), in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile saved", profile)
}

// GetByUserID godoc
// @Summary      Get a candidate profile
// @Description  Employers and admins can read any candidate; candidates only themselves
// @Tags         candidate-profiles
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=domain.CandidateProfile}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /candidate-profiles/user/{userId} [get]
// @Security     BearerAuth
func (h *CandidateProfileHandler) GetByUserID(c *gin.Context) {
	profile, err := h.profileUC.GetByUserID(c.Request.Context(), caller(c), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      EducationRequest  true  "Education"
// @Success      201   {object}  response.Response{data=domain.CandidateProfile}
// @Router       /candidate-profiles/education [post]
// @Security     BearerAuth
func (h *CandidateProfileHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if !bindJSON(c, &req) {
		return
	}
	from, to, ok := dateRange(c, req.From, req.To)
	if !ok {
		return
	}
	profile, err := h.profileUC.AddEducation(c.Request.Context(), callerID(c), domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education added", profile)
}

// DeleteEducation godoc
// @Summary      Remove an education entry
// @Tags         candidate-profiles
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      404  {object}  response.Response
// @Router       /candidate-profiles/education/{id} [delete]
// @Security     BearerAuth
func (h *CandidateProfileHandler) DeleteEducation(c *gin.Context) {
	profile, err := h.profileUC.DeleteEducation(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education removed", profile)
}

// AddExperience godoc
// @Summary      Add an experience entry
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      ExperienceRequest  true  "Experience"
// @Success      201   {object}  response.Response{data=domain.CandidateProfile}
// @Router       /candidate-profiles/experience [post]
// @Security     BearerAuth
func (h *CandidateProfileHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if !bindJSON(c, &req) {
		return
	}
	from, to, ok := dateRange(c, req.From, req.To)
	if !ok {
		return
	}
	profile, err := h.profileUC.AddExperience(c.Request.Context(), callerID(c), domain.Experience{
		Company:     req.Company,
		Position:    req.Position,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", profile)
}

// DeleteExperience godoc
// @Summary      Remove an experience entry
// @Tags         candidate-profiles
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Router       /candidate-profiles/experience/{id} [delete]
// @Security     BearerAuth
func (h *CandidateProfileHandler) DeleteExperience(c *gin.Context) {
	profile, err := h.profileUC.DeleteExperience(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience removed", profile)
}

// AddSkill godoc
// @Summary      Add a skill
// @Tags         candidate-profiles
// @Accept       json
// @Produce      json
// @Param        body  body      SkillRequest  true  "Skill"
// @Success      201   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Router       /candidate-profiles/skills [post]
// @Security     BearerAuth
func (h *CandidateProfileHandler) AddSkill(c *gin.Context) {
	var req SkillRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.profileUC.AddSkill(c.Request.Context(), callerID(c), domain.Skill{
		Name:  req.Name,
		Level: domain.SkillLevel(req.Level),
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added", profile)
}

// DeleteSkill godoc
// @Summary      Remove a skill
// @Tags         candidate-profiles
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Router       /candidate-profiles/skills/{id} [delete]
// @Security     BearerAuth
func (h *CandidateProfileHandler) DeleteSkill(c *gin.Context) {
	profile, err := h.profileUC.DeleteSkill(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", profile)
}

// UploadResume godoc
// @Summary      Upload résumé
// @Description  PDF, DOC or DOCX up to 5MB
// @Tags         candidate-profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Résumé file"
// @Success      200     {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400     {object}  response.Response
// @Failure      429     {object}  response.Response
// @Router       /candidate-profiles/resume [post]
// @Security     BearerAuth
func (h *CandidateProfileHandler) UploadResume(c *gin.Context) {
	filename, data, ok := readUpload(c, "resume", domain.UploadResume)
	if !ok {
		return
	}
	profile, err := h.profileUC.UploadResume(c.Request.Context(), callerID(c), filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume uploaded", profile)
}

func dateRange(c *gin.Context, fromValue, toValue string) (time.Time, *time.Time, bool) {
	from, err := parseDate("from", fromValue)
	if err != nil {
		c.Error(err)
		return time.Time{}, nil, false
	}
	to, err := parseDate("to", toValue)
	if err != nil {
		c.Error(err)
		return time.Time{}, nil, false
	}
	return *from, to, true
}
