package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, candidateOnly, employerOnly gin.HandlerFunc, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		// Candidate routes
		apps.POST("", candidateOnly, handler.Apply)
		apps.GET("/candidate", candidateOnly, handler.ListMine)

		// Employer routes
		apps.GET("/job/:jobId", employerOnly, handler.ListForJob)
		apps.PATCH("/:id/status", employerOnly, handler.UpdateStatus)
		apps.POST("/:id/notes", employerOnly, handler.AddNote)

		// Applicant, owning employer or admin
		apps.GET("/:id", handler.Get)
	}
}

// ApplyRequest is the request payload for applying to a job
type ApplyRequest struct {
	JobID       int64  `json:"job_id" binding:"required,gt=0"`
	CoverLetter string `json:"cover_letter" binding:"max=5000"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,app_status"`
	Note   string `json:"note" binding:"max=1000"`
}

type NoteRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submits the résumé on the candidate's profile to an open job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.applicationUC.Apply(c.Request.Context(), callerID(c), req.JobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      My applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications/candidate [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListMine(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My applications", apps)
}

// ListForJob godoc
// @Summary      Applications for a job
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.Application}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /applications/job/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, ok := int64Param(c, "jobId", "Job")
	if !ok {
		return
	}
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), callerID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job applications", apps)
}

// Get godoc
// @Summary      Application details
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id", "Application")
	if !ok {
		return
	}
	app, err := h.applicationUC.Get(c.Request.Context(), caller(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", app)
}

// UpdateStatus godoc
// @Summary      Move an application
// @Description  Any status may be set. The candidate is emailed when the status actually changes.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      ApplicationStatusRequest  true  "Status and optional note"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := int64Param(c, "id", "Application")
	if !ok {
		return
	}
	var req ApplicationStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), callerID(c), id, domain.ApplicationStatus(req.Status), req.Note)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}

// AddNote godoc
// @Summary      Add an employer note
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Application ID"
// @Param        body  body      NoteRequest  true  "Note"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Router       /applications/{id}/notes [post]
// @Security     BearerAuth
func (h *ApplicationHandler) AddNote(c *gin.Context) {
	id, ok := int64Param(c, "id", "Application")
	if !ok {
		return
	}
	var req NoteRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.applicationUC.AddNote(c.Request.Context(), callerID(c), id, req.Text)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Note added", app)
}
