package v1

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, protected *gin.RouterGroup, optionalAuth, employerOnly gin.HandlerFunc, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - only open, approved postings
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/latest", handler.Latest)
		publicJobs.GET("/popular", handler.Popular)
		publicJobs.GET("/:id", optionalAuth, handler.GetDetails)
	}

	// Employer routes; ownership is checked in the usecase
	employerJobs := protected.Group("/jobs", employerOnly)
	{
		employerJobs.GET("/employer/me", handler.ListMine)
		employerJobs.POST("", handler.Create)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.DELETE("/:id", handler.Delete)
		employerJobs.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type SalaryRequest struct {
	Min          *float64 `json:"min" binding:"omitempty,gte=0"`
	Max          *float64 `json:"max" binding:"omitempty,gte=0"`
	Currency     string   `json:"currency" binding:"omitempty,len=3"`
	IsNegotiable bool     `json:"is_negotiable"`
}

type JobRequest struct {
	Title        string        `json:"title" binding:"required,max=100"`
	Description  string        `json:"description" binding:"required"`
	Requirements string        `json:"requirements" binding:"required"`
	Benefits     string        `json:"benefits"`
	JobType      []string      `json:"job_type" binding:"required,min=1,dive,job_type"`
	Location     string        `json:"location" binding:"required"`
	Salary       SalaryRequest `json:"salary"`
	Skills       []string      `json:"skills" binding:"omitempty,dive,max=50"`
	Experience   string        `json:"experience" binding:"omitempty,experience_level"`
	Education    string        `json:"education" binding:"omitempty,education_level"`
	Deadline     string        `json:"deadline" binding:"required"`
	Status       string        `json:"status" binding:"omitempty,oneof=draft pending open closed"`
}

type JobStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft pending open closed"`
}

func (r JobRequest) input() (domain.JobInput, error) {
	deadline, err := parseDate("deadline", r.Deadline)
	if err != nil {
		return domain.JobInput{}, err
	}
	return domain.JobInput{
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
		JobType:      r.JobType,
		Location:     r.Location,
		Salary: domain.Salary{
			Min:          r.Salary.Min,
			Max:          r.Salary.Max,
			Currency:     strings.ToUpper(r.Salary.Currency),
			IsNegotiable: r.Salary.IsNegotiable,
		},
		Skills:     r.Skills,
		Experience: r.Experience,
		Education:  r.Education,
		Deadline:   *deadline,
		Status:     domain.JobStatus(r.Status),
	}, nil
}

// Search godoc
// @Summary      Search jobs
// @Description  Public search over open, approved jobs. Keyword matches are ranked by relevance, everything else newest first.
// @Tags         jobs
// @Produce      json
// @Param        keyword     query     string  false  "Full-text keyword"
// @Param        location    query     string  false  "Location substring"
// @Param        jobType     query     string  false  "Comma separated job types"
// @Param        experience  query     string  false  "Experience level"
// @Param        education   query     string  false  "Education level"
// @Param        minSalary   query     number  false  "Minimum salary"
// @Param        maxSalary   query     number  false  "Maximum salary"
// @Param        salaryMin   query     number  false  "Alias of minSalary"
// @Param        salaryMax   query     number  false  "Alias of maxSalary"
// @Param        page        query     int     false  "Page number"
// @Param        limit       query     int     false  "Page size (max 100)"
// @Success      200         {object}  response.Response{data=domain.PaginatedResult[domain.Job]}
// @Router       /jobs [get]
func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobFilter{
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		Location:   strings.TrimSpace(c.Query("location")),
		Experience: c.Query("experience"),
		Education:  c.Query("education"),
		Page:       queryPage(c),
	}
	for _, v := range c.QueryArray("jobType") {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.JobType = append(filter.JobType, t)
			}
		}
	}
	var ok bool
	if filter.MinSalary, ok = querySalary(c, "minSalary", "salaryMin"); !ok {
		return
	}
	if filter.MaxSalary, ok = querySalary(c, "maxSalary", "salaryMax"); !ok {
		return
	}

	result, err := h.jobUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", result)
}

// Latest godoc
// @Summary      Latest jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs/latest [get]
func (h *JobHandler) Latest(c *gin.Context) {
	jobs, err := h.jobUC.Latest(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Latest jobs", jobs)
}

// Popular godoc
// @Summary      Most viewed jobs
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Job}
// @Router       /jobs/popular [get]
func (h *JobHandler) Popular(c *gin.Context) {
	jobs, err := h.jobUC.Popular(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Popular jobs", jobs)
}

// GetDetails godoc
// @Summary      Job details
// @Description  Open, approved jobs are public. Owners and admins can read any status. Reads by anyone but the owner count as a view.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := int64Param(c, "id", "Job")
	if !ok {
		return
	}
	job, err := h.jobUC.Get(c.Request.Context(), optionalCaller(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// ListMine godoc
// @Summary      My job postings
// @Description  Every posting of the current employer regardless of status
// @Tags         jobs
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=domain.PaginatedResult[domain.Job]}
// @Router       /jobs/employer/me [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	result, err := h.jobUC.ListMine(c.Request.Context(), callerID(c), queryPage(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My jobs", result)
}

// Create godoc
// @Summary      Create a new job
// @Description  Requires a company profile. Asking for "open" submits the job for review.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		c.Error(err)
		return
	}
	job, err := h.jobUC.Create(c.Request.Context(), callerID(c), in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := int64Param(c, "id", "Job")
	if !ok {
		return
	}
	var req JobRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		c.Error(err)
		return
	}
	job, err := h.jobUC.Update(c.Request.Context(), callerID(c), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// UpdateStatus godoc
// @Summary      Change job status
// @Description  "open" is only honored for approved jobs; otherwise the job goes to review as "pending".
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      JobStatusRequest  true  "Status"
// @Success      200   {object}  response.Response{data=domain.Job}
// @Router       /jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, ok := int64Param(c, "id", "Job")
	if !ok {
		return
	}
	var req JobStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobUC.UpdateStatus(c.Request.Context(), callerID(c), id, domain.JobStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Also removes its applications and wishlist entries
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := int64Param(c, "id", "Job")
	if !ok {
		return
	}
	if err := h.jobUC.Delete(c.Request.Context(), callerID(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// querySalary reads the first of keys that is present.
func querySalary(c *gin.Context, keys ...string) (*float64, bool) {
	for _, key := range keys {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			c.Error(apperror.BadRequest(key + " must be a non-negative number"))
			return nil, false
		}
		return &v, true
	}
	return nil, true
}
