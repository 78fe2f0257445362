package v1

import (
	"fmt"
	"net/http"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/export"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminOnly gin.HandlerFunc, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin", adminOnly)
	{
		// Dashboard stats
		admin.GET("/stats", handler.GetStats)

		// User management
		admin.GET("/users", handler.ListUsers)
		admin.PATCH("/users/:id/status", handler.UpdateUserStatus)

		// Job moderation
		admin.GET("/jobs", handler.ListJobs)
		admin.PATCH("/jobs/:id/approve", handler.ApproveJob)
		admin.PATCH("/jobs/:id/reject", handler.RejectJob)

		// Spreadsheet exports
		admin.GET("/export/users", handler.ExportUsers)
		admin.GET("/export/jobs", handler.ExportJobs)
	}
}

type UserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func userFilter(c *gin.Context) domain.UserFilter {
	return domain.UserFilter{Role: c.Query("role"), Search: c.Query("search"), Page: queryPage(c)}
}

func adminJobFilter(c *gin.Context) domain.AdminJobFilter {
	return domain.AdminJobFilter{Status: c.Query("status"), Search: c.Query("search"), Page: queryPage(c)}
}

// GetStats godoc
// @Summary      Get admin dashboard statistics
// @Description  Returns counts for users, jobs and applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}

// ListUsers godoc
// @Summary      List all users
// @Description  Returns paginated list of users with optional role filter and name/email search
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Filter by role (admin, employer, candidate, all)"
// @Param        search  query     string  false  "Name or email contains"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Items per page"
// @Success      200     {object}  response.Response{data=domain.PaginatedResult[domain.User]}
// @Failure      403     {object}  response.Response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	result, err := h.adminUC.ListUsers(c.Request.Context(), userFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users list", result)
}

// UpdateUserStatus godoc
// @Summary      Activate or deactivate a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      UserStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/users/{id}/status [patch]
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req UserStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.adminUC.UpdateUserStatus(c.Request.Context(), callerID(c), c.Param("id"), domain.UserStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User status updated", user)
}

// ListJobs godoc
// @Summary      List all jobs
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (pending, approved, rejected, closed, all)"
// @Param        search  query     string  false  "Title or company contains"
// @Param        page    query     int     false  "Page number"
// @Param        limit   query     int     false  "Items per page"
// @Success      200     {object}  response.Response{data=domain.PaginatedResult[domain.Job]}
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	result, err := h.adminUC.ListJobs(c.Request.Context(), adminJobFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs list", result)
}

// ApproveJob godoc
// @Summary      Approve a job listing
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id}/approve [patch]
func (h *AdminHandler) ApproveJob(c *gin.Context) {
	id, ok := int64Param(c, "id", "Job")
	if !ok {
		return
	}
	job, err := h.adminUC.ApproveJob(c.Request.Context(), callerID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job approved", job)
}

// RejectJob godoc
// @Summary      Reject a job listing
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      404  {object}  response.Response
// @Router       /admin/jobs/{id}/reject [patch]
func (h *AdminHandler) RejectJob(c *gin.Context) {
	id, ok := int64Param(c, "id", "Job")
	if !ok {
		return
	}
	job, err := h.adminUC.RejectJob(c.Request.Context(), callerID(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job rejected", job)
}

// ExportUsers godoc
// @Summary      Export users to a spreadsheet
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        role    query  string  false  "Filter by role"
// @Param        search  query  string  false  "Name or email contains"
// @Success      200  {file}  binary
// @Router       /admin/export/users [get]
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	data, err := h.adminUC.ExportUsers(c.Request.Context(), userFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	sendSpreadsheet(c, "users", data)
}

// ExportJobs godoc
// @Summary      Export jobs to a spreadsheet
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by status"
// @Param        search  query  string  false  "Title or company contains"
// @Success      200  {file}  binary
// @Router       /admin/export/jobs [get]
func (h *AdminHandler) ExportJobs(c *gin.Context) {
	data, err := h.adminUC.ExportJobs(c.Request.Context(), adminJobFilter(c))
	if err != nil {
		c.Error(err)
		return
	}
	sendSpreadsheet(c, "jobs", data)
}

func sendSpreadsheet(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentTypeXLSX, data)
}
