package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistUC domain.WishlistUsecase
}

func NewWishlistHandler(protected *gin.RouterGroup, candidateOnly gin.HandlerFunc, wishlistUC domain.WishlistUsecase) {
	handler := &WishlistHandler{wishlistUC: wishlistUC}

	wishlist := protected.Group("/wishlist", candidateOnly)
	{
		wishlist.GET("", handler.List)
		wishlist.POST("", handler.Add)
		wishlist.GET("/check/:jobId", handler.Check)
		wishlist.DELETE("/:jobId", handler.Remove)
	}
}

type WishlistRequest struct {
	JobID int64 `json:"job_id" binding:"required,gt=0"`
}

// List godoc
// @Summary      Saved jobs
// @Tags         wishlist
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.WishlistEntry}
// @Router       /wishlist [get]
// @Security     BearerAuth
func (h *WishlistHandler) List(c *gin.Context) {
	entries, err := h.wishlistUC.List(c.Request.Context(), callerID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Wishlist", entries)
}

// Add godoc
// @Summary      Save a job
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Param        body  body      WishlistRequest  true  "Job"
// @Success      201   {object}  response.Response{data=domain.WishlistEntry}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /wishlist [post]
// @Security     BearerAuth
func (h *WishlistHandler) Add(c *gin.Context) {
	var req WishlistRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.wishlistUC.Add(c.Request.Context(), callerID(c), req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", entry)
}

// Check godoc
// @Summary      Is a job saved
// @Tags         wishlist
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Router       /wishlist/check/{jobId} [get]
// @Security     BearerAuth
func (h *WishlistHandler) Check(c *gin.Context) {
	jobID, ok := int64Param(c, "jobId", "Job")
	if !ok {
		return
	}
	saved, err := h.wishlistUC.Check(c.Request.Context(), callerID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Wishlist status", gin.H{"in_wishlist": saved})
}

// Remove godoc
// @Summary      Unsave a job
// @Tags         wishlist
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /wishlist/{jobId} [delete]
// @Security     BearerAuth
func (h *WishlistHandler) Remove(c *gin.Context) {
	jobID, ok := int64Param(c, "jobId", "Job")
	if !ok {
		return
	}
	if err := h.wishlistUC.Remove(c.Request.Context(), callerID(c), jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from wishlist", nil)
}
