package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the body into req and reports field errors as a 400.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return false
	}
	return true
}

func callerID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

func caller(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: callerID(c),
		Role:   domain.Role(c.GetString(string(domain.KeyUserRole))),
	}
}

// optionalCaller is nil for anonymous requests.
func optionalCaller(c *gin.Context) *domain.Actor {
	if callerID(c) == "" {
		return nil
	}
	a := caller(c)
	return &a
}

// int64Param parses a numeric path id. Malformed ids are reported as a
// missing resource.
func int64Param(c *gin.Context, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.NotFound(resource + " not found"))
		return 0, false
	}
	return id, true
}

// readUpload reads a multipart file field, refusing anything over the size
// limit for kind before it is fully buffered.
func readUpload(c *gin.Context, field string, kind domain.UploadKind) (string, []byte, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			c.Error(apperror.BadRequest("Please upload a file"))
		} else {
			c.Error(apperror.BadRequest("Invalid upload"))
		}
		return "", nil, false
	}

	limit := security.MaxUploadSize(security.UploadKind(kind))
	if header.Size > limit {
		if kind == domain.UploadResume {
			c.Error(apperror.BadRequest("File size cannot exceed 5MB"))
		} else {
			c.Error(apperror.BadRequest("Image size cannot exceed 2MB"))
		}
		return "", nil, false
	}

	f, err := header.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return "", nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return "", nil, false
	}
	return header.Filename, data, true
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

func queryPage(c *gin.Context) domain.Page {
	return domain.Page{Page: queryInt(c, "page"), Limit: queryInt(c, "limit")}
}

// parseDate accepts "2006-01-02" or RFC 3339. Empty input yields nil.
func parseDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperror.BadRequest(field + " must be a date (YYYY-MM-DD)")
}
