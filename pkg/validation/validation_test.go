package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string   `validate:"required,max=5"`
	JobType   []string `validate:"min=1,dive,job_type"`
	Level     string   `validate:"skill_level"`
	Phone     string   `validate:"valid_phone"`
	SizeRange string   `validate:"company_size"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidator()

	ok := sample{Name: "Ann", JobType: []string{"Remote"}, Level: "Expert", Phone: "+84 912 345 678", SizeRange: "11-50"}
	assert.NoError(t, v.Struct(ok))

	bad := sample{Name: "Annabelle", JobType: []string{"Gig"}, Level: "Guru", Phone: "abc", SizeRange: "2"}
	err := v.Struct(bad)
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Len(t, msgs, 5)
	assert.Contains(t, msgs, "Name: must be at most 5 characters")
	assert.Contains(t, msgs, "Level: must be one of: Beginner, Intermediate, Advanced, Expert")
}

func TestFormatNonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}

func TestFormatCamelCase(t *testing.T) {
	assert.Equal(t, "Salary Min", formatCamelCase("SalaryMin"))
}
