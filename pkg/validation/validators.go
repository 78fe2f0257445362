package validation

import (
	"regexp"
	"time"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// E164-like phone: optional +, digits and common separators, 7-20 chars
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

var (
	jobTypes     = set("Full-time", "Part-time", "Contract", "Internship", "Remote")
	skillLevels  = set("Beginner", "Intermediate", "Advanced", "Expert")
	companySizes = set("1-10", "11-50", "51-200", "201-500", "501-1000", "1000+")
	experiences  = set("No experience", "Less than 1 year", "1-3 years", "3-5 years", "5-10 years", "More than 10 years")
	educations   = set("High School", "Associate Degree", "Bachelor's Degree", "Master's Degree", "Doctorate", "Not Required")
	appStatuses  = set("pending", "reviewed", "shortlisted", "interview", "hired", "rejected")
)

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("max_current_year", MaxCurrentYear)
	_ = v.RegisterValidation("job_type", enum(jobTypes))
	_ = v.RegisterValidation("skill_level", enum(skillLevels))
	_ = v.RegisterValidation("company_size", enum(companySizes))
	_ = v.RegisterValidation("experience_level", enum(experiences))
	_ = v.RegisterValidation("education_level", enum(educations))
	_ = v.RegisterValidation("app_status", enum(appStatuses))
}

// RegisterBindingValidators installs the custom tags on gin's default
// validator so binding tags like "job_type" work in request structs.
func RegisterBindingValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// enum accepts empty strings (use required for mandatory fields) and members of allowed.
func enum(allowed map[string]bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		return val == "" || allowed[val]
	}
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 || unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// MaxCurrentYear validates that a year field does not exceed the current year
func MaxCurrentYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	if year == 0 {
		return true
	}
	return year <= int64(time.Now().Year())
}
