package http

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/author-haven/models"
)

var validStatuses = []interface{}{models.StatusDraft, models.StatusPublished}

// signupInput is the request body of POST /api/auth/signup.
type signupInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in signupInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Username,
			validation.Required.Error("username_required"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 72).Error("password_length_8_to_72"),
		),
	)
}

// loginInput is the request body of POST /api/auth/login.
type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in loginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// socialInput is the provider profile posted to POST /api/auth/social.
type socialInput struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Emails      []string `json:"emails"`
	Provider    string   `json:"provider"`
}

func (in socialInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.DisplayName,
			validation.Required.Error("display_name_required"),
		),
		validation.Field(&in.Emails,
			validation.Required.Error("emails_required"),
		),
		validation.Field(&in.Provider,
			validation.Required.Error("provider_required"),
		),
	)
}

// resetRequestInput is the request body of POST /api/users/reset.
type resetRequestInput struct {
	Email string `json:"email"`
}

func (in resetRequestInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
	)
}

// updatePasswordInput is the request body of POST /api/update_password/{token}.
// Both fields must carry the same value, a mismatch means the user mistyped
// one of them.
type updatePasswordInput struct {
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (in updatePasswordInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 72).Error("password_length_8_to_72"),
		),
		validation.Field(&in.Password2,
			validation.Required.Error("password_confirmation_required"),
			validation.In(in.Password).Error("passwords_do_not_match"),
		),
	)
}

// articleInput is the request body of POST /api/articles and
// PUT /api/articles/{slug}.
type articleInput struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	TagList []string `json:"tagList"`
	Status  string   `json:"status"`
}

func (in articleInput) Validate() error {
	in.Status = strings.ToLower(in.Status)
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
		validation.Field(&in.Status,
			validation.In(validStatuses...).Error("invalid_status"),
		),
	)
}

// rateInput is the request body of POST /api/articles/{slug}/rate.
type rateInput struct {
	Rating int64 `json:"rating"`
}

func (in rateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Rating,
			validation.Required.Error("rating_required"),
			validation.Min(int64(1)).Error("rating_min_1"),
			validation.Max(int64(5)).Error("rating_max_5"),
		),
	)
}
