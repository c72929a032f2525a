package users

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-playground/validator/v10"
)

const pictureURL = "https://picsum.photos/id/%d/100"

type User struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Intn is satisfied by *rand.Rand and lets callers pin the random picture.
type Intn interface {
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// GlobalRand draws from the math/rand top-level source.
var GlobalRand Intn = globalRand{}

// DefaultPicture is the placeholder picture for a fetched user without one.
func DefaultPicture(id int) string { return fmt.Sprintf(pictureURL, id+10) }

// RandomPicture picks one of the picsum ids in [10, 109].
func RandomPicture(r Intn) string { return fmt.Sprintf(pictureURL, r.Intn(100)+10) }

// WithDefaultPicture fills an empty ProfilePicture from the user's id.
func WithDefaultPicture(u User) User {
	if u.ProfilePicture == "" {
		u.ProfilePicture = DefaultPicture(u.ID)
	}
	return u
}

// Form holds the editable fields of the create/edit dialog.
type Form struct {
	ID             int
	Name           string `validate:"required"`
	Username       string `validate:"required"`
	Email          string `validate:"required"`
	ProfilePicture string
}

// FormFrom pre-fills a form for editing u.
func FormFrom(u User) Form {
	return Form{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}

// Editing reports whether the form targets an existing user.
func (f Form) Editing() bool { return f.ID != 0 }

func (f Form) User() User {
	return User{
		ID:             f.ID,
		Name:           f.Name,
		Email:          f.Email,
		Username:       f.Username,
		ProfilePicture: f.ProfilePicture,
	}
}

var validate = validator.New()

// ValidationError lists the form fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f + " is required"
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// Validate checks presence only. Whitespace-only values count as empty.
func (f Form) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}
