package site

import (
	"errors"
	"fmt"
	"net/http"
)

// Submission is the transient form payload of POST /submit.
type Submission struct {
	Username string
	Email    string
}

// Confirmation renders the plain text reply for s.
func (s Submission) Confirmation() string {
	return fmt.Sprintf(confirmationFormat, s.Username, s.Email)
}

// ParseSubmission reads username and email from a urlencoded or multipart
// request body capped at maxBytes. Only presence is checked: an empty value
// is accepted, an absent key is ErrMissingField. Query string values are ignored.
func ParseSubmission(w http.ResponseWriter, r *http.Request, maxBytes int64) (Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := r.ParseMultipartForm(maxBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		err = nil
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return Submission{}, fmt.Errorf("%w: limit %d bytes", ErrFormTooLarge, tooLarge.Limit)
		}
		return Submission{}, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	username, err := field(r, "username")
	if err != nil {
		return Submission{}, err
	}
	email, err := field(r, "email")
	if err != nil {
		return Submission{}, err
	}

	return Submission{Username: username, Email: email}, nil
}

func field(r *http.Request, name string) (string, error) {
	values, ok := r.PostForm[name]
	if !ok || len(values) == 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return values[0], nil
}
