// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "io"

// FileUpload is an optional file submitted with a form.
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Present reports whether a file was actually submitted.
func (f *FileUpload) Present() bool {
	return f != nil && f.Content != nil && f.Filename != ""
}
