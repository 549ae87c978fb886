package handler

import "time"

// UserRequest is the body of both sign-up and sign-in.
type UserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the uniform envelope for status and error bodies.
type MessageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// DatasetMetaResponse is one row of the dataset listing. Content is never
// part of it.
type DatasetMetaResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadDate time.Time `json:"upload_date"`
}

// DatasetContentResponse carries the stored JSON content of one dataset.
type DatasetContentResponse struct {
	Content string `json:"content"`
}
