package dto

import "io"

// AvatarFile is an uploaded image handed from a handler to a service.
type AvatarFile struct {
	Reader   io.Reader
	FileName string
}
