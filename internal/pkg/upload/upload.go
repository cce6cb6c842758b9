// Package upload reads multipart image uploads with size and type limits.
package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"
)

// MaxFileSize caps each uploaded file at 5 MB.
const MaxFileSize = 5 << 20

var (
	ErrTooLarge = errors.New("file exceeds the 5MB limit")
	ErrNotImage = errors.New("only image files are allowed")
)

// File is an uploaded file read into memory.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Read validates and buffers a multipart file. Only image/* content types are
// accepted.
func Read(fh *multipart.FileHeader) (*File, error) {
	if fh.Size > MaxFileSize {
		return nil, ErrTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}

	return &File{Name: fh.Filename, ContentType: contentType, Data: data}, nil
}
