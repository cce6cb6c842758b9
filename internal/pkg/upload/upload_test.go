package upload

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, name, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxFileSize*2))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func TestReadAcceptsImage(t *testing.T) {
	fh := multipartFile(t, "featuredImage", "cover.png", "image/png", []byte("fake png bytes"))

	file, err := Read(fh)
	require.NoError(t, err)
	assert.Equal(t, "cover.png", file.Name)
	assert.Equal(t, "image/png", file.ContentType)
	assert.Equal(t, []byte("fake png bytes"), file.Data)
}

func TestReadRejectsNonImage(t *testing.T) {
	fh := multipartFile(t, "featuredImage", "notes.pdf", "application/pdf", []byte("%PDF"))

	_, err := Read(fh)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestReadRejectsOversizedFile(t *testing.T) {
	fh := multipartFile(t, "featuredImage", "huge.png", "image/png", bytes.Repeat([]byte("x"), MaxFileSize+1))

	_, err := Read(fh)
	assert.ErrorIs(t, err, ErrTooLarge)
}
