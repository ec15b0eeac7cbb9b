package mockapi

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// multipartBody writes a minimal project form with one main image and
// returns its content type.
func multipartBody(t *testing.T, body *bytes.Buffer, filename string, data []byte) string {
	t.Helper()

	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Uploaded"))
	require.NoError(t, w.WriteField("features", `["a"]`))
	part, err := w.CreateFormFile("mainImage", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return w.FormDataContentType()
}
