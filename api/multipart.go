package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/h2non/filetype"
)

const defaultPartType = "application/octet-stream"

// Form accumulates a multipart/form-data body. The first error sticks and
// is reported by Encode.
type Form struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func NewForm() *Form {
	f := &Form{}
	f.writer = multipart.NewWriter(&f.buf)
	return f
}

// Field appends a plain text field.
func (f *Form) Field(name, value string) *Form {
	if f.err == nil {
		f.err = f.writer.WriteField(name, value)
	}
	return f
}

// JSONField appends value serialized as JSON in a single text field.
func (f *Form) JSONField(name string, value any) *Form {
	if f.err != nil {
		return f
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		f.err = fmt.Errorf("encode field %s: %w", name, err)
		return f
	}
	return f.Field(name, string(encoded))
}

// File appends a binary part. Its content type is sniffed from the data.
func (f *Form) File(field, filename string, data []byte) *Form {
	if f.err != nil {
		return f
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(field), escapeQuotes(filename)))
	header.Set("Content-Type", DetectContentType(data))

	part, err := f.writer.CreatePart(header)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = part.Write(data)
	return f
}

// Encode closes the form and returns its content type and body.
func (f *Form) Encode() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.writer.Close(); err != nil {
		return "", nil, err
	}
	return f.writer.FormDataContentType(), &f.buf, nil
}

// DetectContentType returns the MIME type matching the magic bytes of data.
func DetectContentType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return defaultPartType
	}
	return kind.MIME.Value
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
