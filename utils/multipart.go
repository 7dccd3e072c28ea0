package utils

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Per-field size ceilings in bytes
const (
	MaxCVSize    = 5 * 1024 * 1024
	MaxImageSize = 5 * 1024 * 1024
	MaxPdfSize   = 10 * 1024 * 1024
	MaxVideoSize = 100 * 1024 * 1024
)

// File kinds double as storage subdirectories under the upload root
const (
	FileKindCV    = "cv"
	FileKindImage = "images"
	FileKindVideo = "videos"
	FileKindPdf   = "pdfs"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".avi": true, ".mov": true, ".mkv": true, ".webm": true,
}

var extMimeTypes = map[string]string{
	".jpg": "image/jpeg", ".jpeg": "image/jpeg", ".png": "image/png",
	".gif": "image/gif", ".webp": "image/webp",
	".mp4": "video/mp4", ".avi": "video/x-msvideo", ".mov": "video/quicktime",
	".mkv": "video/x-matroska", ".webm": "video/webm",
	".pdf": "application/pdf",
}

// ErrMissingBoundary is returned when a multipart Content-Type header
// carries no boundary parameter.
var ErrMissingBoundary = errors.New("multipart content type is missing boundary")

// ValidationError names the form field that failed file validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormFile is one accepted file part. Data stays buffered in memory until
// CommitFiles persists it; StoredName and Path are empty before commit.
type FormFile struct {
	FieldName    string
	OriginalName string
	StoredName   string
	Path         string // relative to the upload root, e.g. "cv/20260102..._a1b2c3d4.pdf"
	Size         int64
	Kind         string
	MimeType     string
	Data         []byte
}

// MultipartForm is the parse result: plain text fields plus file parts.
type MultipartForm struct {
	Fields map[string]string
	Files  []FormFile
}

// File returns the first file uploaded under the given field name.
func (f *MultipartForm) File(field string) *FormFile {
	for i := range f.Files {
		if f.Files[i].FieldName == field {
			return &f.Files[i]
		}
	}
	return nil
}

// ParseMultipartForm converts a raw multipart/form-data body into named
// text fields and buffered file parts. The body is processed as raw bytes
// throughout; file payloads are never run through a text decoding. A
// non-multipart content type is a no-op and returns (nil, nil). Any file
// policy violation fails the whole parse and nothing reaches disk.
func ParseMultipartForm(body []byte, contentType string) (*MultipartForm, error) {
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "multipart/form-data") {
		return nil, nil
	}

	boundary := extractBoundary(contentType)
	if boundary == "" {
		return nil, ErrMissingBoundary
	}

	form := &MultipartForm{Fields: make(map[string]string)}

	segments := bytes.Split(body, []byte("--"+boundary))
	for _, segment := range segments {
		// The closing delimiter leaves a bare "--" segment; the preamble
		// and inter-delimiter line breaks leave blank ones. Skip both.
		probe := bytes.TrimSpace(segment)
		if len(probe) == 0 || bytes.Equal(probe, []byte("--")) {
			continue
		}

		if err := parsePart(segment, form); err != nil {
			return nil, err
		}
	}

	return form, nil
}

// parsePart handles one delimited segment: MIME headers, a blank line,
// then the part body. Parts with a filename become files, the rest are
// text fields (last occurrence wins on duplicate names).
func parsePart(segment []byte, form *MultipartForm) error {
	segment = trimLeadingNewline(segment)

	headerBlock, body, ok := splitHeadersBody(segment)
	if !ok {
		// No header/body separator; nothing usable in this part.
		return nil
	}
	body = trimTrailingNewline(body)

	name, filename := parseContentDisposition(headerBlock)
	if name == "" {
		return nil
	}

	if filename == "" {
		// Plain text field, even without a Content-Type header.
		form.Fields[name] = strings.TrimSpace(string(body))
		return nil
	}

	file, err := buildFormFile(name, filename, body)
	if err != nil {
		return err
	}
	form.Files = append(form.Files, *file)
	return nil
}

// buildFormFile applies the per-field extension allow-list and size
// ceiling, and classifies the file into a storage kind.
func buildFormFile(field, filename string, data []byte) (*FormFile, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var kind string
	var limit int64

	switch {
	case field == "cv":
		if ext != ".pdf" {
			return nil, &ValidationError{Field: field, Message: "CV must be a PDF file"}
		}
		kind, limit = FileKindCV, MaxCVSize
	case field == "image" || field == "thumbnail":
		if !imageExts[ext] {
			return nil, &ValidationError{Field: field, Message: "unsupported image type " + ext}
		}
		kind, limit = FileKindImage, MaxImageSize
	default:
		// chapterFile_{n} and any other generic file field: video, image
		// or pdf, each with its own ceiling.
		switch {
		case videoExts[ext]:
			kind, limit = FileKindVideo, MaxVideoSize
		case imageExts[ext]:
			kind, limit = FileKindImage, MaxImageSize
		case ext == ".pdf":
			kind, limit = FileKindPdf, MaxPdfSize
		default:
			return nil, &ValidationError{Field: field, Message: "unsupported file type " + ext}
		}
	}

	size := int64(len(data))
	if size > limit {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("file exceeds the %dMB limit", limit/(1024*1024)),
		}
	}

	return &FormFile{
		FieldName:    field,
		OriginalName: filename,
		Size:         size,
		Kind:         kind,
		MimeType:     extMimeTypes[ext],
		Data:         data,
	}, nil
}

// extractBoundary pulls the boundary value out of a Content-Type header.
func extractBoundary(contentType string) string {
	for _, param := range strings.Split(contentType, ";") {
		param = strings.TrimSpace(param)
		if strings.HasPrefix(strings.ToLower(param), "boundary=") {
			boundary := param[len("boundary="):]
			return strings.Trim(boundary, `"`)
		}
	}
	return ""
}

// splitHeadersBody locates the blank line separating MIME headers from
// the part body. CRLF per the RFC, bare LF tolerated.
func splitHeadersBody(part []byte) (headers, body []byte, ok bool) {
	if idx := bytes.Index(part, []byte("\r\n\r\n")); idx >= 0 {
		return part[:idx], part[idx+4:], true
	}
	if idx := bytes.Index(part, []byte("\n\n")); idx >= 0 {
		return part[:idx], part[idx+2:], true
	}
	return nil, nil, false
}

// parseContentDisposition reads the name and optional filename attributes
// from the Content-Disposition header line.
func parseContentDisposition(headerBlock []byte) (name, filename string) {
	for _, line := range strings.Split(string(headerBlock), "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.Contains(strings.ToLower(line), "content-disposition") {
			continue
		}
		name = headerAttr(line, "name")
		filename = headerAttr(line, "filename")
		return name, filename
	}
	return "", ""
}

// headerAttr extracts a quoted attribute value, e.g. name="cv".
func headerAttr(line, attr string) string {
	marker := attr + `="`
	idx := strings.Index(line, " "+marker)
	if idx < 0 {
		idx = strings.Index(line, ";"+marker)
	}
	if idx < 0 {
		return ""
	}
	rest := line[idx+1+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}

func trimLeadingNewline(b []byte) []byte {
	if bytes.HasPrefix(b, []byte("\r\n")) {
		return b[2:]
	}
	if bytes.HasPrefix(b, []byte("\n")) {
		return b[1:]
	}
	return b
}

func trimTrailingNewline(b []byte) []byte {
	if bytes.HasSuffix(b, []byte("\r\n")) {
		return b[:len(b)-2]
	}
	if bytes.HasSuffix(b, []byte("\n")) {
		return b[:len(b)-1]
	}
	return b
}
