package utils

import (
	"bytes"
	"fmt"
	"lms/config"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBoundary = "----WebKitFormBoundaryABC123"

func multipartContentType() string {
	return "multipart/form-data; boundary=" + testBoundary
}

// buildBody assembles a raw multipart body from alternating part
// definitions. A part with filename "" is a text field.
type testPart struct {
	name     string
	filename string
	content  []byte
}

func buildBody(parts ...testPart) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.WriteString("--" + testBoundary + "\r\n")
		if p.filename == "" {
			buf.WriteString(fmt.Sprintf("Content-Disposition: form-data; name=%q\r\n\r\n", p.name))
		} else {
			buf.WriteString(fmt.Sprintf("Content-Disposition: form-data; name=%q; filename=%q\r\n", p.name, p.filename))
			buf.WriteString("Content-Type: application/octet-stream\r\n\r\n")
		}
		buf.Write(p.content)
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + testBoundary + "--\r\n")
	return buf.Bytes()
}

func setupUploadDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: dir}
	return dir
}

func TestParseMultipartFormFieldsAndFiles(t *testing.T) {
	body := buildBody(
		testPart{name: "title", content: []byte("Intro to Go")},
		testPart{name: "level", content: []byte("beginner")},
		testPart{name: "cv", filename: "resume.pdf", content: []byte("%PDF-1.4 fake")},
	)

	form, err := ParseMultipartForm(body, multipartContentType())
	require.NoError(t, err)
	require.NotNil(t, form)

	assert.Len(t, form.Fields, 2)
	assert.Equal(t, "Intro to Go", form.Fields["title"])
	assert.Equal(t, "beginner", form.Fields["level"])

	require.Len(t, form.Files, 1)
	file := form.File("cv")
	require.NotNil(t, file)
	assert.Equal(t, "resume.pdf", file.OriginalName)
	assert.Equal(t, FileKindCV, file.Kind)
	assert.Equal(t, "application/pdf", file.MimeType)
	assert.Equal(t, int64(len("%PDF-1.4 fake")), file.Size)
}

func TestParseMultipartFormLastOccurrenceWins(t *testing.T) {
	body := buildBody(
		testPart{name: "category", content: []byte("design")},
		testPart{name: "category", content: []byte("engineering")},
	)

	form, err := ParseMultipartForm(body, multipartContentType())
	require.NoError(t, err)

	assert.Len(t, form.Fields, 1)
	assert.Equal(t, "engineering", form.Fields["category"])
}

func TestParseMultipartFormMissingBoundary(t *testing.T) {
	form, err := ParseMultipartForm([]byte("irrelevant"), "multipart/form-data")
	assert.ErrorIs(t, err, ErrMissingBoundary)
	assert.Nil(t, form)
}

func TestParseMultipartFormNonMultipartIsNoOp(t *testing.T) {
	form, err := ParseMultipartForm([]byte(`{"title":"x"}`), "application/json")
	assert.NoError(t, err)
	assert.Nil(t, form)
}

func TestParseMultipartFormQuotedBoundary(t *testing.T) {
	body := buildBody(testPart{name: "title", content: []byte("hello")})

	form, err := ParseMultipartForm(body, `multipart/form-data; boundary="`+testBoundary+`"`)
	require.NoError(t, err)
	assert.Equal(t, "hello", form.Fields["title"])
}

func TestParseMultipartFormRejectsWrongCVExtension(t *testing.T) {
	body := buildBody(testPart{name: "cv", filename: "resume.docx", content: []byte("not a pdf")})

	form, err := ParseMultipartForm(body, multipartContentType())
	assert.Nil(t, form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "cv", verr.Field)
}

func TestParseMultipartFormRejectsUnknownChapterExtension(t *testing.T) {
	body := buildBody(testPart{name: "chapterFile_0", filename: "notes.exe", content: []byte{0x4d, 0x5a}})

	_, err := ParseMultipartForm(body, multipartContentType())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "chapterFile_0", verr.Field)
}

func TestParseMultipartFormRejectsOversizedImage(t *testing.T) {
	dir := setupUploadDir(t)

	oversized := bytes.Repeat([]byte{0xAB}, MaxImageSize+1)
	body := buildBody(testPart{name: "image", filename: "big.png", content: oversized})

	form, err := ParseMultipartForm(body, multipartContentType())
	assert.Nil(t, form)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "image", verr.Field)

	// Nothing may reach disk on a failed parse
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestParseMultipartFormBinarySafe(t *testing.T) {
	payload := []byte{0x00, 0xFF, 0x0D, 0x0A, 0x89, 'P', 'N', 'G', 0x00, 0x1A}
	body := buildBody(testPart{name: "image", filename: "pixel.png", content: payload})

	form, err := ParseMultipartForm(body, multipartContentType())
	require.NoError(t, err)

	file := form.File("image")
	require.NotNil(t, file)
	assert.Equal(t, payload, file.Data)
}

func TestParseMultipartFormSkipsEmptyParts(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("preamble to be ignored")
	buf.Write(buildBody(testPart{name: "title", content: []byte("ok")}))

	form, err := ParseMultipartForm(buf.Bytes(), multipartContentType())
	require.NoError(t, err)
	assert.Len(t, form.Fields, 1)
	assert.Empty(t, form.Files)
}

func TestParseMultipartFormFieldWithoutContentTypeHeader(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("--" + testBoundary + "\r\n")
	buf.WriteString(`Content-Disposition: form-data; name="price"` + "\r\n\r\n")
	buf.WriteString("49.99\r\n")
	buf.WriteString("--" + testBoundary + "--\r\n")

	form, err := ParseMultipartForm(buf.Bytes(), multipartContentType())
	require.NoError(t, err)
	assert.Equal(t, "49.99", form.Fields["price"])
}

func TestParseMultipartFormChapterFileKinds(t *testing.T) {
	body := buildBody(
		testPart{name: "chapterFile_0", filename: "lesson.mp4", content: []byte("videobytes")},
		testPart{name: "chapterFile_1", filename: "slides.pdf", content: []byte("%PDF")},
		testPart{name: "chapterFile_2", filename: "diagram.webp", content: []byte("RIFF")},
	)

	form, err := ParseMultipartForm(body, multipartContentType())
	require.NoError(t, err)
	require.Len(t, form.Files, 3)

	assert.Equal(t, FileKindVideo, form.File("chapterFile_0").Kind)
	assert.Equal(t, FileKindPdf, form.File("chapterFile_1").Kind)
	assert.Equal(t, FileKindImage, form.File("chapterFile_2").Kind)
}

func TestCommitFilesWritesUnderKindDirectory(t *testing.T) {
	dir := setupUploadDir(t)

	payload := []byte{0x89, 'P', 'N', 'G', 0x00}
	body := buildBody(testPart{name: "image", filename: "pic.png", content: payload})

	form, err := ParseMultipartForm(body, multipartContentType())
	require.NoError(t, err)

	require.NoError(t, CommitFiles(form))

	file := form.File("image")
	assert.True(t, strings.HasSuffix(file.StoredName, ".png"))
	assert.NotContains(t, file.StoredName, "pic")
	assert.Equal(t, filepath.Join(FileKindImage, file.StoredName), file.Path)
	assert.Nil(t, file.Data)

	written, readErr := os.ReadFile(filepath.Join(dir, file.Path))
	require.NoError(t, readErr)
	assert.Equal(t, payload, written)
}

func TestDiscardFilesDropsBuffers(t *testing.T) {
	body := buildBody(testPart{name: "image", filename: "pic.jpg", content: []byte("jpegbytes")})

	form, err := ParseMultipartForm(body, multipartContentType())
	require.NoError(t, err)

	DiscardFiles(form)
	assert.Nil(t, form.Files[0].Data)

	// nil form must not panic
	DiscardFiles(nil)
}

func TestGenerateStorageName(t *testing.T) {
	first := GenerateStorageName("My Resume.PDF")
	second := GenerateStorageName("My Resume.PDF")

	assert.True(t, strings.HasSuffix(first, ".pdf"))
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "Resume")
}
