package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// MaxReportSize caps uploaded medical reports at 5 MiB.
const MaxReportSize = 5 << 20

var (
	ErrReportTooLarge       = errors.New("report file exceeds the 5 MB limit")
	ErrReportTypeNotAllowed = errors.New("report must be a PDF, JPEG, or PNG file")
	ErrReportNotFound       = errors.New("report file not found")
	ErrReportStoreFailed    = errors.New("failed to store report file")
	ErrReportNameNotAllowed = errors.New("report file name is not valid")
)

// Stored names are server-generated, so anything else in a download
// request is a traversal attempt, not a typo.
var reportNamePattern = regexp.MustCompile(`^\d+-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.(pdf|jpg|png)$`)

// extensionByMIME maps the sniffed content type to the stored
// extension. The client's claimed filename and Content-Type are
// ignored; only the bytes decide.
var extensionByMIME = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// ReportStore keeps uploaded visit reports as flat files under a single
// directory, named by upload time and a random id.
type ReportStore struct {
	dir string
}

func NewReportStore(dir string) (*ReportStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report directory: %w", err)
	}
	return &ReportStore{dir: dir}, nil
}

func (store *ReportStore) Dir() string {
	return store.dir
}

// Save validates and persists an uploaded report, returning the stored
// file name the visit record should reference.
func (store *ReportStore) Save(content []byte, now time.Time) (string, error) {
	if len(content) == 0 {
		return "", ErrReportTypeNotAllowed
	}
	if len(content) > MaxReportSize {
		return "", ErrReportTooLarge
	}

	extension, ok := extensionByMIME[sniffMIME(content)]
	if !ok {
		return "", ErrReportTypeNotAllowed
	}

	fileName := fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.NewString(), extension)
	if err := os.WriteFile(filepath.Join(store.dir, fileName), content, 0o644); err != nil {
		return "", ErrReportStoreFailed
	}
	return fileName, nil
}

// Path resolves a stored file name to its on-disk path. Names that do
// not match the server's own naming scheme are rejected outright.
func (store *ReportStore) Path(fileName string) (string, error) {
	if !reportNamePattern.MatchString(fileName) {
		return "", ErrReportNameNotAllowed
	}

	path := filepath.Join(store.dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return "", ErrReportNotFound
	}
	return path, nil
}

// ContentType returns the MIME type for a stored report based on its
// extension, which Save derived from the sniffed content.
func ContentType(fileName string) string {
	switch filepath.Ext(fileName) {
	case ".pdf":
		return "application/pdf"
	case ".jpg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

func sniffMIME(content []byte) string {
	sniffed := http.DetectContentType(content)
	// DetectContentType appends a charset for text results and never
	// reports PDF, so check the magic header directly.
	if len(content) >= 5 && string(content[:5]) == "%PDF-" {
		return "application/pdf"
	}
	return sniffed
}
