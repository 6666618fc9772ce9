// Package intake validates uploaded resume files and turns them into a
// normalized ResumeProfile via the upstream parsing service.
package intake

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"github.com/jobpulse/gateway/models"
	"github.com/jobpulse/gateway/upstream"
)

// MaxFileSize is the upload cap: 10 MiB.
const MaxFileSize = 10 * 1024 * 1024

// Validation errors. These surface to the user before any network call.
var (
	ErrUnsupportedType = errors.New("please upload a PDF, DOCX, or TXT file")
	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
)

// allowedMediaTypes are the declared media types accepted for upload.
var allowedMediaTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

// cannedProfile is adopted when the parser answers without parsed_data.
func cannedProfile() *models.ResumeProfile {
	return &models.ResumeProfile{
		Name:       "Professional",
		Category:   "Software Developer",
		Skills:     models.FlexibleStringSlice{"Python", "JavaScript", "React", "Node.js"},
		Experience: "5+ years",
	}
}

// offlineProfile is adopted when the parse call fails outright.
func offlineProfile() *models.ResumeProfile {
	return &models.ResumeProfile{
		Name:       "Professional",
		Category:   "Software Developer",
		Skills:     models.FlexibleStringSlice{"Python", "JavaScript", "React"},
		Experience: "3+ years",
	}
}

// Intake handles resume submission.
type Intake struct {
	parser *upstream.ParseClient
	log    *zap.Logger
}

// New creates a resume intake backed by the given parse client.
func New(parser *upstream.ParseClient, log *zap.Logger) *Intake {
	return &Intake{parser: parser, log: log}
}

// Validate checks the declared media type and size of an upload without
// reading it. It must pass before any network call is made.
func Validate(header *multipart.FileHeader) error {
	declared := header.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		mediaType = strings.TrimSpace(strings.ToLower(declared))
	}
	if !allowedMediaTypes[mediaType] {
		return ErrUnsupportedType
	}
	if header.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// Submit validates the upload, sends it to the parsing service and returns
// the resulting profile together with where it came from. Transport and
// parse failures degrade to a fallback profile rather than an error; only
// validation problems are returned as errors.
func (i *Intake) Submit(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*models.ResumeProfile, models.ProfileSource, error) {
	if err := Validate(header); err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, io.LimitReader(file, MaxFileSize+1)); err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	if int64(buf.Len()) > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	profile, err := i.parser.ParseResume(ctx, header.Filename, buf.Bytes())
	if err != nil {
		i.log.Warn("resume parse failed, using offline fallback profile",
			zap.String("file", header.Filename),
			zap.Error(err),
		)
		return offlineProfile(), models.ProfileSourceOffline, nil
	}

	if profile == nil {
		i.log.Info("parser returned no parsed_data, using canned profile",
			zap.String("file", header.Filename),
		)
		return cannedProfile(), models.ProfileSourceCanned, nil
	}

	i.log.Info("resume parsed",
		zap.String("file", header.Filename),
		zap.String("category", profile.Category),
		zap.Int("skills", len(profile.Skills)),
	)
	return profile, models.ProfileSourceParsed, nil
}
