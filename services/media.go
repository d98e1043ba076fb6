package services

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/hmosawi/folio_api/dto"
	"github.com/hmosawi/folio_api/shared"
	log "github.com/sirupsen/logrus"
)

type MediaService struct {
	context.DefaultService

	minioSvc  *MinIOService
	publicURL string
}

const MEDIA_SVC = "media_svc"

const maxUploadSize = 5 * 1024 * 1024

// allowedImageTypes maps accepted content types to the stored extension.
var allowedImageTypes = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/webp":    "webp",
	"image/gif":     "gif",
	"image/svg+xml": "svg",
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.publicURL = os.Getenv("MEDIA_PUBLIC_URL")
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	return nil
}

// UploadImage validates and stores an admin-uploaded image, returning the
// URL to serve it from.
func (svc *MediaService) UploadImage(fileHeader *multipart.FileHeader, folder string) (*dto.MediaUploadResponse, error) {
	if fileHeader.Size > maxUploadSize {
		return nil, shared.NewBadRequestError(nil, "File too large, maximum size is 5MB")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, shared.NewBadRequestError(nil, "Unsupported file type, allowed: JPEG, PNG, WebP, GIF, SVG")
	}

	folder = strings.Trim(folder, "/")
	if folder == "" {
		folder = "uploads"
	}

	objectName := fmt.Sprintf("%s/%d-%d.%s", folder, time.Now().UnixMilli(), rand.Intn(1000000), ext)

	file, err := fileHeader.Open()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to read uploaded file")
	}
	defer file.Close()

	if _, err := svc.minioSvc.UploadFile(objectName, file, fileHeader.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err, "Failed to store uploaded file")
	}

	url, err := svc.fileURL(objectName)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to build file URL")
	}

	log.WithFields(log.Fields{"object": objectName, "size": fileHeader.Size}).Info("Uploaded media file")

	return &dto.MediaUploadResponse{
		URL:      url,
		Filename: objectName,
	}, nil
}

func (svc *MediaService) fileURL(objectName string) (string, error) {
	if svc.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(svc.publicURL, "/"), svc.minioSvc.GetBucketName(), objectName), nil
	}

	// Fall back to a long-lived presigned URL when no public endpoint exists.
	return svc.minioSvc.GetFileURL(objectName, 7*24*time.Hour)
}

func (svc *MediaService) DeleteImage(objectName string) error {
	if err := svc.minioSvc.DeleteFile(objectName); err != nil {
		return shared.NewInternalError(err, "Failed to delete file")
	}
	return nil
}
