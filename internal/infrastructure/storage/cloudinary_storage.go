package storage

import (
	"context"
	"errors"
	"io"
	"log"

	"serving_u/internal/usecase/interfaces"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrMissingCloudinaryCredentials = errors.New("missing CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY or CLOUDINARY_API_SECRET")
var ErrUploadFailed = errors.New("cloudinary upload returned no url")

// CloudinaryStorage uploads catalog images and returns their CDN URLs.

type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

var _ interfaces.IImageStorage = (*CloudinaryStorage)(nil)

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Printf("[storage][cloudinary] missing credentials")
		return nil, ErrMissingCloudinaryCredentials
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("[storage][cloudinary] sdk init failed err=%v", err)
		return nil, err
	}
	log.Printf("[storage][cloudinary] client initialized cloud=%s", cloudName)
	return &CloudinaryStorage{cld: cld}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		log.Printf("[storage][cloudinary] upload failed folder=%s err=%v", folder, err)
		return "", err
	}
	if resp == nil || resp.SecureURL == "" {
		log.Printf("[storage][cloudinary] upload returned no url folder=%s", folder)
		return "", ErrUploadFailed
	}
	log.Printf("[storage][cloudinary] upload success folder=%s", folder)
	return resp.SecureURL, nil
}
