package storage

import (
	"context"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go"
	"github.com/cloudinary/cloudinary-go/api/uploader"
	"github.com/google/uuid"

	"fieldtofork/pkg/errors"
)

// CloudinaryClient hosts product and profile images. The app never serves
// image bytes itself; it stores the returned URL on the document.
type CloudinaryClient struct {
	cld    *cloudinary.Cloudinary
	folder string
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret, folder string) (*CloudinaryClient, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryClient{
		cld:    cld,
		folder: folder,
	}, nil
}

func (c *CloudinaryClient) UploadImage(ctx context.Context, r io.Reader) (*UploadResult, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	result, err := c.cld.Upload.Upload(uploadCtx, r, uploader.UploadParams{
		Folder:       c.folder,
		PublicID:     uuid.New().String(),
		ResourceType: "image",
	})
	if err != nil {
		return nil, errors.Internal("Failed to upload image", err)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}
