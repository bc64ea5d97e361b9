package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader stores a resume blob and returns its public URL.
type Uploader interface {
	UploadResume(ctx context.Context, data []byte) (string, error)
}

// CloudinaryUploader uploads resume PDFs to a Cloudinary folder.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary url not configured")
	}
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	if folder == "" {
		folder = "resumes"
	}
	return &CloudinaryUploader{client: client, folder: folder}, nil
}

func (u *CloudinaryUploader) UploadResume(ctx context.Context, data []byte) (string, error) {
	resp, err := u.client.Upload.Upload(ctx, strings.NewReader(string(data)), uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     uuid.NewString(),
		ResourceType: "raw",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}

	return inlineViewURL(resp.SecureURL), nil
}

// inlineViewURL rewrites a raw-delivery URL so browsers render the PDF
// instead of downloading it, and keeps a .pdf suffix so viewers recognise
// the type.
func inlineViewURL(secureURL string) string {
	fileURL := secureURL
	if strings.Contains(fileURL, "/upload/") {
		fileURL = strings.Replace(fileURL, "/upload/", "/upload/fl_attachment:false/", 1)
	}
	if !strings.HasSuffix(fileURL, ".pdf") {
		fileURL += ".pdf"
	}
	return fileURL
}
