package usecase

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"solar-shop/pkg/utils"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// uploadDimensions sets the bounding box per upload type. Images are resized
// to fit inside, never enlarged, and re-encoded as JPEG.
var uploadDimensions = map[string][2]int{
	"products": {800, 800},
	"blog":     {1200, 800},
	"profiles": {300, 300},
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadService interface {
	// SaveImage stores a resized, compressed copy of the uploaded image and
	// returns its public URL.
	SaveImage(uploadType, contentType string, file io.Reader) (string, error)
}

type uploadService struct {
	config utils.UploadConfig
	log    *zap.Logger
}

func NewUploadService(config utils.UploadConfig, log *zap.Logger) UploadService {
	return &uploadService{
		config: config,
		log:    log.With(zap.String("service", "upload")),
	}
}

func (s *uploadService) SaveImage(uploadType, contentType string, file io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("validation failed: file: only image files are allowed")
	}

	// Unknown types land in a general folder at original size.
	subdir := uploadType
	dims, known := uploadDimensions[uploadType]
	if !known {
		subdir = "general"
	}

	destDir := filepath.Join(s.config.Dir, subdir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		s.log.Error("Failed to create upload directory", zap.Error(err), zap.String("dir", destDir))
		return "", fmt.Errorf("failed to store upload")
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		s.log.Warn("Failed to decode uploaded image", zap.Error(err), zap.String("content_type", contentType))
		return "", fmt.Errorf("validation failed: file: not a decodable image")
	}

	if known {
		bounds := img.Bounds()
		// Fit inside the box without enlargement.
		if bounds.Dx() > dims[0] || bounds.Dy() > dims[1] {
			img = imaging.Fit(img, dims[0], dims[1], imaging.Lanczos)
		}
	}

	filename := utils.GenerateUploadName()
	destPath := filepath.Join(destDir, filename)

	if err := imaging.Save(img, destPath, imaging.JPEGQuality(s.config.JPEGQuality)); err != nil {
		s.log.Error("Failed to save uploaded image", zap.Error(err), zap.String("path", destPath))
		return "", fmt.Errorf("failed to store upload")
	}

	s.log.Info("Image uploaded",
		zap.String("type", subdir),
		zap.String("file", filename))

	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}
