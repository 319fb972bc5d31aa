package car

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
	"github.com/chrisdemonxxx/godrive/services/storage"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const maxCarImages = 10

// AddImage uploads a photo and attaches it to the listing. The first photo,
// or one uploaded with isPrimary, becomes the primary image.
func (s *DefaultCarService) AddImage(hostID, carID string, fh *multipart.FileHeader, isPrimary bool) (*models.Car, error) {
	car, err := s.getOwned(hostID, carID)
	if err != nil {
		return nil, err
	}
	if len(car.Images) >= maxCarImages {
		return nil, fmt.Errorf("a listing can carry at most %d photos", maxCarImages)
	}

	ctx := context.Background()
	publicID, err := s.uploadImage(ctx, fh)
	if err != nil {
		return nil, err
	}
	url, err := s.Storage.GetDownloadURL(publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image URL: %w", err)
	}

	img := models.CarImage{
		ID:           uuid.New().String(),
		ImageID:      publicID,
		URL:          url,
		IsPrimary:    isPrimary || len(car.Images) == 0,
		DisplayOrder: len(car.Images),
		CreatedAt:    time.Now(),
	}
	if img.IsPrimary {
		for i := range car.Images {
			car.Images[i].IsPrimary = false
		}
	}
	car.Images = append(car.Images, img)

	if err := s.Repo.UpdateSetDocument(carID, bson.M{"images": car.Images}); err != nil {
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}
	return car, nil
}

// RemoveImage detaches a photo and deletes the stored file.
func (s *DefaultCarService) RemoveImage(hostID, carID, imageID string) (*models.Car, error) {
	car, err := s.getOwned(hostID, carID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, img := range car.Images {
		if img.ID == imageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("image not found")
	}

	removed := car.Images[idx]
	car.Images = append(car.Images[:idx], car.Images[idx+1:]...)
	if removed.IsPrimary && len(car.Images) > 0 {
		car.Images[0].IsPrimary = true
	}

	if err := s.Repo.UpdateSetDocument(carID, bson.M{"images": car.Images}); err != nil {
		return nil, fmt.Errorf("failed to detach image: %w", err)
	}

	if err := s.Storage.DeleteFile(context.Background(), removed.ImageID); err != nil {
		utils.GetLogger().Warn("Failed to delete stored car image",
			zap.String("imageID", removed.ImageID), zap.Error(err))
	}
	return car, nil
}

func (s *DefaultCarService) uploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "car-*"+filepath.Ext(fh.Filename))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to flush upload: %w", err)
	}

	publicID, err := s.Storage.UploadFile(ctx, tmp.Name(), storage.FolderCarImages)
	if err != nil {
		return "", fmt.Errorf("failed to store car image: %w", err)
	}
	return publicID, nil
}
