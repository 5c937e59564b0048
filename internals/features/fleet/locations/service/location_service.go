package service

import (
	"errors"

	"gorm.io/gorm"

	assetModel "chariots_backend/internals/features/fleet/assets/model"
	"chariots_backend/internals/features/fleet/locations/model"
)

var (
	ErrLocationNotFound   = errors.New("off-site location not found")
	ErrLocationReferenced = errors.New("off-site location still has assets assigned")
)

type LocationService struct {
	DB *gorm.DB
}

func NewLocationService(db *gorm.DB) *LocationService {
	return &LocationService{DB: db}
}

// Delete removes an off-site location, refusing while any asset still carries
// its name.
func (s *LocationService) Delete(locationID string) error {
	var loc model.OffSiteLocationModel
	if err := s.DB.Where("location_id = ?", locationID).First(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		return err
	}

	var refs int64
	if err := s.DB.Model(&assetModel.AssetModel{}).
		Where("asset_location = ?", loc.LocationName).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrLocationReferenced
	}

	return s.DB.Delete(&model.OffSiteLocationModel{}, "location_id = ?", locationID).Error
}

// ReferenceCount reports how many assets are currently at the location.
func (s *LocationService) ReferenceCount(loc model.OffSiteLocationModel) (int64, error) {
	var refs int64
	err := s.DB.Model(&assetModel.AssetModel{}).
		Where("asset_location = ?", loc.LocationName).
		Count(&refs).Error
	return refs, err
}
