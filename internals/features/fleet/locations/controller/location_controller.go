package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"chariots_backend/internals/features/fleet/locations/dto"
	"chariots_backend/internals/features/fleet/locations/model"
	"chariots_backend/internals/features/fleet/locations/service"
	helper "chariots_backend/internals/helpers"
)

var validateLocation = validator.New()

type LocationController struct {
	DB      *gorm.DB
	Service *service.LocationService
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db, Service: service.NewLocationService(db)}
}

// =======================
// 📄 Get Off-site Locations (admin)
// =======================
func (ctrl *LocationController) GetLocations(c *fiber.Ctx) error {
	var locations []model.OffSiteLocationModel
	if err := ctrl.DB.Order("location_name ASC").Find(&locations).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve locations")
	}

	resp := make([]dto.OffSiteLocationDTO, 0, len(locations))
	for _, loc := range locations {
		d := dto.ToOffSiteLocationDTO(loc)
		if refs, err := ctrl.Service.ReferenceCount(loc); err == nil {
			d.AssetCount = &refs
		}
		resp = append(resp, d)
	}

	return helper.JsonOK(c, "OK", resp)
}

// =======================
// ➕ Create Off-site Location (admin)
// =======================
func (ctrl *LocationController) CreateLocation(c *fiber.Ctx) error {
	var body dto.CreateOffSiteLocationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLocation.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	loc := model.OffSiteLocationModel{LocationName: body.Name}
	if err := ctrl.DB.Create(&loc).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Location name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create location")
	}

	return helper.JsonCreated(c, "Location created", dto.ToOffSiteLocationDTO(loc))
}

// =======================
// 🗑️ Delete Off-site Location (admin)
// Blocked while any asset references it.
// =======================
func (ctrl *LocationController) DeleteLocation(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.Service.Delete(id); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Location not found")
		}
		if errors.Is(err, service.ErrLocationReferenced) {
			return helper.JsonError(c, fiber.StatusConflict, "Location still has assets assigned")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete location")
	}

	return helper.JsonDeleted(c, "Location deleted", fiber.Map{
		"location_id": id,
	})
}
