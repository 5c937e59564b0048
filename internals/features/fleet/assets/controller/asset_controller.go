package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"chariots_backend/internals/configs"
	"chariots_backend/internals/features/fleet/assets/dto"
	"chariots_backend/internals/features/fleet/assets/model"
	courseModel "chariots_backend/internals/features/fleet/courses/model"
	issueModel "chariots_backend/internals/features/fleet/issues/model"
	helper "chariots_backend/internals/helpers"
)

var validateAsset = validator.New()

type AssetController struct {
	DB *gorm.DB
}

func NewAssetController(db *gorm.DB) *AssetController {
	return &AssetController{DB: db}
}

// =======================
// 📄 Get Assets (scoped)
// Query: ?status=&type=
// =======================
func (ctrl *AssetController) GetAssets(c *fiber.Ctx) error {
	scope := helper.GetScope(c)

	q := helper.ScopeAssets(ctrl.DB.Model(&model.AssetModel{}), scope)
	if status := c.Query("status"); status != "" && status != "all" {
		if !model.ValidAssetStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown asset status")
		}
		q = q.Where("asset_status = ?", status)
	}
	if assetType := c.Query("type"); assetType != "" && assetType != "all" {
		if !model.ValidAssetType(assetType) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown asset type")
		}
		q = q.Where("asset_type = ?", assetType)
	}

	var assets []model.AssetModel
	if err := q.Order("asset_name ASC").Find(&assets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assets")
	}

	return helper.JsonOK(c, "OK", ctrl.withCourseNames(assets))
}

// =======================
// 🔍 Get Asset by ID (scoped) + issue counts
// =======================
func (ctrl *AssetController) GetAssetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	scope := helper.GetScope(c)

	var asset model.AssetModel
	if err := helper.ScopeAssets(ctrl.DB.Model(&model.AssetModel{}), scope).
		Where("asset_id = ?", id).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve asset")
	}

	resp := ctrl.withCourseNames([]model.AssetModel{asset})[0]

	var total, open int64
	ctrl.DB.Model(&issueModel.IssueModel{}).
		Where("issue_asset_id = ?", asset.AssetID).
		Count(&total)
	ctrl.DB.Model(&issueModel.IssueModel{}).
		Where("issue_asset_id = ? AND issue_status <> ?", asset.AssetID, issueModel.IssueStatusResolved).
		Count(&open)
	resp.IssueCount = &total
	resp.OpenIssueCount = &open

	return helper.JsonOK(c, "OK", resp)
}

// =======================
// ➕ Create Asset (admin)
// =======================
func (ctrl *AssetController) CreateAsset(c *fiber.Ctx) error {
	var body dto.CreateAssetRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAsset.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !model.ValidAssetType(body.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown asset type")
	}
	if err := validateAssetLocation(body.CourseID, body.Location); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	asset := model.AssetModel{
		AssetName:     body.Name,
		AssetTag:      emptyToNil(body.AssetTag),
		AssetType:     body.Type,
		AssetStatus:   model.AssetStatusAvailable,
		AssetCourseID: body.CourseID,
		AssetLocation: emptyToNil(body.Location),
		AssetNotes:    emptyToNil(body.Notes),
	}

	if err := ctrl.DB.Create(&asset).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create asset")
	}

	return helper.JsonCreated(c, "Asset created", dto.ToAssetDTO(asset))
}

// =======================
// ✏️ Update Asset (admin)
// =======================
func (ctrl *AssetController) UpdateAsset(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateAssetRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAsset.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var asset model.AssetModel
	if err := ctrl.DB.Where("asset_id = ?", id).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve asset")
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["asset_name"] = *body.Name
	}
	if body.AssetTag != nil {
		updates["asset_tag"] = nilIfEmpty(*body.AssetTag)
	}
	if body.Type != nil {
		if !model.ValidAssetType(*body.Type) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown asset type")
		}
		updates["asset_type"] = *body.Type
	}
	if body.Notes != nil {
		updates["asset_notes"] = nilIfEmpty(*body.Notes)
	}
	// relocation: moving to a course clears the off-site name and vice versa
	if body.CourseID != nil || body.Location != nil {
		if err := validateAssetLocation(body.CourseID, body.Location); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		updates["asset_course_id"] = body.CourseID
		if body.Location != nil {
			updates["asset_location"] = nilIfEmpty(*body.Location)
		} else {
			updates["asset_location"] = nil
		}
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&model.AssetModel{}).
			Where("asset_id = ?", id).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update asset")
		}
	}

	if err := ctrl.DB.Where("asset_id = ?", id).First(&asset).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve asset")
	}
	return helper.JsonOK(c, "Asset updated", dto.ToAssetDTO(asset))
}

// =======================
// 🔁 Update Asset Status (admin)
// =======================
func (ctrl *AssetController) UpdateAssetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateAssetStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAsset.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !model.ValidAssetStatus(body.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown asset status")
	}

	res := ctrl.DB.Model(&model.AssetModel{}).
		Where("asset_id = ?", id).
		Update("asset_status", body.Status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
	}

	return helper.JsonOK(c, "Status updated", fiber.Map{
		"asset_id":     id,
		"asset_status": body.Status,
	})
}

// =======================
// 🗑️ Delete Asset (admin)
// =======================
func (ctrl *AssetController) DeleteAsset(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	if err := ctrl.DB.Delete(&model.AssetModel{}, "asset_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete asset")
	}

	return helper.JsonDeleted(c, "Asset deleted", fiber.Map{
		"asset_id": id,
	})
}

// =======================
// 🔳 Asset QR code (PNG)
// Encodes the deep link the issue-report form pre-selects from.
// =======================
func (ctrl *AssetController) GetAssetQRCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	scope := helper.GetScope(c)

	var asset model.AssetModel
	if err := helper.ScopeAssets(ctrl.DB.Model(&model.AssetModel{}), scope).
		Where("asset_id = ?", id).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve asset")
	}

	reportURL := fmt.Sprintf("%s/report?asset=%s", configs.PublicBaseURL, asset.AssetID)
	png, err := qrcode.Encode(reportURL, qrcode.Medium, 512)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="%s-qr.png"`, asset.AssetID))
	return c.Send(png)
}

// =============================
// utils
// =============================

func validateAssetLocation(courseID, location *string) error {
	hasCourse := courseID != nil && *courseID != ""
	hasLocation := location != nil && *location != ""
	if hasCourse == hasLocation {
		return errors.New("exactly one of course_id or location must be set")
	}
	return nil
}

func (ctrl *AssetController) withCourseNames(assets []model.AssetModel) []dto.AssetDTO {
	courseIDs := make([]string, 0, len(assets))
	for _, a := range assets {
		if a.AssetCourseID != nil {
			courseIDs = append(courseIDs, *a.AssetCourseID)
		}
	}

	names := map[string]string{}
	if len(courseIDs) > 0 {
		var courses []courseModel.CourseModel
		if err := ctrl.DB.Where("course_id IN ?", courseIDs).Find(&courses).Error; err == nil {
			for _, cc := range courses {
				names[cc.CourseID] = cc.CourseName
			}
		}
	}

	resp := make([]dto.AssetDTO, 0, len(assets))
	for _, a := range assets {
		d := dto.ToAssetDTO(a)
		if a.AssetCourseID != nil {
			if name, ok := names[*a.AssetCourseID]; ok {
				d.CourseName = &name
			}
		}
		resp = append(resp, d)
	}
	return resp
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
