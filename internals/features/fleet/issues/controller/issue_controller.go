package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetModel "chariots_backend/internals/features/fleet/assets/model"
	courseModel "chariots_backend/internals/features/fleet/courses/model"
	"chariots_backend/internals/features/fleet/issues/dto"
	"chariots_backend/internals/features/fleet/issues/model"
	"chariots_backend/internals/features/fleet/issues/service"
	helper "chariots_backend/internals/helpers"
	storage "chariots_backend/internals/helpers/storage"
)

const maxIssuePhotos = 5

var validateIssue = validator.New()

type IssueController struct {
	DB      *gorm.DB
	Service *service.IssueService
}

func NewIssueController(db *gorm.DB) *IssueController {
	return &IssueController{DB: db, Service: service.NewIssueService(db)}
}

// =======================
// ➕ Report Issue (any authenticated user)
// multipart: asset_id, issue_type, severity, description, photos[]
// =======================
func (ctrl *IssueController) CreateIssue(c *fiber.Ctx) error {
	var body dto.CreateIssueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateIssue.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !service.ValidIssueType(body.IssueType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown issue type")
	}
	if !service.ValidSeverity(body.Severity) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown severity")
	}

	scope := helper.GetScope(c)
	reporterName, _ := c.Locals("user_name").(string)
	if reporterName == "" {
		if email, ok := c.Locals("user_email").(string); ok && email != "" {
			reporterName = email
		} else {
			reporterName = "Unknown"
		}
	}

	// Photos are uploaded first; the issue row references their public URLs.
	photoURLs := []string{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["photos"]
		if len(files) > maxIssuePhotos {
			return helper.JsonError(c, fiber.StatusBadRequest, "Maximum 5 photos allowed")
		}
		for _, fh := range files {
			url, err := storage.UploadIssuePhoto(fh)
			if err != nil {
				log.Printf("[ERROR] photo upload: %v", err)
				return helper.JsonError(c, fiber.StatusBadGateway, "Photo upload failed")
			}
			photoURLs = append(photoURLs, url)
		}
	}

	issue, err := ctrl.Service.Create(service.CreateIssueInput{
		AssetID:        body.AssetID,
		IssueType:      body.IssueType,
		Severity:       body.Severity,
		Description:    body.Description,
		PhotoURLs:      photoURLs,
		ReportedBy:     scope.UserID,
		ReportedByName: reporterName,
	}, scope)
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Asset not found")
		}
		if errors.Is(err, service.ErrAssetStatusUpdate) {
			// issue persisted; the forced asset write failed (no rollback)
			log.Printf("[ERROR] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError,
				"Issue recorded but the asset status update failed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create issue")
	}

	return helper.JsonCreated(c, "Issue reported", dto.ToIssueDTO(*issue))
}

// =======================
// 📄 Get Issues (scoped, paginated)
// Query: ?status=open|reported|acknowledged|in_repair|resolved&page=&per_page=
// =======================
func (ctrl *IssueController) GetIssues(c *fiber.Ctx) error {
	scope := helper.GetScope(c)
	paging := helper.ResolvePaging(c, 20, 100)

	base := helper.ScopeIssues(ctrl.DB.Model(&model.IssueModel{}), scope)
	switch status := c.Query("status"); status {
	case "", "all":
	case "open":
		base = base.Where("issue_status IN ?", service.NonTerminalStatuses())
	default:
		if !service.ValidIssueStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown issue status")
		}
		base = base.Where("issue_status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count issues")
	}

	var issues []model.IssueModel
	if err := base.
		Order("issue_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&issues).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve issues")
	}

	resp := ctrl.withDisplayNames(issues)
	return helper.JsonList(c, resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get Issue by ID (scoped)
// =======================
func (ctrl *IssueController) GetIssueByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	scope := helper.GetScope(c)

	var issue model.IssueModel
	if err := helper.ScopeIssues(ctrl.DB.Model(&model.IssueModel{}), scope).
		Where("issue_id = ?", id).
		First(&issue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve issue")
	}

	resp := ctrl.withDisplayNames([]model.IssueModel{issue})
	return helper.JsonOK(c, "OK", resp[0])
}

// =======================
// 🔁 Update Issue Status (admin)
// =======================
func (ctrl *IssueController) UpdateIssueStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateIssueStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateIssue.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !service.ValidIssueStatus(body.Status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown issue status")
	}

	issue, err := ctrl.Service.SetStatus(id, body.Status, time.Now().UTC())
	if err != nil {
		if errors.Is(err, service.ErrIssueNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Issue not found")
		}
		if errors.Is(err, service.ErrAssetStatusUpdate) {
			log.Printf("[ERROR] %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError,
				"Issue status saved but the asset status update failed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update status")
	}

	return helper.JsonOK(c, "Status updated", dto.ToIssueDTO(*issue))
}

// =======================
// ✏️ Update Admin Fields (admin)
// =======================
func (ctrl *IssueController) UpdateIssueAdminFields(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateIssueAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateIssue.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	issue, err := ctrl.Service.UpdateAdminFields(id, service.AdminFieldUpdates{
		AdminNotes:   body.AdminNotes,
		CostEstimate: body.CostEstimate,
		FinalCost:    body.FinalCost,
	})
	if err != nil {
		if errors.Is(err, service.ErrIssueNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Issue not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update issue")
	}

	return helper.JsonOK(c, "Issue updated", dto.ToIssueDTO(*issue))
}

// withDisplayNames decorates issues with asset and course display fields.
func (ctrl *IssueController) withDisplayNames(issues []model.IssueModel) []dto.IssueDTO {
	assetIDs := make([]string, 0, len(issues))
	courseIDs := make([]string, 0, len(issues))
	for _, i := range issues {
		assetIDs = append(assetIDs, i.IssueAssetID)
		if i.IssueCourseID != nil {
			courseIDs = append(courseIDs, *i.IssueCourseID)
		}
	}

	assetNames := map[string]assetModel.AssetModel{}
	if len(assetIDs) > 0 {
		var assets []assetModel.AssetModel
		if err := ctrl.DB.Where("asset_id IN ?", assetIDs).Find(&assets).Error; err == nil {
			for _, a := range assets {
				assetNames[a.AssetID] = a
			}
		}
	}

	courseNames := map[string]string{}
	if len(courseIDs) > 0 {
		var courses []courseModel.CourseModel
		if err := ctrl.DB.Where("course_id IN ?", courseIDs).Find(&courses).Error; err == nil {
			for _, cc := range courses {
				courseNames[cc.CourseID] = cc.CourseName
			}
		}
	}

	resp := make([]dto.IssueDTO, 0, len(issues))
	for _, i := range issues {
		d := dto.ToIssueDTO(i)
		if a, ok := assetNames[i.IssueAssetID]; ok {
			d.AssetName = a.AssetName
			d.AssetTag = a.AssetTag
		}
		if i.IssueCourseID != nil {
			if name, ok := courseNames[*i.IssueCourseID]; ok {
				d.CourseName = &name
			}
		}
		resp = append(resp, d)
	}
	return resp
}
