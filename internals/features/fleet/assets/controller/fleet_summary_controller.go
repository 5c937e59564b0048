package controller

import (
	"github.com/gofiber/fiber/v2"

	"chariots_backend/internals/features/fleet/assets/model"
	helper "chariots_backend/internals/helpers"
)

// =======================
// 🌐 Public fleet summary (marketing site)
// Aggregate counts only, no per-asset data.
// =======================
func (ctrl *AssetController) GetFleetSummary(c *fiber.Ctx) error {
	type row struct {
		AssetType   string `json:"asset_type"`
		AssetStatus string `json:"asset_status"`
		Count       int64  `json:"count"`
	}

	var rows []row
	if err := ctrl.DB.Model(&model.AssetModel{}).
		Select("asset_type, asset_status, COUNT(*) AS count").
		Group("asset_type, asset_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load fleet summary")
	}

	var total int64
	perType := map[string]int64{}
	perStatus := map[string]int64{}
	for _, r := range rows {
		total += r.Count
		perType[r.AssetType] += r.Count
		perStatus[r.AssetStatus] += r.Count
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total":      total,
		"per_type":   perType,
		"per_status": perStatus,
	})
}
