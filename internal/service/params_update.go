package service

import (
	"github.com/MKhiriev/cf-error-page/internal/adapter"
	"github.com/MKhiriev/cf-error-page/internal/utils"
	"github.com/MKhiriev/cf-error-page/models"
)

// BuildUpdate computes the fields a diagnostic lookup changes on prev:
//   - ClientIP, when an address was extracted;
//   - RayID, the part of the edge-request identifier before the first
//     hyphen cut to utils.RayIDLength characters, when the identifier is set;
//   - the edge location, from the identifier's facility segment when prev
//     has no location, otherwise from the colo code when the location is
//     still empty after that.
func BuildUpdate(prev models.Params, info models.TraceInfo) models.ParamsUpdate {
	var update models.ParamsUpdate

	if info.IP != "" {
		update.ClientIP = models.StringPtr(info.IP)
	}

	if info.Ray != "" {
		id, facility := adapter.SplitRay(info.Ray)
		update.RayID = models.StringPtr(truncate(id, utils.RayIDLength))

		if facility != "" && prev.CloudflareStatus.Location == "" {
			update.CloudflareStatus = withLocation(prev.CloudflareStatus, facility)
		}
	}

	location := prev.CloudflareStatus.Location
	if update.CloudflareStatus != nil {
		location = update.CloudflareStatus.Location
	}
	if info.Colo != "" && location == "" {
		update.CloudflareStatus = withLocation(prev.CloudflareStatus, info.Colo)
	}

	return update
}

// ApplyUpdate returns a copy of prev with the non-nil fields of update set.
// prev is not modified.
func ApplyUpdate(prev models.Params, update models.ParamsUpdate) models.Params {
	next := prev

	if update.ClientIP != nil {
		next.ClientIP = *update.ClientIP
	}
	if update.RayID != nil {
		next.RayID = models.StringPtr(*update.RayID)
	}
	if update.CloudflareStatus != nil {
		next.CloudflareStatus = *update.CloudflareStatus
	}

	return next
}

func withLocation(block models.StatusBlock, location string) *models.StatusBlock {
	block.Location = location
	return &block
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
