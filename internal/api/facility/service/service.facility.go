// Package facilitysvc - service cho domain facility.
package facilitysvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/base/service"
	facilitymodels "github.com/KellyJ386/rink-zenith-reports-sub000/internal/api/facility/models"
	"github.com/KellyJ386/rink-zenith-reports-sub000/internal/global"
)

// FacilityService xử lý logic cho facility
type FacilityService struct {
	*basesvc.BaseServiceMongoImpl[facilitymodels.Facility]
}

// NewFacilityService tạo mới FacilityService
func NewFacilityService() (*FacilityService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Facilities)
	if !exist {
		return nil, fmt.Errorf("failed to get facilities collection")
	}
	return &FacilityService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[facilitymodels.Facility](collection),
	}, nil
}

// DeleteById xóa facility sau khi kiểm tra không còn dữ liệu trực thuộc
// (cấu hình form, template, bản ghi nhật ký).
func (s *FacilityService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if err := basesvc.ValidateBeforeDeleteFacility(ctx, id); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}
