package leaves

import (
	"context"

	"github.com/m04kA/SMC-PlanningService/internal/service/leaves/models"
)

type LeavesService interface {
	Create(ctx context.Context, req *models.CreateLeaveRequest) (*models.LeaveResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateLeaveRequest) (*models.LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, referentID, date string) (*models.LeaveListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
