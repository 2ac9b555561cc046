package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

type ToolAssignmentServiceInterface interface {
	GetAssignments(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.ToolAssignment], error)
	AssignTool(ctx context.Context, payload dto.AssignToolDTO) (*entities.ToolAssignment, error)
	RequestReturn(ctx context.Context, id uint64) (*entities.ToolAssignment, error)
	ReturnTool(ctx context.Context, id uint64) (*entities.ToolAssignment, error)
}

// ToolAssignmentService - zimmet: assigned -> return_requested -> returned.
type ToolAssignmentService struct {
	repo         repositories.ToolAssignmentRepositoryInterface
	toolRepo     repositories.ToolRepositoryInterface
	employeeRepo repositories.EmployeeRepositoryInterface
	profileRepo  repositories.ProfileRepositoryInterface
	txManager    repositories.TxManagerInterface
	notifier     NotificationServiceInterface
	logger       *zap.Logger
}

func NewToolAssignmentService(
	repo repositories.ToolAssignmentRepositoryInterface,
	toolRepo repositories.ToolRepositoryInterface,
	employeeRepo repositories.EmployeeRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	txManager repositories.TxManagerInterface,
	notifier NotificationServiceInterface,
	logger *zap.Logger,
) ToolAssignmentServiceInterface {
	return &ToolAssignmentService{
		repo:         repo,
		toolRepo:     toolRepo,
		employeeRepo: employeeRepo,
		profileRepo:  profileRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// currentEmployeeID - сотрудник, привязанный к профилю из сессии.
func (s *ToolAssignmentService) currentEmployeeID(ctx context.Context) (null.Int64, error) {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return null.Int64{}, err
	}
	profile, err := s.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		return null.Int64{}, err
	}
	return profile.EmployeeID, nil
}

func (s *ToolAssignmentService) GetAssignments(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.ToolAssignment], error) {
	if !utils.IsManager(ctx) {
		employeeID, err := s.currentEmployeeID(ctx)
		if err != nil {
			return nil, err
		}
		if !employeeID.Valid {
			return dto.NewPaginatedResponse([]entities.ToolAssignment{}, 0, filter), nil
		}
		filter.Set("employee_id", employeeID.Int64)
	}

	list, total, err := s.repo.GetAssignments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *ToolAssignmentService) AssignTool(ctx context.Context, payload dto.AssignToolDTO) (*entities.ToolAssignment, error) {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.FindEmployee(ctx, payload.EmployeeID); err != nil {
		return nil, err
	}

	var id uint64
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		tool, err := s.toolRepo.FindTool(ctx, tx, payload.ToolID)
		if err != nil {
			return err
		}
		if tool.Status != constants.ToolStatusAvailable {
			return apperrors.ErrToolNotAvailable
		}
		id, err = s.repo.CreateAssignment(ctx, tx, entities.ToolAssignment{
			ToolID:     payload.ToolID,
			EmployeeID: payload.EmployeeID,
			AssignedBy: null.Int64From(int64(profileID)),
			Status:     constants.AssignmentStatusAssigned,
			Notes:      trimNull(payload.Notes),
		})
		if err != nil {
			return err
		}
		return s.toolRepo.UpdateToolStatus(ctx, tx, payload.ToolID, constants.ToolStatusAssigned)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Инструмент выдан",
		zap.Uint64("assignmentID", id), zap.Uint64("toolID", payload.ToolID), zap.Uint64("employeeID", payload.EmployeeID))
	return s.repo.FindAssignment(ctx, nil, id)
}

// RequestReturn может вызвать менеджер или сам сотрудник, на которого оформлен zimmet.
func (s *ToolAssignmentService) RequestReturn(ctx context.Context, id uint64) (*entities.ToolAssignment, error) {
	assignment, err := s.repo.FindAssignment(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if !utils.IsManager(ctx) {
		employeeID, err := s.currentEmployeeID(ctx)
		if err != nil {
			return nil, err
		}
		if !employeeID.Valid || uint64(employeeID.Int64) != assignment.EmployeeID {
			return nil, apperrors.ErrForbidden
		}
	}
	if assignment.Status != constants.AssignmentStatusAssigned {
		return nil, apperrors.ErrInvalidStatusChange
	}

	if err := s.repo.MarkReturnRequested(ctx, nil, id); err != nil {
		return nil, err
	}
	assignment.Status = constants.AssignmentStatusReturnRequested

	if err := s.notifier.SendToolReturnRequest(ctx, assignment); err != nil {
		s.logger.Error("Уведомление о возврате инструмента не отправлено", zap.Uint64("assignmentID", id), zap.Error(err))
	}
	return s.repo.FindAssignment(ctx, nil, id)
}

func (s *ToolAssignmentService) ReturnTool(ctx context.Context, id uint64) (*entities.ToolAssignment, error) {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		assignment, err := s.repo.FindAssignment(ctx, tx, id)
		if err != nil {
			return err
		}
		if assignment.Status != constants.AssignmentStatusAssigned &&
			assignment.Status != constants.AssignmentStatusReturnRequested {
			return apperrors.ErrInvalidStatusChange
		}
		if err := s.repo.MarkReturned(ctx, tx, id); err != nil {
			return err
		}
		return s.toolRepo.UpdateToolStatus(ctx, tx, assignment.ToolID, constants.ToolStatusAvailable)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindAssignment(ctx, nil, id)
}
