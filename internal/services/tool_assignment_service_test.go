package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/pkg/constants"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

type zimmetFixture struct {
	repo      *MockAssignmentRepository
	tools     *MockToolRepository
	employees *MockEmployeeRepository
	profiles  *MockProfileRepository
	tx        *fakeTxManager
	notifier  *MockNotifier
	svc       ToolAssignmentServiceInterface
}

func newZimmetFixture() *zimmetFixture {
	f := &zimmetFixture{
		repo:      new(MockAssignmentRepository),
		tools:     new(MockToolRepository),
		employees: new(MockEmployeeRepository),
		profiles:  new(MockProfileRepository),
		tx:        &fakeTxManager{},
		notifier:  new(MockNotifier),
	}
	f.svc = NewToolAssignmentService(f.repo, f.tools, f.employees, f.profiles, f.tx, f.notifier, zap.NewNop())
	return f
}

func adminCtx() context.Context {
	return utils.WithSession(context.Background(), 1, constants.RoleAdmin)
}

func userCtx(profileID uint64) context.Context {
	return utils.WithSession(context.Background(), profileID, constants.RoleUser)
}

func TestAssignTool_RequiresAvailableTool(t *testing.T) {
	f := newZimmetFixture()
	f.employees.On("FindEmployee", mock.Anything, uint64(4)).Return(&entities.Employee{ID: 4}, nil)
	f.tools.On("FindTool", mock.Anything, mock.Anything, uint64(9)).Return(&entities.Tool{ID: 9, Status: constants.ToolStatusMaintenance}, nil)

	_, err := f.svc.AssignTool(adminCtx(), dto.AssignToolDTO{ToolID: 9, EmployeeID: 4})
	require.ErrorIs(t, err, apperrors.ErrToolNotAvailable)
	f.repo.AssertNotCalled(t, "CreateAssignment", mock.Anything, mock.Anything, mock.Anything)
	f.tools.AssertNotCalled(t, "UpdateToolStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignTool_CreatesAssignmentAndMarksTool(t *testing.T) {
	f := newZimmetFixture()
	f.employees.On("FindEmployee", mock.Anything, uint64(4)).Return(&entities.Employee{ID: 4}, nil)
	f.tools.On("FindTool", mock.Anything, mock.Anything, uint64(9)).Return(&entities.Tool{ID: 9, Status: constants.ToolStatusAvailable}, nil)
	f.repo.On("CreateAssignment", mock.Anything, mock.Anything, mock.MatchedBy(func(a entities.ToolAssignment) bool {
		return a.ToolID == 9 && a.EmployeeID == 4 && a.Status == constants.AssignmentStatusAssigned && a.AssignedBy == null.Int64From(1)
	})).Return(uint64(30), nil)
	f.tools.On("UpdateToolStatus", mock.Anything, mock.Anything, uint64(9), constants.ToolStatusAssigned).Return(nil)
	f.repo.On("FindAssignment", mock.Anything, mock.Anything, uint64(30)).
		Return(&entities.ToolAssignment{ID: 30, Status: constants.AssignmentStatusAssigned}, nil)

	a, err := f.svc.AssignTool(adminCtx(), dto.AssignToolDTO{ToolID: 9, EmployeeID: 4})
	require.NoError(t, err)
	assert.Equal(t, uint64(30), a.ID)
	assert.Equal(t, 1, f.tx.calls)
	f.tools.AssertExpectations(t)
}

func TestRequestReturn_OnlyAssigneeOrManager(t *testing.T) {
	f := newZimmetFixture()
	f.repo.On("FindAssignment", mock.Anything, mock.Anything, uint64(30)).
		Return(&entities.ToolAssignment{ID: 30, EmployeeID: 4, Status: constants.AssignmentStatusAssigned}, nil)
	f.profiles.On("FindByID", mock.Anything, uint64(20)).Return(&entities.Profile{ID: 20, EmployeeID: null.Int64From(5)}, nil)

	_, err := f.svc.RequestReturn(userCtx(20), 30)
	require.ErrorIs(t, err, apperrors.ErrForbidden)
	f.repo.AssertNotCalled(t, "MarkReturnRequested", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestReturn_ByAssignee(t *testing.T) {
	f := newZimmetFixture()
	f.repo.On("FindAssignment", mock.Anything, mock.Anything, uint64(30)).
		Return(&entities.ToolAssignment{ID: 30, EmployeeID: 4, Status: constants.AssignmentStatusAssigned}, nil)
	f.profiles.On("FindByID", mock.Anything, uint64(20)).Return(&entities.Profile{ID: 20, EmployeeID: null.Int64From(4)}, nil)
	f.repo.On("MarkReturnRequested", mock.Anything, mock.Anything, uint64(30)).Return(nil)
	f.notifier.On("SendToolReturnRequest", mock.Anything, mock.MatchedBy(func(a *entities.ToolAssignment) bool {
		return a.ID == 30 && a.Status == constants.AssignmentStatusReturnRequested
	})).Return(nil)

	_, err := f.svc.RequestReturn(userCtx(20), 30)
	require.NoError(t, err)
	f.repo.AssertCalled(t, "MarkReturnRequested", mock.Anything, mock.Anything, uint64(30))
	f.notifier.AssertExpectations(t)
}

func TestRequestReturn_InvalidTransition(t *testing.T) {
	for _, status := range []string{constants.AssignmentStatusReturnRequested, constants.AssignmentStatusReturned} {
		f := newZimmetFixture()
		f.repo.On("FindAssignment", mock.Anything, mock.Anything, uint64(30)).
			Return(&entities.ToolAssignment{ID: 30, EmployeeID: 4, Status: status}, nil)

		_, err := f.svc.RequestReturn(adminCtx(), 30)
		require.ErrorIs(t, err, apperrors.ErrInvalidStatusChange, status)
		f.repo.AssertNotCalled(t, "MarkReturnRequested", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestReturnTool_Transitions(t *testing.T) {
	cases := []struct {
		status  string
		wantErr error
	}{
		{constants.AssignmentStatusAssigned, nil},
		{constants.AssignmentStatusReturnRequested, nil},
		{constants.AssignmentStatusReturned, apperrors.ErrInvalidStatusChange},
	}
	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			f := newZimmetFixture()
			f.repo.On("FindAssignment", mock.Anything, mock.Anything, uint64(30)).
				Return(&entities.ToolAssignment{ID: 30, ToolID: 9, Status: tc.status}, nil)
			f.repo.On("MarkReturned", mock.Anything, mock.Anything, uint64(30)).Return(nil)
			f.tools.On("UpdateToolStatus", mock.Anything, mock.Anything, uint64(9), constants.ToolStatusAvailable).Return(nil)

			_, err := f.svc.ReturnTool(adminCtx(), 30)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				f.repo.AssertNotCalled(t, "MarkReturned", mock.Anything, mock.Anything, mock.Anything)
				f.tools.AssertNotCalled(t, "UpdateToolStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			f.repo.AssertCalled(t, "MarkReturned", mock.Anything, mock.Anything, uint64(30))
			f.tools.AssertCalled(t, "UpdateToolStatus", mock.Anything, mock.Anything, uint64(9), constants.ToolStatusAvailable)
		})
	}
}

func TestGetAssignments_UserSeesOwn(t *testing.T) {
	f := newZimmetFixture()
	f.profiles.On("FindByID", mock.Anything, uint64(20)).Return(&entities.Profile{ID: 20, EmployeeID: null.Int64From(4)}, nil)
	f.repo.On("GetAssignments", mock.Anything, mock.MatchedBy(func(filter types.Filter) bool {
		return filter.Filter["employee_id"] == int64(4)
	})).Return([]entities.ToolAssignment{{ID: 1, EmployeeID: 4}}, uint64(1), nil)

	res, err := f.svc.GetAssignments(userCtx(20), newFilter())
	require.NoError(t, err)
	assert.Len(t, res.List, 1)
	f.repo.AssertExpectations(t)
}

func TestGetAssignments_UserWithoutEmployeeGetsEmptyList(t *testing.T) {
	f := newZimmetFixture()
	f.profiles.On("FindByID", mock.Anything, uint64(21)).Return(&entities.Profile{ID: 21}, nil)

	res, err := f.svc.GetAssignments(userCtx(21), newFilter())
	require.NoError(t, err)
	assert.Empty(t, res.List)
	f.repo.AssertNotCalled(t, "GetAssignments", mock.Anything, mock.Anything)
}
