package reservation

import (
	"context"
	"sync"
	"testing"
	"time"

	"equiptrack/internal/database"
	"equiptrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	if r != nil {
		r.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByEmail(ctx context.Context, email string) ([]domain.Reservation, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListQueueForEquipment(ctx context.Context, equipmentID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) DeleteByEquipmentAndEmail(ctx context.Context, equipmentID int64, email string) (int64, error) {
	args := m.Called(ctx, equipmentID, email)
	return args.Get(0).(int64), args.Error(1)
}

type MockEquipmentReader struct {
	mock.Mock
}

func (m *MockEquipmentReader) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestService(reservations ReservationRepository, equipment EquipmentReader) *Service {
	return NewService(reservations, equipment, database.NewGuard())
}

func TestService_Create_Success(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockEq.On("ExistsByID", mock.Anything, int64(3)).Return(true, nil)
	mockRes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	r, err := svc.Create(context.Background(), 3, "asel@student.kz", domain.RoleStudent, true)

	assert.NoError(t, err)
	assert.Equal(t, int64(999), r.ID)
	assert.Equal(t, int64(3), r.EquipmentID)
	assert.Equal(t, "asel@student.kz", r.RequesterEmail)
	assert.Equal(t, PriorityEntitled, r.Priority)
	assert.False(t, r.SubmittedAt.IsZero())
	mockRes.AssertExpectations(t)
	mockEq.AssertExpectations(t)
}

func TestService_Create_StampsTeacherPriority(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockEq.On("ExistsByID", mock.Anything, int64(1)).Return(true, nil)
	mockRes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	r, err := svc.Create(context.Background(), 1, "prof@uni.kz", domain.RoleTeacher, false)

	assert.NoError(t, err)
	assert.Equal(t, PriorityTeacher, r.Priority)
}

func TestService_Create_EquipmentMissing(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockEq.On("ExistsByID", mock.Anything, int64(42)).Return(false, nil)

	r, err := svc.Create(context.Background(), 42, "asel@student.kz", domain.RoleStudent, false)

	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.Nil(t, r)
	mockRes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_EmptyRequester(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	_, err := svc.Create(context.Background(), 1, "  ", domain.RoleStudent, false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), 1, "a@b.c", domain.UserRole(""), false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Cancel_Owner(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockRes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID: 7, EquipmentID: 1, RequesterEmail: "asel@student.kz",
	}, nil)
	mockRes.On("DeleteByID", mock.Anything, int64(7)).Return(int64(1), nil)

	err := svc.Cancel(context.Background(), 7, "asel@student.kz", domain.RoleStudent)
	assert.NoError(t, err)
	mockRes.AssertExpectations(t)
}

func TestService_Cancel_AdminOverride(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockRes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID: 7, EquipmentID: 1, RequesterEmail: "asel@student.kz",
	}, nil)
	mockRes.On("DeleteByID", mock.Anything, int64(7)).Return(int64(1), nil)

	err := svc.Cancel(context.Background(), 7, "admin@equiptrack.local", domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestService_Cancel_ForeignReservation(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockRes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID: 7, EquipmentID: 1, RequesterEmail: "asel@student.kz",
	}, nil)

	err := svc.Cancel(context.Background(), 7, "bek@student.kz", domain.RoleStudent)
	assert.ErrorIs(t, err, ErrForbidden)
	mockRes.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestService_Cancel_TwiceReturnsNotFound(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockRes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Reservation{
		ID: 7, EquipmentID: 1, RequesterEmail: "asel@student.kz",
	}, nil).Once()
	mockRes.On("DeleteByID", mock.Anything, int64(7)).Return(int64(1), nil).Once()
	mockRes.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound).Once()

	assert.NoError(t, svc.Cancel(context.Background(), 7, "asel@student.kz", domain.RoleStudent))
	assert.ErrorIs(t, svc.Cancel(context.Background(), 7, "asel@student.kz", domain.RoleStudent), ErrNotFound)
	mockRes.AssertExpectations(t)
}

func TestService_ProcessQueue_AdmitsHighestPriority(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// winner-first order as the repository returns it:
	// B (priority 2) ahead of both of A's priority-1 rows
	queue := []domain.Reservation{
		{ID: 2, EquipmentID: 5, RequesterEmail: "b@uni.kz", Priority: 2, SubmittedAt: base.Add(5 * time.Minute)},
		{ID: 1, EquipmentID: 5, RequesterEmail: "a@uni.kz", Priority: 1, SubmittedAt: base},
		{ID: 3, EquipmentID: 5, RequesterEmail: "a@uni.kz", Priority: 1, SubmittedAt: base.Add(2 * time.Minute)},
	}

	mockEq.On("ExistsByID", mock.Anything, int64(5)).Return(true, nil)
	mockRes.On("ListQueueForEquipment", mock.Anything, int64(5)).Return(queue, nil)
	mockRes.On("DeleteByEquipmentAndEmail", mock.Anything, int64(5), "b@uni.kz").Return(int64(1), nil)

	result, err := svc.ProcessQueue(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, "b@uni.kz", result.Admitted)
	assert.Equal(t, int64(1), result.Cleared)
	mockRes.AssertExpectations(t)
}

func TestService_ProcessQueue_ClearsWinnerBacklog(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	// after B's admission only A's two rows remain; earlier one first
	queue := []domain.Reservation{
		{ID: 1, EquipmentID: 5, RequesterEmail: "a@uni.kz", Priority: 1, SubmittedAt: base},
		{ID: 3, EquipmentID: 5, RequesterEmail: "a@uni.kz", Priority: 1, SubmittedAt: base.Add(2 * time.Minute)},
	}

	mockEq.On("ExistsByID", mock.Anything, int64(5)).Return(true, nil)
	mockRes.On("ListQueueForEquipment", mock.Anything, int64(5)).Return(queue, nil)
	// both of A's reservations disappear in one admission
	mockRes.On("DeleteByEquipmentAndEmail", mock.Anything, int64(5), "a@uni.kz").Return(int64(2), nil)

	result, err := svc.ProcessQueue(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, "a@uni.kz", result.Admitted)
	assert.Equal(t, int64(2), result.Cleared)
	mockRes.AssertExpectations(t)
}

func TestService_ProcessQueue_EmptyQueueIsNotAnError(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockEq.On("ExistsByID", mock.Anything, int64(5)).Return(true, nil)
	mockRes.On("ListQueueForEquipment", mock.Anything, int64(5)).Return([]domain.Reservation{}, nil)

	result, err := svc.ProcessQueue(context.Background(), 5)

	assert.NoError(t, err)
	assert.Empty(t, result.Admitted)
	assert.Equal(t, int64(0), result.Cleared)
	mockRes.AssertNotCalled(t, "DeleteByEquipmentAndEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ProcessQueue_EquipmentMissing(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	mockEq.On("ExistsByID", mock.Anything, int64(404)).Return(false, nil)

	result, err := svc.ProcessQueue(context.Background(), 404)
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.Nil(t, result)
}

func TestService_List_AdminSeesAll(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	all := []domain.Reservation{{ID: 1}, {ID: 2}, {ID: 3}}
	mockRes.On("ListAll", mock.Anything).Return(all, nil)

	rows, err := svc.List(context.Background(), "admin@equiptrack.local", domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	mockRes.AssertNotCalled(t, "ListByEmail", mock.Anything, mock.Anything)
}

func TestService_List_StudentSeesOwn(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockEq := new(MockEquipmentReader)
	svc := newTestService(mockRes, mockEq)

	own := []domain.Reservation{{ID: 1, RequesterEmail: "asel@student.kz"}}
	mockRes.On("ListByEmail", mock.Anything, "asel@student.kz").Return(own, nil)

	rows, err := svc.List(context.Background(), "asel@student.kz", domain.RoleStudent)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	mockRes.AssertNotCalled(t, "ListAll", mock.Anything)
}

// fakeStore is a plain in-memory store with no locking of its own; the
// guard inside the service is the only thing keeping writes consistent.
type fakeStore struct {
	nextID int64
	rows   []domain.Reservation
}

func (f *fakeStore) Create(ctx context.Context, r *domain.Reservation) error {
	f.nextID++
	r.ID = f.nextID
	f.rows = append(f.rows, *r)
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	for _, r := range f.rows {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return append([]domain.Reservation(nil), f.rows...), nil
}

func (f *fakeStore) ListByEmail(ctx context.Context, email string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.rows {
		if r.RequesterEmail == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) ListQueueForEquipment(ctx context.Context, equipmentID int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, r := range f.rows {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) DeleteByEquipmentAndEmail(ctx context.Context, equipmentID int64, email string) (int64, error) {
	var kept []domain.Reservation
	var deleted int64
	for _, r := range f.rows {
		if r.EquipmentID == equipmentID && r.RequesterEmail == email {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return deleted, nil
}

type alwaysExists struct{}

func (alwaysExists) ExistsByID(ctx context.Context, id int64) (bool, error) { return true, nil }

func TestService_Create_ConcurrentWritesAreNotLost(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, alwaysExists{}, database.NewGuard())

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := svc.Create(context.Background(), 1, "user"+string(rune('a'+n%26))+"@uni.kz", domain.RoleStudent, n%2 == 0)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	rows, err := store.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, writers)
}
