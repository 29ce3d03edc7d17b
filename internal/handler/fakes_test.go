package handler

import (
	"context"

	"github.com/dancextreme/backend/internal/model"
	"github.com/dancextreme/backend/internal/repository"
)

// --- store and gateway fakes backing real services in handler tests ---

type fakeUserStore struct {
	registerUser    *model.User
	registerCreated bool
	registerErr     error

	usersByEmail map[string]*model.User
	getErr       error

	setRoleErr error
}

func (f *fakeUserStore) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, bool, error) {
	return f.registerUser, f.registerCreated, f.registerErr
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	return nil, nil
}

func (f *fakeUserStore) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return nil, nil
}

func (f *fakeUserStore) SetRole(ctx context.Context, id, role string) error {
	return f.setRoleErr
}

type fakeClassStore struct {
	createClass *model.Class
	createErr   error

	getClass *model.Class
	getErr   error

	listClasses  []model.Class
	setStatusErr error
}

func (f *fakeClassStore) Create(ctx context.Context, instructorEmail string, req model.CreateClassRequest) (*model.Class, error) {
	return f.createClass, f.createErr
}

func (f *fakeClassStore) GetByID(ctx context.Context, id string) (*model.Class, error) {
	return f.getClass, f.getErr
}

func (f *fakeClassStore) ListApproved(ctx context.Context, sortKey string, descending bool) ([]model.Class, error) {
	return f.listClasses, nil
}

func (f *fakeClassStore) ListPopular(ctx context.Context, limit int) ([]model.Class, error) {
	return f.listClasses, nil
}

func (f *fakeClassStore) ListAll(ctx context.Context) ([]model.Class, error) {
	return f.listClasses, nil
}

func (f *fakeClassStore) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return f.listClasses, nil
}

func (f *fakeClassStore) SetStatus(ctx context.Context, id, status, feedback string) error {
	return f.setStatusErr
}

type fakeCartStore struct {
	added      *model.CartSelection
	addErr     error
	selections []model.CartSelection
	removeErr  error
}

func (f *fakeCartStore) Add(ctx context.Context, userEmail string, class *model.Class) (*model.CartSelection, error) {
	return f.added, f.addErr
}

func (f *fakeCartStore) ListForUser(ctx context.Context, email string) ([]model.CartSelection, error) {
	return f.selections, nil
}

func (f *fakeCartStore) Remove(ctx context.Context, id string) error {
	return f.removeErr
}

type fakeSettlementStore struct {
	result    *model.SettlementResult
	settleErr error
	enrolled  []model.EnrolledClass
}

func (f *fakeSettlementStore) Settle(ctx context.Context, payment model.PaymentRequest) (*model.SettlementResult, error) {
	return f.result, f.settleErr
}

func (f *fakeSettlementStore) ListEnrolledForUser(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	return f.enrolled, nil
}

type fakeGateway struct {
	secret string
	err    error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	return f.secret, f.err
}
