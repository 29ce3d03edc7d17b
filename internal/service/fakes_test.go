package service

import (
	"context"

	"github.com/dancextreme/backend/internal/model"
)

// --- fakes shared by the service tests ---

type fakeUserStore struct {
	registerUser    *model.User
	registerCreated bool
	registerErr     error

	getUser *model.User
	getErr  error

	listUsers       []model.User
	listInstructors []model.Instructor

	setRoleErr error
	gotRoleID  string
	gotRole    string
}

func (f *fakeUserStore) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, bool, error) {
	return f.registerUser, f.registerCreated, f.registerErr
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.getUser, f.getErr
}

func (f *fakeUserStore) List(ctx context.Context) ([]model.User, error) {
	return f.listUsers, nil
}

func (f *fakeUserStore) ListInstructors(ctx context.Context) ([]model.Instructor, error) {
	return f.listInstructors, nil
}

func (f *fakeUserStore) SetRole(ctx context.Context, id, role string) error {
	f.gotRoleID, f.gotRole = id, role
	return f.setRoleErr
}

type fakeClassStore struct {
	createClass *model.Class
	createErr   error

	getClass *model.Class
	getErr   error

	listClasses []model.Class
	listErr     error

	setStatusErr  error
	gotStatusID   string
	gotStatus     string
	gotFeedback   string
	statusUpdated bool
}

func (f *fakeClassStore) Create(ctx context.Context, instructorEmail string, req model.CreateClassRequest) (*model.Class, error) {
	return f.createClass, f.createErr
}

func (f *fakeClassStore) GetByID(ctx context.Context, id string) (*model.Class, error) {
	return f.getClass, f.getErr
}

func (f *fakeClassStore) ListApproved(ctx context.Context, sortKey string, descending bool) ([]model.Class, error) {
	return f.listClasses, f.listErr
}

func (f *fakeClassStore) ListPopular(ctx context.Context, limit int) ([]model.Class, error) {
	return f.listClasses, f.listErr
}

func (f *fakeClassStore) ListAll(ctx context.Context) ([]model.Class, error) {
	return f.listClasses, f.listErr
}

func (f *fakeClassStore) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return f.listClasses, f.listErr
}

func (f *fakeClassStore) SetStatus(ctx context.Context, id, status, feedback string) error {
	if f.setStatusErr != nil {
		return f.setStatusErr
	}
	f.gotStatusID, f.gotStatus, f.gotFeedback = id, status, feedback
	f.statusUpdated = true
	return nil
}

type fakeCartStore struct {
	added    *model.CartSelection
	addErr   error
	gotEmail string

	selections []model.CartSelection

	removeErr error
	removedID string
}

func (f *fakeCartStore) Add(ctx context.Context, userEmail string, class *model.Class) (*model.CartSelection, error) {
	f.gotEmail = userEmail
	return f.added, f.addErr
}

func (f *fakeCartStore) ListForUser(ctx context.Context, email string) ([]model.CartSelection, error) {
	return f.selections, nil
}

func (f *fakeCartStore) Remove(ctx context.Context, id string) error {
	f.removedID = id
	return f.removeErr
}

type fakeSettlementStore struct {
	result     *model.SettlementResult
	settleErr  error
	gotPayment model.PaymentRequest
	settled    bool

	enrolled []model.EnrolledClass
}

func (f *fakeSettlementStore) Settle(ctx context.Context, payment model.PaymentRequest) (*model.SettlementResult, error) {
	if f.settleErr != nil {
		return nil, f.settleErr
	}
	f.gotPayment = payment
	f.settled = true
	return f.result, nil
}

func (f *fakeSettlementStore) ListEnrolledForUser(ctx context.Context, email string) ([]model.EnrolledClass, error) {
	return f.enrolled, nil
}

type fakeGateway struct {
	secret    string
	err       error
	gotAmount int64
	gotCurr   string
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	f.gotAmount, f.gotCurr = amountMinorUnits, currency
	return f.secret, f.err
}
