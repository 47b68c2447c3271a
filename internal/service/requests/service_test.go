package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	requestRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/request"
	"github.com/oniit/e-jadwal-public-web/pkg/ptr"
)

type fakeRequestRepo struct {
	byCode map[string]*domain.Request

	rejectedID     int64
	rejectedReason *string
	deletedID      int64
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.Request, error) {
	for _, r := range f.byCode {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, requestRepo.ErrRequestNotFound
}

func (f *fakeRequestRepo) GetByCode(_ context.Context, code string) (*domain.Request, error) {
	r, ok := f.byCode[code]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) List(_ context.Context) ([]*domain.Request, error) {
	out := make([]*domain.Request, 0, len(f.byCode))
	for _, r := range f.byCode {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequestRepo) MarkRejected(_ context.Context, id int64, reason *string) error {
	f.rejectedID = id
	f.rejectedReason = reason
	return nil
}

func (f *fakeRequestRepo) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingRequest() *domain.Request {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return &domain.Request{
		ID:        5,
		RequestID: "K7Q2X",
		Status:    domain.StatusPending,
		Type:      domain.BookingTypeRoom,
		Window:    domain.Window{Start: day.Add(9 * time.Hour), End: day.Add(11 * time.Hour)},
		UserName:  "Dinas Pendidikan",
		AssetCode: "GD-01",
		AssetName: "Aula Utama",
		Room:      &domain.RoomDetails{ActivityName: "Rapat Koordinasi"},
	}
}

func newTestService(repo *fakeRequestRepo) *Service {
	return NewService(repo, passthroughTxManager{}, nopLogger{})
}

func TestRejectPendingRequest(t *testing.T) {
	pending := pendingRequest()
	repo := &fakeRequestRepo{byCode: map[string]*domain.Request{pending.RequestID: pending}}
	svc := newTestService(repo)

	reason := ptr.Ptr("gedung dipakai kegiatan internal")
	rejected, err := svc.Reject(context.Background(), pending.RequestID, reason)
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.rejectedID)
	require.NotNil(t, repo.rejectedReason)
	assert.Equal(t, *reason, *repo.rejectedReason)

	// The decided request comes back for the caller to serialize.
	require.NotNil(t, rejected)
	assert.Equal(t, "K7Q2X", rejected.RequestID)
	assert.Equal(t, domain.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, *reason, *rejected.RejectionReason)
}

func TestRejectWithoutReason(t *testing.T) {
	pending := pendingRequest()
	repo := &fakeRequestRepo{byCode: map[string]*domain.Request{pending.RequestID: pending}}
	svc := newTestService(repo)

	rejected, err := svc.Reject(context.Background(), pending.RequestID, nil)
	require.NoError(t, err)
	assert.Nil(t, repo.rejectedReason)
	require.NotNil(t, rejected)
	assert.Nil(t, rejected.RejectionReason)
}

func TestRejectUnknownRequest(t *testing.T) {
	svc := newTestService(&fakeRequestRepo{})

	_, err := svc.Reject(context.Background(), "ZZZZZ", nil)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRejectAlreadyDecidedRequest(t *testing.T) {
	decided := pendingRequest()
	decided.Status = domain.StatusApproved
	repo := &fakeRequestRepo{byCode: map[string]*domain.Request{decided.RequestID: decided}}
	svc := newTestService(repo)

	_, err := svc.Reject(context.Background(), decided.RequestID, nil)
	assert.ErrorIs(t, err, ErrRequestNotPending)
	assert.Zero(t, repo.rejectedID, "no transition recorded")
}

func TestDeleteResolvesCodeToRowID(t *testing.T) {
	decided := pendingRequest()
	decided.Status = domain.StatusRejected
	repo := &fakeRequestRepo{byCode: map[string]*domain.Request{decided.RequestID: decided}}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), decided.RequestID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.deletedID)
}

func TestGetByCodeUnknown(t *testing.T) {
	svc := newTestService(&fakeRequestRepo{})

	_, err := svc.GetByCode(context.Background(), "ZZZZZ")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
