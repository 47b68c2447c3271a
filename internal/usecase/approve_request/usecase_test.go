package approve_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	requestRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/request"
	"github.com/oniit/e-jadwal-public-web/pkg/ptr"
)

type fakeRequestRepo struct {
	requests map[string]*domain.Request

	approvedID        int64
	approvedBy        string
	approvedBookingID string
}

func (f *fakeRequestRepo) GetByCode(_ context.Context, code string) (*domain.Request, error) {
	r, ok := f.requests[code]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) MarkApproved(_ context.Context, id int64, approvedBy string, _ time.Time, bookingID string) error {
	f.approvedID = id
	f.approvedBy = approvedBy
	f.approvedBookingID = bookingID
	return nil
}

type fakeBookingRepo struct {
	confirmed []*domain.Booking
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.created = b
	out := *b
	out.ID = 10
	out.BookingID = "251015-CCCCC"
	return &out, nil
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ domain.Window) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

type fakeAssetRepo struct {
	assets map[string]*domain.Asset
	items  map[string]*domain.Asset
}

func (f *fakeAssetRepo) GetByCode(_ context.Context, code string) (*domain.Asset, error) {
	a, ok := f.assets[code]
	if !ok {
		return nil, assetRepo.ErrAssetNotFound
	}
	return a, nil
}

func (f *fakeAssetRepo) GetCountableByCodes(_ context.Context, codes []string) (map[string]*domain.Asset, error) {
	out := make(map[string]*domain.Asset)
	for _, code := range codes {
		if a, ok := f.items[code]; ok {
			out[code] = a
		}
	}
	return out, nil
}

type fakeDriverRepo struct {
	drivers map[int64]*domain.Driver
}

func (f *fakeDriverRepo) GetByID(_ context.Context, id int64) (*domain.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return nil, driverRepo.ErrDriverNotFound
	}
	return d, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func window(startHour, endHour int) domain.Window {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return domain.Window{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func pendingRoomRequest() *domain.Request {
	return &domain.Request{
		ID:             5,
		RequestID:      "K7Q2X",
		Status:         domain.StatusPending,
		Type:           domain.BookingTypeRoom,
		Window:         window(9, 11),
		UserName:       "Dinas Pendidikan",
		AssetCode:      "GD-01",
		AssetName:      "Aula Lama", // stale submission-time snapshot
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Room:           &domain.RoomDetails{ActivityName: "Rapat Koordinasi"},
	}
}

func pendingVehicleRequest(driverID *int64) *domain.Request {
	return &domain.Request{
		ID:             6,
		RequestID:      "M4ZJ8",
		Status:         domain.StatusPending,
		Type:           domain.BookingTypeVehicle,
		Window:         window(8, 12),
		UserName:       "Dinas Pendidikan",
		AssetCode:      "KD-01",
		AssetName:      "Bus Dinas",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Vehicle:        &domain.VehicleDetails{Destination: "Bandung", DriverID: driverID},
	}
}

func newTestUseCase(requests *fakeRequestRepo, bookings *fakeBookingRepo, assets *fakeAssetRepo, drivers *fakeDriverRepo) *UseCase {
	if drivers == nil {
		drivers = &fakeDriverRepo{}
	}
	uc := NewUseCase(requests, bookings, assets, drivers, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC)}
	return uc
}

func roomCatalog() *fakeAssetRepo {
	return &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"GD-01": {ID: 1, Code: "GD-01", Name: "Aula Utama", Kind: domain.AssetKindRoom},
		},
	}
}

func TestExecuteApprovesPendingRequest(t *testing.T) {
	requests := &fakeRequestRepo{
		requests: map[string]*domain.Request{"K7Q2X": pendingRoomRequest()},
	}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(requests, bookings, roomCatalog(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		RequestID:  "K7Q2X",
		ApprovedBy: "admin.sarpras",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, resp.Status)
	assert.Equal(t, "admin.sarpras", resp.ApprovedBy)
	assert.Equal(t, time.Date(2025, 10, 14, 10, 0, 0, 0, time.UTC), resp.ApprovedAt)

	require.NotNil(t, resp.Booking)
	assert.Equal(t, "251015-CCCCC", resp.Booking.BookingID)
	assert.Equal(t, "Aula Utama", resp.Booking.AssetName, "name re-snapshotted at decision time")

	assert.Equal(t, int64(5), requests.approvedID)
	assert.Equal(t, "251015-CCCCC", requests.approvedBookingID)
}

func TestExecuteRejectsUnknownRequest(t *testing.T) {
	uc := newTestUseCase(&fakeRequestRepo{}, &fakeBookingRepo{}, roomCatalog(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		RequestID:  "ZZZZZ",
		ApprovedBy: "admin.sarpras",
	})
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestExecuteRejectsAlreadyDecidedRequest(t *testing.T) {
	decided := pendingRoomRequest()
	decided.Status = domain.StatusRejected
	requests := &fakeRequestRepo{
		requests: map[string]*domain.Request{decided.RequestID: decided},
	}
	uc := newTestUseCase(requests, &fakeBookingRepo{}, roomCatalog(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		RequestID:  decided.RequestID,
		ApprovedBy: "admin.sarpras",
	})
	assert.ErrorIs(t, err, ErrRequestNotPending)
	assert.Zero(t, requests.approvedID, "no transition recorded")
}

func TestExecuteConflictLeavesRequestPending(t *testing.T) {
	pending := pendingRoomRequest()
	requests := &fakeRequestRepo{
		requests: map[string]*domain.Request{pending.RequestID: pending},
	}
	bookings := &fakeBookingRepo{
		confirmed: []*domain.Booking{{
			BookingID: "251015-DDDDD",
			Type:      domain.BookingTypeRoom,
			Window:    window(8, 16),
			AssetCode: "GD-01",
			AssetName: "Aula Utama",
			Room:      &domain.RoomDetails{},
		}},
	}
	uc := newTestUseCase(requests, bookings, roomCatalog(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		RequestID:  pending.RequestID,
		ApprovedBy: "admin.sarpras",
	})
	assert.ErrorIs(t, err, ErrAssetConflict)
	assert.Nil(t, bookings.created, "no booking materialized on conflict")
	assert.Zero(t, requests.approvedID, "request stays pending")
	assert.Equal(t, domain.StatusPending, pending.Status)
}

func TestExecuteDriverOverride(t *testing.T) {
	pending := pendingVehicleRequest(ptr.Ptr(int64(7)))
	requests := &fakeRequestRepo{
		requests: map[string]*domain.Request{pending.RequestID: pending},
	}
	bookings := &fakeBookingRepo{}
	assets := &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"KD-01": {ID: 2, Code: "KD-01", Name: "Bus Dinas", Kind: domain.AssetKindVehicle},
		},
	}
	drivers := &fakeDriverRepo{
		drivers: map[int64]*domain.Driver{
			7: {ID: 7, Code: "DRV-07", Name: "Pak Jono"},
			9: {ID: 9, Code: "DRV-09", Name: "Bu Sri"},
		},
	}
	uc := newTestUseCase(requests, bookings, assets, drivers)

	resp, err := uc.Execute(context.Background(), &Request{
		RequestID:  pending.RequestID,
		ApprovedBy: "admin.sarpras",
		DriverID:   ptr.Ptr(int64(9)),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Booking.DriverID)
	assert.Equal(t, int64(9), *resp.Booking.DriverID)
	assert.Equal(t, "Bu Sri", *resp.Booking.DriverName)
}

func TestExecuteRejectsMissingOverrideDriver(t *testing.T) {
	pending := pendingVehicleRequest(nil)
	requests := &fakeRequestRepo{
		requests: map[string]*domain.Request{pending.RequestID: pending},
	}
	assets := &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"KD-01": {ID: 2, Code: "KD-01", Name: "Bus Dinas", Kind: domain.AssetKindVehicle},
		},
	}
	uc := newTestUseCase(requests, &fakeBookingRepo{}, assets, &fakeDriverRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		RequestID:  pending.RequestID,
		ApprovedBy: "admin.sarpras",
		DriverID:   ptr.Ptr(int64(42)),
	})
	assert.ErrorIs(t, err, ErrDriverNotFound)
}

func TestExecuteRequiresApprover(t *testing.T) {
	uc := newTestUseCase(&fakeRequestRepo{}, &fakeBookingRepo{}, roomCatalog(), nil)

	_, err := uc.Execute(context.Background(), &Request{RequestID: "K7Q2X"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteItemShortageLeavesRequestPending(t *testing.T) {
	pending := pendingRoomRequest()
	pending.Room.BorrowedItems = []domain.BorrowedItem{
		{AssetCode: "BRG-01", AssetName: "Kursi Lipat", Quantity: 30},
	}
	requests := &fakeRequestRepo{
		requests: map[string]*domain.Request{pending.RequestID: pending},
	}
	bookings := &fakeBookingRepo{
		confirmed: []*domain.Booking{{
			BookingID: "251015-DDDDD",
			Type:      domain.BookingTypeRoom,
			Window:    window(8, 16),
			AssetCode: "GD-02",
			AssetName: "Ruang Rapat",
			Room: &domain.RoomDetails{
				BorrowedItems: []domain.BorrowedItem{
					{AssetCode: "BRG-01", AssetName: "Kursi Lipat", Quantity: 30},
				},
			},
		}},
	}
	assets := roomCatalog()
	assets.items = map[string]*domain.Asset{
		"BRG-01": {ID: 3, Code: "BRG-01", Name: "Kursi Lipat", Kind: domain.AssetKindItem, Capacity: 50},
	}
	uc := newTestUseCase(requests, bookings, assets, nil)

	_, err := uc.Execute(context.Background(), &Request{
		RequestID:  pending.RequestID,
		ApprovedBy: "admin.sarpras",
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Zero(t, requests.approvedID)
}
