package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	"github.com/oniit/e-jadwal-public-web/pkg/ptr"
)

type fakeBookingRepo struct {
	confirmed []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = b
	out := *b
	out.ID = 1
	if out.BookingID == "" {
		out.BookingID = "251015-AAAAA"
	}
	out.SubmittedAt = time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)
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

type alwaysValidHours struct{}

func (alwaysValidHours) Validate(domain.Window) error { return nil }

type rejectingHours struct{ err error }

func (h rejectingHours) Validate(domain.Window) error { return h.err }

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func window(startHour, endHour int) (time.Time, time.Time) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour) * time.Hour), day.Add(time.Duration(endHour) * time.Hour)
}

func roomRequest() *Request {
	start, end := window(9, 11)
	return &Request{
		Type:           domain.BookingTypeRoom,
		Start:          start,
		End:            end,
		UserName:       "Dinas Pendidikan",
		AssetCode:      "GD-01",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		ActivityName:   "Rapat Koordinasi",
	}
}

func newTestUseCase(bookings *fakeBookingRepo, assets *fakeAssetRepo, drivers *fakeDriverRepo) *UseCase {
	if drivers == nil {
		drivers = &fakeDriverRepo{}
	}
	return NewUseCase(bookings, assets, drivers, alwaysValidHours{}, passthroughTxManager{}, nopLogger{})
}

func catalogWithRoom() *fakeAssetRepo {
	return &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"GD-01": {ID: 1, Code: "GD-01", Name: "Aula Utama", Kind: domain.AssetKindRoom},
		},
	}
}

func TestExecuteCreatesRoomBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, catalogWithRoom(), nil)

	resp, err := uc.Execute(context.Background(), roomRequest())
	require.NoError(t, err)

	assert.Equal(t, "251015-AAAAA", resp.BookingID)
	assert.Equal(t, domain.BookingTypeRoom, resp.Type)
	assert.Equal(t, "Aula Utama", resp.AssetName, "asset name snapshotted from catalog")
	assert.Equal(t, "Rapat Koordinasi", resp.ActivityName)
	require.NotNil(t, bookings.created)
	assert.NotNil(t, bookings.created.Room)
}

func TestExecuteRejectsUnknownAsset(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeAssetRepo{}, nil)

	_, err := uc.Execute(context.Background(), roomRequest())
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestExecuteRejectsKindMismatch(t *testing.T) {
	assets := &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"GD-01": {ID: 1, Code: "GD-01", Name: "Bus Dinas", Kind: domain.AssetKindVehicle},
		},
	}
	uc := newTestUseCase(&fakeBookingRepo{}, assets, nil)

	_, err := uc.Execute(context.Background(), roomRequest())
	assert.ErrorIs(t, err, ErrAssetKindMismatch)
}

func TestExecuteRejectsRoomOutsideBusinessHours(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{}, catalogWithRoom(), &fakeDriverRepo{},
		rejectingHours{err: errors.New("outside hours")}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), roomRequest())
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecuteSkipsHoursCheckForVehicles(t *testing.T) {
	start, end := window(22, 23) // well outside any office hours
	assets := &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"KD-01": {ID: 2, Code: "KD-01", Name: "Bus Dinas", Kind: domain.AssetKindVehicle},
		},
	}
	uc := NewUseCase(
		&fakeBookingRepo{}, assets, &fakeDriverRepo{},
		rejectingHours{err: errors.New("outside hours")}, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Type:           domain.BookingTypeVehicle,
		Start:          start,
		End:            end,
		UserName:       "Dinas Pendidikan",
		AssetCode:      "KD-01",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Destination:    "Bandung",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bandung", resp.Destination)
}

func TestExecuteRejectsAssetConflict(t *testing.T) {
	start, end := window(8, 16)
	bookings := &fakeBookingRepo{
		confirmed: []*domain.Booking{{
			BookingID: "251015-BBBBB",
			Type:      domain.BookingTypeRoom,
			Window:    domain.Window{Start: start, End: end},
			AssetCode: "GD-01",
			AssetName: "Aula Utama",
			Room:      &domain.RoomDetails{},
		}},
	}
	uc := newTestUseCase(bookings, catalogWithRoom(), nil)

	_, err := uc.Execute(context.Background(), roomRequest())
	assert.ErrorIs(t, err, ErrAssetConflict)
	assert.Nil(t, bookings.created, "nothing stored on conflict")
}

func TestExecuteRejectsDriverConflict(t *testing.T) {
	start, end := window(8, 12)
	bookings := &fakeBookingRepo{
		confirmed: []*domain.Booking{{
			BookingID: "251015-BBBBB",
			Type:      domain.BookingTypeVehicle,
			Window:    domain.Window{Start: start, End: end},
			AssetCode: "KD-02",
			AssetName: "Mobil Operasional",
			Vehicle: &domain.VehicleDetails{
				Destination: "Semarang",
				DriverID:    ptr.Ptr(int64(7)),
				DriverName:  ptr.Ptr("Pak Jono"),
			},
		}},
	}
	assets := &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"KD-01": {ID: 2, Code: "KD-01", Name: "Bus Dinas", Kind: domain.AssetKindVehicle},
		},
	}
	drivers := &fakeDriverRepo{
		drivers: map[int64]*domain.Driver{
			7: {ID: 7, Code: "DRV-07", Name: "Pak Jono"},
		},
	}
	uc := newTestUseCase(bookings, assets, drivers)

	reqStart, reqEnd := window(10, 14)
	_, err := uc.Execute(context.Background(), &Request{
		Type:           domain.BookingTypeVehicle,
		Start:          reqStart,
		End:            reqEnd,
		UserName:       "Dinas Pendidikan",
		AssetCode:      "KD-01",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Destination:    "Bandung",
		DriverID:       ptr.Ptr(int64(7)),
	})
	assert.ErrorIs(t, err, ErrDriverConflict)
}

func TestExecuteSnapshotsItemNames(t *testing.T) {
	bookings := &fakeBookingRepo{}
	assets := catalogWithRoom()
	assets.items = map[string]*domain.Asset{
		"BRG-01": {ID: 3, Code: "BRG-01", Name: "Kursi Lipat", Kind: domain.AssetKindItem, Capacity: 50},
	}
	uc := newTestUseCase(bookings, assets, nil)

	req := roomRequest()
	req.Items = []ItemLine{
		{AssetCode: "BRG-01", Quantity: 10},
		{AssetCode: "BRG-01", Quantity: 5}, // duplicate lines aggregate
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Kursi Lipat", resp.Items[0].AssetName)
	assert.Equal(t, 15, resp.Items[0].Quantity)
}

func TestExecuteRejectsUnknownItemCode(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, catalogWithRoom(), nil)

	req := roomRequest()
	req.Items = []ItemLine{{AssetCode: "BRG-99", Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrItemUnavailable)
}

func TestExecuteRejectsInsufficientStock(t *testing.T) {
	start, end := window(8, 16)
	bookings := &fakeBookingRepo{
		confirmed: []*domain.Booking{{
			BookingID: "251015-BBBBB",
			Type:      domain.BookingTypeRoom,
			Window:    domain.Window{Start: start, End: end},
			AssetCode: "GD-02",
			AssetName: "Ruang Rapat",
			Room: &domain.RoomDetails{
				BorrowedItems: []domain.BorrowedItem{
					{AssetCode: "BRG-01", AssetName: "Kursi Lipat", Quantity: 45},
				},
			},
		}},
	}
	assets := catalogWithRoom()
	assets.items = map[string]*domain.Asset{
		"BRG-01": {ID: 3, Code: "BRG-01", Name: "Kursi Lipat", Kind: domain.AssetKindItem, Capacity: 50},
	}
	uc := newTestUseCase(bookings, assets, nil)

	req := roomRequest()
	req.Items = []ItemLine{{AssetCode: "BRG-01", Quantity: 10}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestExecuteValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, catalogWithRoom(), nil)

	t.Run("inverted window", func(t *testing.T) {
		req := roomRequest()
		req.Start, req.End = req.End, req.Start
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("missing user name", func(t *testing.T) {
		req := roomRequest()
		req.UserName = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("room without activity name", func(t *testing.T) {
		req := roomRequest()
		req.ActivityName = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("vehicle with items", func(t *testing.T) {
		req := roomRequest()
		req.Type = domain.BookingTypeVehicle
		req.Destination = "Bandung"
		req.Items = []ItemLine{{AssetCode: "BRG-01", Quantity: 1}}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
