package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oniit/e-jadwal-public-web/internal/domain"
	assetRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/asset"
	bookingRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/booking"
	driverRepo "github.com/oniit/e-jadwal-public-web/internal/infra/storage/driver"
	"github.com/oniit/e-jadwal-public-web/pkg/ptr"
)

type fakeBookingRepo struct {
	byCode    map[string]*domain.Booking
	confirmed []*domain.Booking
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByCode(_ context.Context, code string) (*domain.Booking, error) {
	b, ok := f.byCode[code]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ domain.Window) ([]*domain.Booking, error) {
	return f.confirmed, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *domain.Booking) error {
	f.updated = b
	return nil
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

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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

func storedRoomBooking() *domain.Booking {
	return &domain.Booking{
		ID:             1,
		BookingID:      "251015-AAAAA",
		Type:           domain.BookingTypeRoom,
		Window:         window(9, 11),
		UserName:       "Dinas Pendidikan",
		AssetCode:      "GD-01",
		AssetName:      "Aula Utama",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Room:           &domain.RoomDetails{ActivityName: "Rapat Koordinasi"},
	}
}

func updateRequest(w domain.Window) *Request {
	return &Request{
		BookingID:      "251015-AAAAA",
		Type:           domain.BookingTypeRoom,
		Start:          w.Start,
		End:            w.End,
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

func roomCatalog() *fakeAssetRepo {
	return &fakeAssetRepo{
		assets: map[string]*domain.Asset{
			"GD-01": {ID: 1, Code: "GD-01", Name: "Aula Utama", Kind: domain.AssetKindRoom},
			"KD-01": {ID: 2, Code: "KD-01", Name: "Bus Dinas", Kind: domain.AssetKindVehicle},
		},
	}
}

func TestExecuteDoesNotConflictWithItself(t *testing.T) {
	existing := storedRoomBooking()
	bookings := &fakeBookingRepo{
		byCode:    map[string]*domain.Booking{existing.BookingID: existing},
		confirmed: []*domain.Booking{existing}, // the new window still overlaps the old one
	}
	uc := newTestUseCase(bookings, roomCatalog(), nil)

	resp, err := uc.Execute(context.Background(), updateRequest(window(10, 12)))
	require.NoError(t, err)

	assert.Equal(t, window(10, 12), domain.Window{Start: resp.Start, End: resp.End})
	require.NotNil(t, bookings.updated)
	assert.Equal(t, window(10, 12), bookings.updated.Window)
}

func TestExecuteConflictsWithOtherBooking(t *testing.T) {
	existing := storedRoomBooking()
	other := &domain.Booking{
		BookingID: "251015-BBBBB",
		Type:      domain.BookingTypeRoom,
		Window:    window(13, 15),
		AssetCode: "GD-01",
		AssetName: "Aula Utama",
		Room:      &domain.RoomDetails{},
	}
	bookings := &fakeBookingRepo{
		byCode:    map[string]*domain.Booking{existing.BookingID: existing},
		confirmed: []*domain.Booking{existing, other},
	}
	uc := newTestUseCase(bookings, roomCatalog(), nil)

	_, err := uc.Execute(context.Background(), updateRequest(window(14, 16)))
	assert.ErrorIs(t, err, ErrAssetConflict)
	assert.Nil(t, bookings.updated)
}

func TestExecuteUnknownBooking(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, roomCatalog(), nil)

	req := updateRequest(window(9, 11))
	req.BookingID = "251015-ZZZZZ"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecuteChangesBookingType(t *testing.T) {
	existing := storedRoomBooking()
	bookings := &fakeBookingRepo{
		byCode: map[string]*domain.Booking{existing.BookingID: existing},
	}
	drivers := &fakeDriverRepo{
		drivers: map[int64]*domain.Driver{7: {ID: 7, Code: "DRV-07", Name: "Pak Jono"}},
	}
	uc := newTestUseCase(bookings, roomCatalog(), drivers)

	w := window(8, 12)
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:      existing.BookingID,
		Type:           domain.BookingTypeVehicle,
		Start:          w.Start,
		End:            w.End,
		UserName:       "Dinas Pendidikan",
		AssetCode:      "KD-01",
		PersonInCharge: "Budi",
		PICPhone:       "08123456789",
		Destination:    "Bandung",
		DriverID:       ptr.Ptr(int64(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingTypeVehicle, resp.Type)
	assert.Equal(t, "Bus Dinas", resp.AssetName)
	require.NotNil(t, bookings.updated)
	assert.Nil(t, bookings.updated.Room, "room payload cleared on type change")
	require.NotNil(t, bookings.updated.Vehicle)
	assert.Equal(t, "Pak Jono", *bookings.updated.Vehicle.DriverName)
}

func TestExecuteItemShortageCountsOtherBookingsOnly(t *testing.T) {
	existing := storedRoomBooking()
	existing.Room.BorrowedItems = []domain.BorrowedItem{
		{AssetCode: "BRG-01", AssetName: "Kursi Lipat", Quantity: 40},
	}
	bookings := &fakeBookingRepo{
		byCode:    map[string]*domain.Booking{existing.BookingID: existing},
		confirmed: []*domain.Booking{existing},
	}
	assets := roomCatalog()
	assets.items = map[string]*domain.Asset{
		"BRG-01": {ID: 3, Code: "BRG-01", Name: "Kursi Lipat", Kind: domain.AssetKindItem, Capacity: 50},
	}
	uc := newTestUseCase(bookings, assets, nil)

	// 45 > 50-40 against the stored lines, but the booking's own consumption
	// is excluded, so the update passes.
	req := updateRequest(window(9, 11))
	req.Items = []ItemLine{{AssetCode: "BRG-01", Quantity: 45}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 45, resp.Items[0].Quantity)
}
