package service

import (
	"context"
	"sort"
	"strings"

	"github.com/cargasinestres/booking-backend/internal/model"
	"github.com/cargasinestres/booking-backend/internal/repository"
)

// In-memory store fakes.  They mirror the repository contracts:
// not-found is reported with the repository sentinels and list results
// come back in insertion (id) order.

type fakeCustomerStore struct {
	customers map[uint64]*model.Customer
}

func newFakeCustomerStore(customers ...*model.Customer) *fakeCustomerStore {
	f := &fakeCustomerStore{customers: map[uint64]*model.Customer{}}
	for _, cu := range customers {
		f.customers[cu.ID] = cu
	}
	return f
}

func (f *fakeCustomerStore) GetByID(_ context.Context, id uint64) (*model.Customer, error) {
	cu, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return cu, nil
}

type fakeCompanyStore struct {
	companies map[uint64]*model.Company
	nextID    uint64
}

func newFakeCompanyStore(companies ...*model.Company) *fakeCompanyStore {
	f := &fakeCompanyStore{companies: map[uint64]*model.Company{}}
	for _, co := range companies {
		f.companies[co.ID] = co
		if co.ID > f.nextID {
			f.nextID = co.ID
		}
	}
	return f
}

func (f *fakeCompanyStore) Create(_ context.Context, co *model.Company) error {
	f.nextID++
	co.ID = f.nextID
	f.companies[co.ID] = co
	return nil
}

func (f *fakeCompanyStore) Update(_ context.Context, co *model.Company) error {
	if _, ok := f.companies[co.ID]; !ok {
		return repository.ErrCompanyNotFound
	}
	f.companies[co.ID] = co
	return nil
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id uint64) (*model.Company, error) {
	co, ok := f.companies[id]
	if !ok {
		return nil, repository.ErrCompanyNotFound
	}
	return co, nil
}

func (f *fakeCompanyStore) GetByEmail(_ context.Context, email string) (*model.Company, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, co := range f.companies {
		if co.Email == email {
			return co, nil
		}
	}
	return nil, repository.ErrCompanyNotFound
}

func (f *fakeCompanyStore) ListAll(_ context.Context) ([]*model.Company, error) {
	ids := make([]uint64, 0, len(f.companies))
	for id := range f.companies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*model.Company, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.companies[id])
	}
	return out, nil
}

func (f *fakeCompanyStore) ExistsByNameAndTIC(_ context.Context, name, tic string) (bool, error) {
	for _, co := range f.companies {
		if co.Name == name && co.TIC == tic {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, co := range f.companies {
		if co.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyStore) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	for _, co := range f.companies {
		if co.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

type fakeServicioStore struct {
	catalog map[uint64]model.Servicio
}

func newFakeServicioStore(servicios ...model.Servicio) *fakeServicioStore {
	f := &fakeServicioStore{catalog: map[uint64]model.Servicio{}}
	for _, s := range servicios {
		f.catalog[s.ID] = s
	}
	return f
}

func (f *fakeServicioStore) FindAllByIDs(_ context.Context, ids []uint64) ([]model.Servicio, error) {
	sorted := append([]uint64(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	out := make([]model.Servicio, 0, len(sorted))
	for _, id := range sorted {
		if s, ok := f.catalog[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeReservationStore struct {
	reservations map[uint64]*model.Reservation
	order        []uint64
	nextID       uint64
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{reservations: map[uint64]*model.Reservation{}}
}

func (f *fakeReservationStore) Create(_ context.Context, res *model.Reservation) error {
	f.nextID++
	res.ID = f.nextID
	f.reservations[res.ID] = res
	f.order = append(f.order, res.ID)
	return nil
}

func (f *fakeReservationStore) Update(_ context.Context, res *model.Reservation) error {
	if _, ok := f.reservations[res.ID]; !ok {
		return repository.ErrReservationNotFound
	}
	f.reservations[res.ID] = res
	return nil
}

func (f *fakeReservationStore) GetByID(_ context.Context, id uint64) (*model.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, repository.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationStore) ListByCustomer(_ context.Context, customerID uint64) ([]*model.Reservation, error) {
	out := make([]*model.Reservation, 0)
	for _, id := range f.order {
		if res := f.reservations[id]; res.CustomerID == customerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) ListByCompany(_ context.Context, companyID uint64) ([]*model.Reservation, error) {
	out := make([]*model.Reservation, 0)
	for _, id := range f.order {
		if res := f.reservations[id]; res.CompanyID == companyID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) ListByCompanyAndStatus(_ context.Context, companyID uint64, status string) ([]*model.Reservation, error) {
	out := make([]*model.Reservation, 0)
	for _, id := range f.order {
		if res := f.reservations[id]; res.CompanyID == companyID && res.Status == status {
			out = append(out, res)
		}
	}
	return out, nil
}
