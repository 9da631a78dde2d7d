package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"RegistryAdmin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ServiceProviderRepository хранит единственного (default) сервис-провайдера,
// его endpoint'ы и сервисы.
type ServiceProviderRepository interface {
	// Get возвращает ErrNotFound, если провайдер ещё не создан.
	Get(ctx context.Context) (*model.ServiceProvider, error)
	Save(ctx context.Context, sp *model.ServiceProvider) error

	ListEndpoints(ctx context.Context) ([]model.Endpoint, error)
	CreateEndpoint(ctx context.Context, ep *model.Endpoint) error
	DeleteEndpoint(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, s *model.Service) error
}

type spRepo struct {
	db *gorm.DB
}

func NewServiceProviderRepository(db *gorm.DB) ServiceProviderRepository {
	return &spRepo{db: db}
}

func (r *spRepo) Get(ctx context.Context) (*model.ServiceProvider, error) {
	var sp model.ServiceProvider
	err := r.db.WithContext(ctx).Where("slot = ?", model.DefaultServiceProviderSlot).First(&sp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sp, nil
}

// Save делает upsert по ключу default.
func (r *spRepo) Save(ctx context.Context, sp *model.ServiceProvider) error {
	sp.Slot = model.DefaultServiceProviderSlot
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns([]string{"id", "name", "email", "phone", "website", "updated_at"}),
	}).Create(sp).Error
}

func (r *spRepo) ListEndpoints(ctx context.Context) ([]model.Endpoint, error) {
	var res []model.Endpoint
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *spRepo) CreateEndpoint(ctx context.Context, ep *model.Endpoint) error {
	return r.db.WithContext(ctx).Create(ep).Error
}

// DeleteEndpoint возвращает ErrNotFound, если endpoint не существует,
// и ErrInUse, если на него ссылается сервис.
func (r *spRepo) DeleteEndpoint(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var services []model.Service
		if err := tx.Find(&services).Error; err != nil {
			return err
		}
		for _, s := range services {
			for _, epID := range splitIDs(s.EndpointIDs) {
				if epID == id {
					return fmt.Errorf("%w: endpoint is referenced by service %q", ErrInUse, s.Name)
				}
			}
		}
		res := tx.Where("id = ?", id).Delete(&model.Endpoint{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *spRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	var res []model.Service
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&res).Error; err != nil {
		return nil, err
	}
	for i := range res {
		res[i].Endpoints = splitIDs(res[i].EndpointIDs)
	}
	return res, nil
}

func (r *spRepo) CreateService(ctx context.Context, s *model.Service) error {
	s.EndpointIDs = strings.Join(s.Endpoints, ",")
	return translateError(r.db.WithContext(ctx).Create(s).Error)
}

func splitIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
