package repo

import (
	"context"
	"errors"

	"RegistryAdmin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerRepository - доступ к подключённым клиентам.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Customer, error)

	// ListServiceRefs возвращает включённые у клиента сервисы.
	ListServiceRefs(ctx context.Context, customerID string) ([]model.CustomerServiceRef, error)
	// ReplaceServiceRefs заменяет ссылки на составные сервисы клиента (ServiceID != ""),
	// не трогая остальные (NutsComm).
	ReplaceServiceRefs(ctx context.Context, customerID string, refs []model.CustomerServiceRef) error
	// UpsertServiceRefs создаёт или обновляет ссылки по ключу (customer_id, type).
	UpsertServiceRefs(ctx context.Context, refs []model.CustomerServiceRef) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return translateError(r.db.WithContext(ctx).Create(c).Error)
}

// GetByID возвращает ErrNotFound, если клиента нет.
func (r *customerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List возвращает клиентов в порядке имени.
func (r *customerRepo) List(ctx context.Context) ([]model.Customer, error) {
	var res []model.Customer
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}

func (r *customerRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Customer, error) {
	tx := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *customerRepo) ListServiceRefs(ctx context.Context, customerID string) ([]model.CustomerServiceRef, error) {
	var res []model.CustomerServiceRef
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("type ASC").Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *customerRepo) ReplaceServiceRefs(ctx context.Context, customerID string, refs []model.CustomerServiceRef) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("customer_id = ? AND service_id <> ''", customerID).Delete(&model.CustomerServiceRef{}).Error
		if err != nil {
			return err
		}
		if len(refs) == 0 {
			return nil
		}
		for i := range refs {
			refs[i].CustomerID = customerID
		}
		return translateError(tx.Create(&refs).Error)
	})
}

func (r *customerRepo) UpsertServiceRefs(ctx context.Context, refs []model.CustomerServiceRef) error {
	if len(refs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"service_id", "ref"}),
	}).Create(&refs).Error
}
