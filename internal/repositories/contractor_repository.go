package repositories

import (
	"context"

	"github.com/alinamiashalkina/event-creator/internal/models"

	"gorm.io/gorm"
)

type ContractorRepository interface {
	// CreateWithUser создает пользователя, профиль подрядчика, его услуги
	// и элементы портфолио одной транзакцией
	CreateWithUser(ctx context.Context, user *models.User, contractor *models.Contractor,
		services []models.ContractorService, items []models.PortfolioItem) error
	FindByID(ctx context.Context, id uint) (*models.Contractor, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Contractor, error)
	FindApplication(ctx context.Context, id uint) (*models.Contractor, error)
	List(ctx context.Context, skip, limit int, sortOrder string) ([]models.Contractor, error)
	ListApplications(ctx context.Context, skip, limit int, sortOrder string) ([]models.Contractor, error)
	Approve(ctx context.Context, contractorID uint) error
	Update(ctx context.Context, contractor *models.Contractor) error
	UpdateWithUser(ctx context.Context, contractor *models.Contractor, user *models.User) error
	UpdateAverageRating(ctx context.Context, contractorID uint, rating *float64) error

	// Услуги подрядчика
	ListServices(ctx context.Context, contractorID uint) ([]models.ContractorService, error)
	FindService(ctx context.Context, contractorID, serviceID uint) (*models.ContractorService, error)
	CreateService(ctx context.Context, service *models.ContractorService) error
	UpdateService(ctx context.Context, service *models.ContractorService) error
	DeleteService(ctx context.Context, contractorID, serviceID uint) error
}

type gormContractorRepository struct {
	db *gorm.DB
}

func NewContractorRepository(db *gorm.DB) ContractorRepository {
	return &gormContractorRepository{db: db}
}

func (r *gormContractorRepository) CreateWithUser(ctx context.Context, user *models.User, contractor *models.Contractor,
	services []models.ContractorService, items []models.PortfolioItem) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		contractor.UserID = user.ID
		if err := tx.Create(contractor).Error; err != nil {
			return err
		}
		for i := range services {
			services[i].ContractorID = contractor.ID
		}
		if len(services) > 0 {
			if err := tx.Create(&services).Error; err != nil {
				return err
			}
		}
		for i := range items {
			items[i].ContractorID = contractor.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}

func (r *gormContractorRepository) FindByID(ctx context.Context, id uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.WithContext(ctx).Preload("User").First(&contractor, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &contractor, nil
}

func (r *gormContractorRepository) FindByUserID(ctx context.Context, userID uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&contractor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &contractor, nil
}

// FindApplication загружает заявку подрядчика вместе с пользователем,
// услугами и портфолио
func (r *gormContractorRepository) FindApplication(ctx context.Context, id uint) (*models.Contractor, error) {
	var contractor models.Contractor
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Services").
		Preload("PortfolioItems").
		First(&contractor, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &contractor, nil
}

// List возвращает подрядчиков, сортировка по имени пользователя
func (r *gormContractorRepository) List(ctx context.Context, skip, limit int, sortOrder string) ([]models.Contractor, error) {
	var contractors []models.Contractor
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = contractors.user_id").
		Where("users.role = ?", models.UserRoleContractor).
		Order(orderExpr("users.name", sortOrder)).
		Offset(skip).Limit(limit).
		Preload("User").
		Find(&contractors).Error
	return contractors, err
}

// ListApplications возвращает неподтвержденные заявки,
// сортировка по дате подачи
func (r *gormContractorRepository) ListApplications(ctx context.Context, skip, limit int, sortOrder string) ([]models.Contractor, error) {
	var contractors []models.Contractor
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order(orderExpr("created_at", sortOrder)).
		Offset(skip).Limit(limit).
		Preload("User").
		Find(&contractors).Error
	return contractors, err
}

// Approve активирует пользователя и помечает подрядчика подтвержденным
// одной транзакцией: инвариант "approved => active" не должен нарушаться
// даже при частичном сбое
func (r *gormContractorRepository) Approve(ctx context.Context, contractorID uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contractor models.Contractor
		if err := tx.First(&contractor, contractorID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", contractor.UserID).
			Update("is_active", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Contractor{}).
			Where("id = ?", contractorID).
			Update("is_approved", true).Error
	}))
}

func (r *gormContractorRepository) Update(ctx context.Context, contractor *models.Contractor) error {
	return translate(r.db.WithContext(ctx).Omit("User").Save(contractor).Error)
}

func (r *gormContractorRepository) UpdateWithUser(ctx context.Context, contractor *models.Contractor, user *models.User) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Save(contractor).Error; err != nil {
			return err
		}
		return tx.Save(user).Error
	}))
}

func (r *gormContractorRepository) UpdateAverageRating(ctx context.Context, contractorID uint, rating *float64) error {
	return r.db.WithContext(ctx).Model(&models.Contractor{}).
		Where("id = ?", contractorID).
		Update("average_rating", rating).Error
}

func (r *gormContractorRepository) ListServices(ctx context.Context, contractorID uint) ([]models.ContractorService, error) {
	var services []models.ContractorService
	err := r.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Find(&services).Error
	return services, err
}

func (r *gormContractorRepository) FindService(ctx context.Context, contractorID, serviceID uint) (*models.ContractorService, error) {
	var service models.ContractorService
	err := r.db.WithContext(ctx).
		Where("contractor_id = ? AND id = ?", contractorID, serviceID).
		First(&service).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (r *gormContractorRepository) CreateService(ctx context.Context, service *models.ContractorService) error {
	return translate(r.db.WithContext(ctx).Create(service).Error)
}

func (r *gormContractorRepository) UpdateService(ctx context.Context, service *models.ContractorService) error {
	return translate(r.db.WithContext(ctx).Save(service).Error)
}

func (r *gormContractorRepository) DeleteService(ctx context.Context, contractorID, serviceID uint) error {
	result := r.db.WithContext(ctx).
		Where("contractor_id = ? AND id = ?", contractorID, serviceID).
		Delete(&models.ContractorService{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
