package admin

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/alinamiashalkina/event-creator/internal/models"
	"github.com/alinamiashalkina/event-creator/pkg/apperrors"
)

/*
Админский реестр ресурсов. Вместо разбросанной по пакетам регистрации
каждый ресурс заводится явно при старте: имя -> дескриптор со списочной
функцией. Реестр неизменяем после сборки, новые ресурсы добавляются
только здесь.
*/

// ListFunc возвращает страницу строк ресурса в произвольной форме
type ListFunc func(ctx context.Context, skip, limit int, sortOrder string) (interface{}, error)

// Resource - дескриптор одного управляемого ресурса
type Resource struct {
	Name        string
	Description string
	List        ListFunc
}

type Registry struct {
	resources map[string]Resource
}

// NewRegistry собирает таблицу ресурсов поверх подключения к базе.
// Списки здесь обслуживают только админский обзор данных, поэтому
// обращаются к базе напрямую, без бизнес-правил сервисов.
func NewRegistry(db *gorm.DB) *Registry {
	r := &Registry{resources: make(map[string]Resource)}

	register(r, "users", "User accounts", db, func() interface{} { return &[]models.User{} })
	register(r, "contractors", "Contractor profiles", db, func() interface{} { return &[]models.Contractor{} })
	register(r, "events", "Events", db, func() interface{} { return &[]models.Event{} })
	register(r, "invitations", "Event invitations", db, func() interface{} { return &[]models.EventInvitation{} })
	register(r, "reviews", "Contractor reviews", db, func() interface{} { return &[]models.Review{} })
	register(r, "categories", "Service categories", db, func() interface{} { return &[]models.Category{} })
	register(r, "services", "Catalog services", db, func() interface{} { return &[]models.Service{} })
	register(r, "notifications", "Queued notifications", db, func() interface{} { return &[]models.Notification{} })

	return r
}

func register(r *Registry, name, description string, db *gorm.DB, newSlice func() interface{}) {
	r.resources[name] = Resource{
		Name:        name,
		Description: description,
		List: func(ctx context.Context, skip, limit int, sortOrder string) (interface{}, error) {
			order := "id asc"
			if sortOrder == "desc" {
				order = "id desc"
			}
			dest := newSlice()
			err := db.WithContext(ctx).
				Order(order).
				Offset(skip).Limit(limit).
				Find(dest).Error
			if err != nil {
				return nil, err
			}
			return dest, nil
		},
	}
}

// Names возвращает имена ресурсов в стабильном порядке
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe возвращает дескрипторы всех ресурсов
func (r *Registry) Describe() []Resource {
	resources := make([]Resource, 0, len(r.resources))
	for _, name := range r.Names() {
		resources = append(resources, r.resources[name])
	}
	return resources
}

// Lookup находит ресурс по имени
func (r *Registry) Lookup(name string) (Resource, error) {
	resource, ok := r.resources[name]
	if !ok {
		return Resource{}, apperrors.ErrNotFound(nil, "admin", "Unknown resource: "+name)
	}
	return resource, nil
}
