package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Сентинельные ошибки слоя репозиториев. Сервисы и проверки доступа
// сопоставляют их с доменной таксономией (NotFound / Conflict),
// не завися от деталей GORM.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// translate приводит ошибки GORM к сентинельным
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicate
	}
	return err
}

// orderExpr строит ORDER BY для sort_order ∈ {asc, desc};
// любое другое значение трактуется как asc
func orderExpr(column, sortOrder string) string {
	if sortOrder == "desc" {
		return fmt.Sprintf("%s DESC", column)
	}
	return fmt.Sprintf("%s ASC", column)
}
