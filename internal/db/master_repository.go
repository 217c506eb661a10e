package db

import "gorm.io/gorm"

// MasterRepository is the shared persistence contract for name-keyed
// reference entities (program categories, program types, stakeholder
// categories). Every master table has an id and a name column, which is
// all the generic operations rely on.
type MasterRepository[T any] struct {
	database *gorm.DB
}

func NewMasterRepository[T any](database *gorm.DB) *MasterRepository[T] {
	return &MasterRepository[T]{database: database}
}

func (repo *MasterRepository[T]) List() ([]T, error) {
	records := make([]T, 0)
	if err := repo.database.Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *MasterRepository[T]) FindByID(id uint) (*T, error) {
	var record T
	if err := repo.database.First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// NameExists reports a case-insensitive name collision. excludeID skips
// the record itself on updates; zero means no exclusion.
func (repo *MasterRepository[T]) NameExists(name string, excludeID uint) (bool, error) {
	var record T
	query := repo.database.Model(&record).Where("lower(trim(name)) = lower(trim(?))", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *MasterRepository[T]) Create(record *T) error {
	return repo.database.Create(record).Error
}

func (repo *MasterRepository[T]) Save(record *T) error {
	return repo.database.Save(record).Error
}

func (repo *MasterRepository[T]) Delete(id uint) error {
	var record T
	return repo.database.Delete(&record, id).Error
}
