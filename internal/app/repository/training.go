package repository

import (
	"fmt"

	"trainingcenter/internal/app/ds"
)

// Методы для справочников видов и программ обучения

// GetTrainingTypes возвращает все виды обучения.
func (r *Repository) GetTrainingTypes() ([]ds.TrainingType, error) {
	var types []ds.TrainingType
	if err := r.db.Order("id").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to load training types: %w", err)
	}
	return types, nil
}

// GetProgramsByType возвращает программы выбранного вида обучения.
func (r *Repository) GetProgramsByType(typeID uint) ([]ds.TrainingProgram, error) {
	var programs []ds.TrainingProgram
	err := r.db.Where("training_type_id = ?", typeID).Order("id").Find(&programs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load training programs: %w", err)
	}
	return programs, nil
}

// GetTypeNamesByIDs возвращает названия видов обучения одним запросом.
func (r *Repository) GetTypeNamesByIDs(ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var types []ds.TrainingType
	if err := r.db.Where("id IN ?", ids).Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to load training types: %w", err)
	}

	names := make(map[uint]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names, nil
}

// GetProgramNamesByIDs возвращает названия программ обучения одним запросом.
func (r *Repository) GetProgramNamesByIDs(ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}

	var programs []ds.TrainingProgram
	if err := r.db.Where("id IN ?", ids).Find(&programs).Error; err != nil {
		return nil, fmt.Errorf("failed to load training programs: %w", err)
	}

	names := make(map[uint]string, len(programs))
	for _, p := range programs {
		names[p.ID] = p.Name
	}
	return names, nil
}
