package forms

import (
	"context"

	"deskhub/internal/domain/catalog"
	"deskhub/internal/shared/errors"
)

// Service resolves a category by ID and assembles its intake form schema. It
// is the entry point the public API uses; admin code works with the builder
// directly.
type Service struct {
	categoryRepo catalog.CategoryRepository
	builder      *SchemaBuilder
}

func NewService(categoryRepo catalog.CategoryRepository, builder *SchemaBuilder) *Service {
	return &Service{categoryRepo: categoryRepo, builder: builder}
}

func (s *Service) GetSchema(ctx context.Context, categoryID uint) (*Schema, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NewNotFoundError("category not found")
	}
	return s.builder.Build(ctx, category)
}
