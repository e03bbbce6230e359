package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/textutil"
)

// ProductUseCase CRUD de productos. Sin scoping por vendedor: el catálogo es
// compartido por todos los usuarios autenticados.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductInput) (*entity.Product, error) {
	if in.Name == "" || in.Existence < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Existence: in.Existence,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

// Update reemplaza los campos del producto y devuelve el registro actualizado.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductInput) (*entity.Product, error) {
	if in.Name == "" || in.Existence < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Existence = in.Existence
	product.Price = in.Price
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina un producto. Devuelve ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

// Search busca productos por nombre, insensible a mayúsculas y tildes.
// Máximo 10 resultados.
func (uc *ProductUseCase) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.productRepo.Search(ctx, textutil.Fold(term), 10)
}
