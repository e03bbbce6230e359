package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/auth"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes con scoping por vendedor: lectura por ID,
// actualización y borrado solo para el vendedor dueño del registro.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso de clientes.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create persiste un cliente con vendor = identidad del contexto.
// Devuelve ErrEmailAlreadyExists si el email ya está tomado.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.ClientInput) (*entity.Client, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Lastname == "" || in.Company == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.clientRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Lastname:  in.Lastname,
		Company:   in.Company,
		Email:     in.Email,
		Cellphone: in.Cellphone,
		Vendor:    ident.ID,
		CreatedAt: time.Now(),
	}
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetByID devuelve un cliente del vendedor autenticado.
// ErrNotFound si no existe, ErrForbidden si pertenece a otro vendedor.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	return uc.getOwned(ctx, id)
}

// List devuelve todos los clientes sin filtrar por vendedor. Endpoint
// administrativo heredado del contrato original; se conserva documentado.
func (uc *ClientUseCase) List(ctx context.Context) ([]*entity.Client, error) {
	if _, err := auth.Require(ctx); err != nil {
		return nil, err
	}
	return uc.clientRepo.List(ctx)
}

// ListByVendor devuelve los clientes del vendedor autenticado.
func (uc *ClientUseCase) ListByVendor(ctx context.Context) ([]*entity.Client, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	return uc.clientRepo.ListByVendor(ctx, ident.ID)
}

// Update reemplaza los campos del cliente, con el mismo chequeo de dueño que GetByID.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.ClientInput) (*entity.Client, error) {
	client, err := uc.getOwned(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Lastname == "" || in.Company == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	client.Name = in.Name
	client.Lastname = in.Lastname
	client.Company = in.Company
	client.Email = in.Email
	client.Cellphone = in.Cellphone
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Delete elimina el cliente, con el mismo chequeo de dueño que GetByID.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	client, err := uc.getOwned(ctx, id)
	if err != nil {
		return err
	}
	return uc.clientRepo.Delete(ctx, client.ID)
}

// getOwned resuelve el cliente y verifica que pertenezca al vendedor autenticado.
func (uc *ClientUseCase) getOwned(ctx context.Context, id string) (*entity.Client, error) {
	ident, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.Vendor != ident.ID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}
