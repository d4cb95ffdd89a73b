package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/internal/domain/repository"
)

// BrandUseCase casos de uso de la marca del vendor autenticado.
type BrandUseCase struct {
	gateway ports.BrandGateway
	session repository.SessionRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(gateway ports.BrandGateway, session repository.SessionRepository) *BrandUseCase {
	return &BrandUseCase{gateway: gateway, session: session}
}

// RegisterBrand crea la marca del vendor (multipart con logo opcional).
func (uc *BrandUseCase) RegisterBrand(ctx context.Context, in dto.RegisterBrandRequest, logo *dto.Attachment) (*entity.Brand, error) {
	resp, err := uc.gateway.Register(ctx, in, logo)
	if err != nil {
		return nil, err
	}
	return ToBrand(resp), nil
}

// GetMyBrand devuelve la marca del usuario cacheado, o nil si no hay usuario o no
// tiene marca. Aunque la consulta ya va filtrada por owner, la colección se filtra
// de nuevo aquí: hay backends que ignoran el parámetro y devuelven todas las marcas.
func (uc *BrandUseCase) GetMyBrand(ctx context.Context) (*entity.Brand, error) {
	user, err := uc.session.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil || user.ID == "" {
		return nil, nil
	}
	brands, err := uc.gateway.ListByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	for i := range brands {
		if brands[i].Owner.ID == user.ID {
			return ToBrand(&brands[i]), nil
		}
	}
	return nil, nil
}

// UpdateBrand PUT parcial de la marca.
func (uc *BrandUseCase) UpdateBrand(ctx context.Context, id string, in dto.UpdateBrandRequest) (*entity.Brand, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id de marca requerido", domain.ErrInvalidInput)
	}
	resp, err := uc.gateway.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	return ToBrand(resp), nil
}

// ToBrand convierte la respuesta del backend a la entidad.
func ToBrand(r *dto.BrandResponse) *entity.Brand {
	if r == nil {
		return nil
	}
	return &entity.Brand{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		LogoURL:        r.LogoURL,
		Status:         r.Status,
		RejectedReason: r.RejectedReason,
		CommissionRate: r.CommissionRate,
		Owner:          r.Owner.ID,
		CreatedAt:      r.CreatedAt,
		BusinessInfo: entity.BusinessInfo{
			LegalName:          r.BusinessInfo.LegalName,
			TaxID:              r.BusinessInfo.TaxID,
			RegistrationNumber: r.BusinessInfo.RegistrationNumber,
			BusinessType:       r.BusinessInfo.BusinessType,
		},
		BankDetails: entity.BankDetails{
			AccountName:   r.BankDetails.AccountName,
			AccountNumber: r.BankDetails.AccountNumber,
			BankName:      r.BankDetails.BankName,
			IBAN:          r.BankDetails.IBAN,
		},
	}
}
