package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	quantRepo repository.StockQuantRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, quantRepo repository.StockQuantRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, quantRepo: quantRepo}
}

// Create crea un producto nuevo. El SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	uom := in.UOM
	if uom == "" {
		uom = "Units"
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Cost:        in.Cost,
		Price:       in.Price,
		Barcode:     in.Barcode,
		UOM:         uom,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU es inmutable una vez que el producto
// aparece en movimientos históricos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		referenced, err := uc.repo.ReferencedInHistory(id)
		if err != nil {
			return nil, err
		}
		if referenced {
			return nil, domain.ErrConflict
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Cost != nil {
		product.Cost = *in.Cost
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.UOM != nil {
		product.UOM = *in.UOM
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto que no esté referenciado en movimientos históricos.
func (uc *ProductUseCase) Delete(id string) error {
	referenced, err := uc.repo.ReferencedInHistory(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, p := range list {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp, nil
}

// StockLevels devuelve los niveles de stock del producto en todas las ubicaciones.
func (uc *ProductUseCase) StockLevels(id string) ([]dto.StockQuantResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	quants, err := uc.quantRepo.List(repository.StockQuantFilter{ProductID: id, Limit: 1000})
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockQuantResponse, 0, len(quants))
	for _, q := range quants {
		out = append(out, dto.StockQuantResponse{
			ID:                q.ID,
			ProductID:         q.ProductID,
			LocationID:        q.LocationID,
			Quantity:          q.Quantity,
			ReservedQuantity:  q.ReservedQuantity,
			AvailableQuantity: q.Available(),
			UpdatedAt:         q.UpdatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Cost:        p.Cost,
		Price:       p.Price,
		Barcode:     p.Barcode,
		UOM:         p.UOM,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
