package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-ferreteria-api/internal/application/dto"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

// SaleUseCase registra ventas de forma transaccional: inserta la cabecera,
// las líneas y descuenta stock con Commit/Rollback, y expone el historial.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso. saleRepo (sobre el pool) atiende
// el read model; las escrituras pasan por txRunner.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// RegisterSale valida la entrada y ejecuta la venta como unidad atómica:
//  1. inserta la cabecera con un id nuevo
//  2. por cada item, en orden de entrada: inserta la línea y descuenta stock
//  3. commit; cualquier fallo revierte todo y se reporta ErrTransactionFailed
//
// El stock puede quedar negativo: la cantidad no se valida contra la
// existencia actual. Ventas concurrentes sobre el mismo producto quedan en
// manos del aislamiento transaccional de la BD (el decremento es un único
// UPDATE por fila).
func (uc *SaleUseCase) RegisterSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}
	documentType := in.DocumentType
	if documentType == "" {
		documentType = entity.DocumentTicket
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		Total:         *in.Total,
		PaymentMethod: paymentMethod,
		DocumentType:  documentType,
		CreatedAt:     time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
			if err := productRepo.DecrementStock(it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	return &dto.CreateSaleResponse{ID: sale.ID, Message: "Venta procesada correctamente"}, nil
}

// validate rechaza la venta antes de tocar el almacén.
func validate(in dto.CreateSaleRequest) error {
	if in.Total == nil || in.Total.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	if in.DocumentType != "" && in.DocumentType != entity.DocumentTicket && in.DocumentType != entity.DocumentInvoice {
		return domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// List devuelve el historial de ventas, más reciente primero, con datos de
// cliente e items anidados (read model, fuera del núcleo transaccional).
func (uc *SaleUseCase) List() ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *repository.SaleWithCustomer) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		DocumentType:  s.DocumentType,
		CreatedAt:     s.CreatedAt,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Sale.Items)),
	}
	if s.Customer != nil {
		resp.Customer = &dto.SaleCustomerResponse{
			Name:       s.Customer.Name,
			DocumentID: s.Customer.DocumentID,
			Email:      s.Customer.Email,
			Phone:      s.Customer.Phone,
		}
	}
	for _, it := range s.Sale.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return resp
}
