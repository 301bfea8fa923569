package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/pos-ferreteria-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// Create y CreateItem se invocan dentro de la transacción de venta; List
// atiende el historial sobre el pool.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, total, payment_method, document_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, nullIfEmpty(sale.CustomerID), sale.Total,
		sale.PaymentMethod, sale.DocumentType, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// List devuelve las ventas más recientes primero, con los datos del cliente
// resueltos por join y las líneas de cada venta con el nombre del producto.
func (r *SaleRepo) List() ([]*repository.SaleWithCustomer, error) {
	query := `
		SELECT s.id, COALESCE(s.customer_id::text, ''), s.total, s.payment_method, s.document_type, s.created_at,
		       c.name, c.document_id, c.email, c.phone
		FROM sales s
		LEFT JOIN customers c ON s.customer_id = c.id
		ORDER BY s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*repository.SaleWithCustomer
	for rows.Next() {
		var s repository.SaleWithCustomer
		var cName, cDoc, cEmail, cPhone *string
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.Total, &s.PaymentMethod, &s.DocumentType, &s.CreatedAt,
			&cName, &cDoc, &cEmail, &cPhone,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if cName != nil {
			s.Customer = &entity.Customer{
				ID:         s.CustomerID,
				Name:       *cName,
				DocumentID: deref(cDoc),
				Email:      deref(cEmail),
				Phone:      deref(cPhone),
			}
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	for _, s := range list {
		items, err := r.itemsBySale(s.ID)
		if err != nil {
			return nil, err
		}
		s.Sale.Items = items
	}
	return list, nil
}

// itemsBySale recupera las líneas de una venta con su nombre de producto.
func (r *SaleRepo) itemsBySale(saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.unit_price, COALESCE(p.name, '')
		FROM sale_items si
		LEFT JOIN products p ON si.product_id = p.id
		WHERE si.sale_id = $1`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
