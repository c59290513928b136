package sales

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	dsales "github.com/jhoicas/tienda-api/internal/domain/sales"
)

// buildSale arma la venta desde una entrada ya validada y recalcula todos
// los montos. Los IDs de líneas y variantes se conservan si vienen informados.
func buildSale(storeID string, in dto.CreateSaleRequest, newID func() string) *entity.Sale {
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		id := it.ID
		if id == "" {
			id = newID()
		}
		var variants []entity.SaleVariant
		for _, v := range it.Variants {
			vid := v.ID
			if vid == "" {
				vid = newID()
			}
			variants = append(variants, entity.SaleVariant{ID: vid, Name: v.Name, Price: v.Price})
		}
		items = append(items, entity.SaleItem{
			ID:          id,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Variants:    variants,
			Notes:       it.Notes,
		})
	}

	delivery := entity.SaleDelivery{
		Method: entity.DeliveryMethod(in.Delivery.Method),
		Notes:  in.Delivery.Notes,
	}
	if delivery.Method == entity.DeliveryShipping {
		delivery.Address = in.Delivery.Address
	}

	s := &entity.Sale{
		StoreID:  storeID,
		Source:   entity.SaleSource(in.Source),
		Customer: entity.SaleCustomer{Name: in.Customer.Name, Phone: in.Customer.Phone, Email: in.Customer.Email},
		Items:    items,
		Delivery: delivery,
		Payment:  entity.SalePayment{Method: entity.PaymentMethod(in.Payment.Method)},
		Totals:   entity.SaleTotals{Discount: in.Discount},
		Notes:    in.Notes,
	}
	dsales.Recalculate(s)
	return s
}

// requestFromSale proyecta una venta almacenada a la forma de entrada, base
// sobre la que se aplica un parche parcial.
func requestFromSale(s *entity.Sale) dto.CreateSaleRequest {
	items := make([]dto.SaleItemRequest, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemRequest{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Variants:    toVariantDTOs(it.Variants),
			Notes:       it.Notes,
		})
	}
	return dto.CreateSaleRequest{
		Source:   string(s.Source),
		Customer: dto.SaleCustomerDTO{Name: s.Customer.Name, Phone: s.Customer.Phone, Email: s.Customer.Email},
		Items:    items,
		Delivery: dto.SaleDeliveryDTO{Method: string(s.Delivery.Method), Address: s.Delivery.Address, Notes: s.Delivery.Notes},
		Payment:  dto.SalePaymentRequest{Method: string(s.Payment.Method)},
		Discount: s.Totals.Discount,
		Notes:    s.Notes,
	}
}

// applyPatch sobreescribe en base los campos presentes en el parche.
func applyPatch(base dto.CreateSaleRequest, p dto.UpdateSaleRequest) dto.CreateSaleRequest {
	if p.Source != nil {
		base.Source = *p.Source
	}
	if p.Customer != nil {
		base.Customer = *p.Customer
	}
	if p.Items != nil {
		base.Items = *p.Items
	}
	if p.Delivery != nil {
		base.Delivery = *p.Delivery
	}
	if p.Payment != nil {
		base.Payment = *p.Payment
	}
	if p.Discount != nil {
		base.Discount = *p.Discount
	}
	if p.Notes != nil {
		base.Notes = *p.Notes
	}
	return base
}

func toVariantDTOs(vs []entity.SaleVariant) []dto.SaleVariantDTO {
	out := make([]dto.SaleVariantDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, dto.SaleVariantDTO{ID: v.ID, Name: v.Name, Price: v.Price})
	}
	return out
}

// ToSaleResponse convierte la entidad a DTO de salida.
func ToSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Variants:    toVariantDTOs(it.Variants),
			Subtotal:    it.Subtotal,
			Notes:       it.Notes,
		})
	}
	return dto.SaleResponse{
		ID:          s.ID,
		OrderNumber: s.OrderNumber,
		StoreID:     s.StoreID,
		Source:      string(s.Source),
		Customer:    dto.SaleCustomerDTO{Name: s.Customer.Name, Phone: s.Customer.Phone, Email: s.Customer.Email},
		Items:       items,
		Delivery:    dto.SaleDeliveryDTO{Method: string(s.Delivery.Method), Address: s.Delivery.Address, Notes: s.Delivery.Notes},
		Payment:     dto.SalePaymentResponse{Method: string(s.Payment.Method), Total: s.Payment.Total},
		Totals:      dto.SaleTotalsResponse{Subtotal: s.Totals.Subtotal, Discount: s.Totals.Discount, Total: s.Totals.Total},
		Notes:       s.Notes,
		CreatedAt:   s.Metadata.CreatedAt,
		UpdatedAt:   s.Metadata.UpdatedAt,
	}
}

func toStatsResponse(st dsales.Stats) dto.SaleStatsResponse {
	return dto.SaleStatsResponse{
		TotalSales:        st.TotalSales,
		TotalOrders:       st.TotalOrders,
		AverageOrderValue: st.AverageOrderValue,
		TodaySales:        st.TodaySales,
	}
}
