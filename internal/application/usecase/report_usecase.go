package usecase

import (
	"github.com/tu-usuario/dashboard-pro/internal/application/analytics"
	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/domain"
	"github.com/tu-usuario/dashboard-pro/internal/domain/entity"
	"github.com/tu-usuario/dashboard-pro/internal/domain/repository"
)

// ReportPDFGenerator puerto de render de reportes a PDF.
type ReportPDFGenerator interface {
	Render(report dto.ReportResponse) ([]byte, error)
}

// ReportUseCase catálogo de reportes del panel. El catálogo es fijo pero
// Data se llena en vivo desde el estado actual de las colecciones.
type ReportUseCase struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	messages  repository.MessageRepository
	dashboard *analytics.DashboardUseCase
	pdf       ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	users repository.UserRepository,
	products repository.ProductRepository,
	messages repository.MessageRepository,
	dashboard *analytics.DashboardUseCase,
	pdf ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{users: users, products: products, messages: messages, dashboard: dashboard, pdf: pdf}
}

// List devuelve el catálogo con los datos calculados al momento.
func (uc *ReportUseCase) List() ([]dto.ReportResponse, error) {
	stats, err := uc.dashboard.Stats()
	if err != nil {
		return nil, err
	}
	statsData := map[string]any{
		"totalRevenue":  stats.TotalRevenue,
		"totalOrders":   stats.TotalOrders,
		"totalUsers":    stats.TotalUsers,
		"activeUsers":   stats.ActiveUsers,
		"pendingOrders": stats.PendingOrders,
		"avgOrderValue": stats.AvgOrderValue,
	}

	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	active := 0
	for i := range users {
		if users[i].Status == entity.StatusActive {
			active++
		}
	}

	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	totalSold := 0
	for i := range products {
		totalSold += products[i].Sold
	}

	messages, err := uc.messages.List()
	if err != nil {
		return nil, err
	}

	return []dto.ReportResponse{
		{ID: 1, Name: "Monthly Sales Report", Date: "2024-01-15", Type: "Sales", Size: "2.4 MB", Status: "Ready", Data: statsData},
		{ID: 2, Name: "User Activity Report", Date: "2024-01-14", Type: "Analytics", Size: "1.8 MB", Status: "Ready", Data: map[string]any{"totalUsers": len(users), "activeUsers": active}},
		{ID: 3, Name: "Product Performance", Date: "2024-01-13", Type: "Products", Size: "3.2 MB", Status: "Ready", Data: map[string]any{"totalProducts": len(products), "totalSold": totalSold}},
		{ID: 4, Name: "Revenue Analysis Q1", Date: "2024-01-10", Type: "Finance", Size: "4.1 MB", Status: "Ready", Data: statsData},
		{ID: 5, Name: "Customer Feedback", Date: "2024-01-08", Type: "Support", Size: "1.5 MB", Status: "Processing", Data: map[string]any{"messages": len(messages)}},
	}, nil
}

// RenderPDF genera el PDF de un reporte del catálogo.
func (uc *ReportUseCase) RenderPDF(id int64) ([]byte, error) {
	reports, err := uc.List()
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		if r.ID == id {
			return uc.pdf.Render(r)
		}
	}
	return nil, domain.ErrNotFound
}
