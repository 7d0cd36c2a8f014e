package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/dashboard-pro/internal/application/dto"
	"github.com/tu-usuario/dashboard-pro/internal/infrastructure/pdf"
)

func TestRender_DevuelvePDF(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()

	out, err := g.Render(dto.ReportResponse{
		ID:     1,
		Name:   "Monthly Sales Report",
		Date:   "2024-01-15",
		Type:   "Sales",
		Size:   "2.4 MB",
		Status: "Ready",
		Data:   map[string]any{"totalOrders": 8, "totalRevenue": "3329.92"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "los bytes deben empezar con la firma PDF")
}

func TestRender_SinMetricas(t *testing.T) {
	g := pdf.NewMarotoReportGenerator()

	out, err := g.Render(dto.ReportResponse{ID: 5, Name: "Customer Feedback", Status: "Processing"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
