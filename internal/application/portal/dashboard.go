package portal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/pkg/money"
)

// Severidades de los avisos del dashboard.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Mensajes del dashboard según el estado de la marca.
const (
	MsgNoBrand       = "Please complete brand registration to access the dashboard."
	MsgBrandPending  = "Your brand application is pending approval. You'll be notified once it's reviewed."
	msgBrandRejected = "Your brand application was rejected. Reason: %s"
	reasonUnknown    = "Not specified"
)

// Notice aviso que reemplaza al contenido del dashboard.
type Notice struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// StatCard tarjeta de KPI ya formateada.
type StatCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// BrandCard bloque "Store Information".
type BrandCard struct {
	Name           string    `json:"name"`
	Status         string    `json:"status"`
	CommissionRate string    `json:"commissionRate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Dashboard vista del dashboard. Si Notice no es nil, el resto va vacío.
type Dashboard struct {
	Notice       *Notice               `json:"notice,omitempty"`
	Brand        *BrandCard            `json:"brand,omitempty"`
	Stats        []StatCard            `json:"stats,omitempty"`
	MonthlySales []dto.MonthlySalesDTO `json:"monthlySales,omitempty"`
}

// BuildDashboard arma la vista según el estado de la marca. stats puede ser nil
// (fallo al obtenerlas): las tarjetas muestran cero.
func BuildDashboard(brand *entity.Brand, stats *dto.DashboardStatsDTO) Dashboard {
	switch {
	case brand == nil:
		return Dashboard{Notice: &Notice{Severity: SeverityInfo, Message: MsgNoBrand}}
	case brand.IsPending():
		return Dashboard{Notice: &Notice{Severity: SeverityWarning, Message: MsgBrandPending}}
	case brand.IsRejected():
		reason := brand.RejectedReason
		if reason == "" {
			reason = reasonUnknown
		}
		return Dashboard{Notice: &Notice{Severity: SeverityError, Message: fmt.Sprintf(msgBrandRejected, reason)}}
	}

	var s dto.DashboardStatsDTO
	if stats != nil {
		s = *stats
	}
	d := Dashboard{
		Brand: &BrandCard{
			Name:           brand.Name,
			Status:         brand.Status,
			CommissionRate: money.Percent(brand.CommissionRate),
			CreatedAt:      brand.CreatedAt,
		},
		Stats: []StatCard{
			{Title: "Total Sales", Value: strconv.Itoa(s.TotalSales)},
			{Title: "Revenue", Value: money.Format(s.TotalRevenue)},
			{Title: "Active Products", Value: strconv.Itoa(s.ActiveProducts)},
			{Title: "Avg Rating", Value: strconv.FormatFloat(s.AverageRating, 'f', -1, 64)},
			{Title: "Pending Orders", Value: strconv.Itoa(s.PendingOrders)},
		},
		MonthlySales: s.MonthlySales,
	}
	if d.MonthlySales == nil {
		d.MonthlySales = []dto.MonthlySalesDTO{}
	}
	return d
}
