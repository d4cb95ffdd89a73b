package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flujo de aprobación de una marca.
const (
	BrandStatusPending  = "pending"
	BrandStatusApproved = "approved"
	BrandStatusRejected = "rejected"
)

// Brand identidad de tienda de un vendor. Exactamente una por usuario vendor.
type Brand struct {
	ID             string
	Name           string
	Description    string
	LogoURL        string
	Status         string          // pending, approved, rejected
	RejectedReason string          // solo si Status == rejected
	CommissionRate decimal.Decimal // porcentaje
	Owner          string          // ID del usuario dueño
	CreatedAt      time.Time
	BusinessInfo   BusinessInfo
	BankDetails    BankDetails
}

// BusinessInfo datos legales del negocio (paso "Business Details").
type BusinessInfo struct {
	LegalName          string
	TaxID              string
	RegistrationNumber string
	BusinessType       string
}

// BankDetails datos bancarios para liquidaciones (paso "Bank Information").
type BankDetails struct {
	AccountName   string
	AccountNumber string
	BankName      string
	IBAN          string // opcional
}

// IsPending, IsApproved, IsRejected atajos sobre Status.
func (b *Brand) IsPending() bool  { return b != nil && b.Status == BrandStatusPending }
func (b *Brand) IsApproved() bool { return b != nil && b.Status == BrandStatusApproved }
func (b *Brand) IsRejected() bool { return b != nil && b.Status == BrandStatusRejected }
