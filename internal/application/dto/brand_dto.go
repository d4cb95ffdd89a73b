package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// BusinessInfoDTO datos legales del negocio.
type BusinessInfoDTO struct {
	LegalName          string `json:"legalName"`
	TaxID              string `json:"taxId"`
	RegistrationNumber string `json:"registrationNumber"`
	BusinessType       string `json:"businessType"`
}

// BankDetailsDTO datos bancarios.
type BankDetailsDTO struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	IBAN          string `json:"iban,omitempty"`
}

// ContactInfoDTO datos de contacto opcionales de la marca.
type ContactInfoDTO struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// RegisterBrandRequest payload del asistente de registro de marca.
// BusinessInfo, BankDetails y ContactInfo viajan como strings JSON dentro del multipart.
type RegisterBrandRequest struct {
	Name         string
	Description  string
	BusinessInfo BusinessInfoDTO
	BankDetails  BankDetailsDTO
	ContactInfo  *ContactInfoDTO
}

// UpdateBrandRequest PUT JSON parcial de una marca.
type UpdateBrandRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	BusinessInfo *BusinessInfoDTO `json:"businessInfo,omitempty"`
	BankDetails  *BankDetailsDTO  `json:"bankDetails,omitempty"`
	ContactInfo  *ContactInfoDTO  `json:"contactInfo,omitempty"`
}

// BrandResponse marca tal como la devuelve /brands.
type BrandResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	LogoURL        string          `json:"logoUrl"`
	Status         string          `json:"status"`
	RejectedReason string          `json:"rejectedReason,omitempty"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	Owner          Ref             `json:"owner"`
	CreatedAt      time.Time       `json:"createdAt"`
	BusinessInfo   BusinessInfoDTO `json:"businessInfo"`
	BankDetails    BankDetailsDTO  `json:"bankDetails"`
}

// UnmarshalJSON tolera "_id" y el logo enviado como {"url": ...} o string.
func (r *BrandResponse) UnmarshalJSON(b []byte) error {
	type alias BrandResponse
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	a.ID = idOf(b)
	if a.LogoURL == "" {
		logo := gjson.GetBytes(b, "logo")
		if logo.IsObject() {
			a.LogoURL = logo.Get("url").String()
		} else {
			a.LogoURL = logo.String()
		}
	}
	*r = BrandResponse(a)
	return nil
}
