package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
	"github.com/jhoicas/vendor-portal/pkg/money"
)

// brandView marca tal como la muestra el CLI.
type brandView struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name" yaml:"name"`
	Description    string              `json:"description" yaml:"description"`
	Status         string              `json:"status" yaml:"status"`
	RejectedReason string              `json:"rejectedReason,omitempty" yaml:"rejectedReason,omitempty"`
	CommissionRate string              `json:"commissionRate" yaml:"commissionRate"`
	LogoURL        string              `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" yaml:"createdAt"`
	BusinessInfo   dto.BusinessInfoDTO `json:"businessInfo" yaml:"businessInfo"`
	BankDetails    dto.BankDetailsDTO  `json:"bankDetails" yaml:"bankDetails"`
}

func toBrandView(b *entity.Brand) brandView {
	return brandView{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Status:         b.Status,
		RejectedReason: b.RejectedReason,
		CommissionRate: money.Percent(b.CommissionRate),
		LogoURL:        b.LogoURL,
		CreatedAt:      b.CreatedAt,
		BusinessInfo: dto.BusinessInfoDTO{
			LegalName:          b.BusinessInfo.LegalName,
			TaxID:              b.BusinessInfo.TaxID,
			RegistrationNumber: b.BusinessInfo.RegistrationNumber,
			BusinessType:       b.BusinessInfo.BusinessType,
		},
		BankDetails: dto.BankDetailsDTO{
			AccountName:   b.BankDetails.AccountName,
			AccountNumber: b.BankDetails.AccountNumber,
			BankName:      b.BankDetails.BankName,
			IBAN:          b.BankDetails.IBAN,
		},
	}
}

func (v brandView) table() table {
	t := keyValues(
		"ID", v.ID,
		"Name", v.Name,
		"Status", v.Status,
		"Commission", v.CommissionRate,
		"Created", v.CreatedAt.Format("2006-01-02"),
		"Legal name", v.BusinessInfo.LegalName,
		"Tax ID", v.BusinessInfo.TaxID,
		"Bank", v.BankDetails.BankName,
	)
	if v.RejectedReason != "" {
		t.rows = append(t.rows, []string{"Rejected:", v.RejectedReason})
	}
	return t
}

func runBrand(ctx context.Context, a *App, args []string) error {
	if len(args) == 0 {
		return usagef("uso: vendorctl brand show|register|update")
	}
	switch args[0] {
	case "show":
		return brandShow(a)
	case "register":
		return brandRegister(ctx, a, args[1:])
	case "update":
		return brandUpdate(ctx, a, args[1:])
	}
	return usagef("subcomando de brand desconocido: %s", args[0])
}

func brandShow(a *App) error {
	b := a.deps.Auth.Snapshot().Brand
	if b == nil {
		fmt.Fprintln(a.errOut, portal.MsgNoBrand)
		fmt.Fprintln(a.errOut, "run `vendorctl brand register`")
		return nil
	}
	v := toBrandView(b)
	return a.render(v, v.table)
}

// wizardFlags flags de brand register; las claves son los campos del asistente.
var wizardFlags = map[string]string{
	"name":               "name",
	"description":        "description",
	"legalName":          "legal-name",
	"taxId":              "tax-id",
	"registrationNumber": "registration-number",
	"businessType":       "business-type",
	"accountName":        "account-name",
	"accountNumber":      "account-number",
	"bankName":           "bank-name",
	"iban":               "iban",
}

// brandRegister recorre el asistente paso a paso. Los campos que no llegan por
// flag se piden por la entrada; iban se puede dejar vacío.
func brandRegister(ctx context.Context, a *App, args []string) error {
	fs := a.flags("brand register")
	values := make(map[string]*string, len(wizardFlags))
	for name, flag := range wizardFlags {
		values[name] = fs.String(flag, "", name)
	}
	logoPath := fs.String("logo", "", "ruta del logo (opcional)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if a.deps.Auth.Snapshot().Brand != nil {
		return usagef("ya tienes una marca registrada: run `vendorctl brand show`")
	}

	w := portal.NewRegistrationWizard()
	for step, fields := range portal.WizardFields {
		fmt.Fprintf(a.errOut, "[%d/%d] %s\n", step+1, len(portal.WizardSteps), portal.WizardSteps[step])
		for _, f := range fields {
			v := *values[f]
			if v == "" {
				var err error
				if v, err = a.prompt(f); err != nil {
					return err
				}
			}
			if err := w.Set(f, v); err != nil {
				return err
			}
		}
		if step == 0 && *logoPath != "" {
			logo, err := pickLogo(a, *logoPath)
			if err != nil {
				return err
			}
			w.SetLogo(logo)
		}
		w.Next()
	}

	_, brand, err := w.Submit(ctx, a.deps.Brands, a.deps.Auth)
	if err != nil {
		return err
	}
	a.deps.Log.Info().Str("brand_id", brand.ID).Msg("marca registrada")
	fmt.Fprintln(a.errOut, portal.MsgBrandPending)
	v := toBrandView(brand)
	return a.render(v, v.table)
}

func pickLogo(a *App, path string) (*dto.Attachment, error) {
	file, err := portal.LoadFile(path)
	if err != nil {
		return nil, err
	}
	accepted, rejected := portal.LogoPicker.Pick([]dto.Attachment{file})
	a.reportRejected(rejected)
	if len(accepted) == 0 {
		return nil, usagef("el logo debe ser una imagen")
	}
	return &accepted[0], nil
}

func (a *App) reportRejected(rejected []portal.Rejection) {
	for _, r := range rejected {
		fmt.Fprintf(a.errOut, "omitido %s: %s\n", r.Filename, r.Reason)
	}
}

// brandUpdate PUT parcial: solo viajan los flags que se indicaron.
func brandUpdate(ctx context.Context, a *App, args []string) error {
	fs := a.flags("brand update")
	name := fs.String("name", "", "nuevo nombre")
	description := fs.String("description", "", "nueva descripción")
	if err := parse(fs, args); err != nil {
		return err
	}
	b := a.deps.Auth.Snapshot().Brand
	if b == nil {
		return usagef("%s", portal.MsgNoBrand)
	}
	var in dto.UpdateBrandRequest
	if fs.Changed("name") {
		in.Name = name
	}
	if fs.Changed("description") {
		in.Description = description
	}
	if in.Name == nil && in.Description == nil {
		return usagef("brand update: indica --name o --description")
	}
	updated, err := a.deps.Brands.UpdateBrand(ctx, b.ID, in)
	if err != nil {
		return err
	}
	a.deps.Auth.RefreshBrand(ctx)
	v := toBrandView(updated)
	return a.render(v, v.table)
}
