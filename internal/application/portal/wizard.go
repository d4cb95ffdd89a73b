package portal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/ports"
	"github.com/jhoicas/vendor-portal/internal/domain"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

// WizardSteps etiquetas de los pasos del registro de marca.
var WizardSteps = []string{"Brand Info", "Business Details", "Bank Information"}

// WizardFields campos de texto de cada paso, en el orden en que se muestran.
// El logo del primer paso se adjunta aparte con SetLogo.
var WizardFields = [][]string{
	{"name", "description"},
	{"legalName", "taxId", "registrationNumber", "businessType"},
	{"accountName", "accountNumber", "bankName", "iban"},
}

// BrandRegistrar caso de uso que crea la marca.
type BrandRegistrar interface {
	RegisterBrand(ctx context.Context, in dto.RegisterBrandRequest, logo *dto.Attachment) (*entity.Brand, error)
}

// BrandRefresher recarga la marca del contexto tras registrarla.
type BrandRefresher interface {
	RefreshBrand(ctx context.Context)
}

// WizardForm campos acumulados en los tres pasos.
type WizardForm struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	BusinessInfo dto.BusinessInfoDTO `json:"businessInfo"`
	BankDetails  dto.BankDetailsDTO  `json:"bankDetails"`
}

// WizardView estado del asistente para mostrar.
type WizardView struct {
	Steps   []string   `json:"steps"`
	Step    int        `json:"step"`
	Label   string     `json:"label"`
	CanBack bool       `json:"canBack"`
	CanNext bool       `json:"canNext"`
	IsLast  bool       `json:"isLast"`
	HasLogo bool       `json:"hasLogo"`
	Form    WizardForm `json:"form"`
}

// RegistrationWizard asistente de tres pasos. Next no valida: los campos
// obligatorios se comprueban todos juntos en Submit.
type RegistrationWizard struct {
	mu   sync.Mutex
	step int
	form WizardForm
	logo *dto.Attachment
}

// NewRegistrationWizard asistente en el primer paso con el formulario vacío.
func NewRegistrationWizard() *RegistrationWizard {
	return &RegistrationWizard{}
}

// Next avanza un paso; false si ya está en el último.
func (w *RegistrationWizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step >= len(WizardSteps)-1 {
		return false
	}
	w.step++
	return true
}

// Back retrocede un paso; false si ya está en el primero.
func (w *RegistrationWizard) Back() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step <= 0 {
		return false
	}
	w.step--
	return true
}

// Step índice del paso actual.
func (w *RegistrationWizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Set asigna un campo por su nombre de formulario.
func (w *RegistrationWizard) Set(field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.set(field, value)
}

// Apply asigna varios campos; si alguno es desconocido no aplica ninguno.
func (w *RegistrationWizard) Apply(fields map[string]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	backup := w.form
	for k, v := range fields {
		if err := w.set(k, v); err != nil {
			w.form = backup
			return err
		}
	}
	return nil
}

func (w *RegistrationWizard) set(field, value string) error {
	f := &w.form
	switch field {
	case "name":
		f.Name = value
	case "description":
		f.Description = value
	case "legalName":
		f.BusinessInfo.LegalName = value
	case "taxId":
		f.BusinessInfo.TaxID = value
	case "registrationNumber":
		f.BusinessInfo.RegistrationNumber = value
	case "businessType":
		f.BusinessInfo.BusinessType = value
	case "accountName":
		f.BankDetails.AccountName = value
	case "accountNumber":
		f.BankDetails.AccountNumber = value
	case "bankName":
		f.BankDetails.BankName = value
	case "iban":
		f.BankDetails.IBAN = value
	default:
		return fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, field)
	}
	return nil
}

// SetLogo adjunta el logo (nil lo quita).
func (w *RegistrationWizard) SetLogo(logo *dto.Attachment) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logo = logo
}

// View estado actual del asistente.
func (w *RegistrationWizard) View() WizardView {
	w.mu.Lock()
	defer w.mu.Unlock()
	last := len(WizardSteps) - 1
	return WizardView{
		Steps:   WizardSteps,
		Step:    w.step,
		Label:   WizardSteps[w.step],
		CanBack: w.step > 0,
		CanNext: w.step < last,
		IsLast:  w.step == last,
		HasLogo: w.logo != nil,
		Form:    w.form,
	}
}

// Get valor actual de un campo por su nombre de formulario.
func (w *RegistrationWizard) Get(field string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	f := w.form
	switch field {
	case "name":
		return f.Name
	case "description":
		return f.Description
	case "legalName":
		return f.BusinessInfo.LegalName
	case "taxId":
		return f.BusinessInfo.TaxID
	case "registrationNumber":
		return f.BusinessInfo.RegistrationNumber
	case "businessType":
		return f.BusinessInfo.BusinessType
	case "accountName":
		return f.BankDetails.AccountName
	case "accountNumber":
		return f.BankDetails.AccountNumber
	case "bankName":
		return f.BankDetails.BankName
	case "iban":
		return f.BankDetails.IBAN
	}
	return ""
}

// Missing nombres de los campos obligatorios vacíos. iban y el logo son opcionales.
func (w *RegistrationWizard) Missing() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return missingFields(w.form)
}

func missingFields(f WizardForm) []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"description", f.Description},
		{"legalName", f.BusinessInfo.LegalName},
		{"taxId", f.BusinessInfo.TaxID},
		{"registrationNumber", f.BusinessInfo.RegistrationNumber},
		{"businessType", f.BusinessInfo.BusinessType},
		{"accountName", f.BankDetails.AccountName},
		{"accountNumber", f.BankDetails.AccountNumber},
		{"bankName", f.BankDetails.BankName},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// Submit envía el formulario completo. Solo está disponible en el último paso.
// Tras crear la marca refresca el contexto y devuelve la ruta del dashboard.
func (w *RegistrationWizard) Submit(ctx context.Context, brands BrandRegistrar, refresher BrandRefresher) (string, *entity.Brand, error) {
	w.mu.Lock()
	if w.step != len(WizardSteps)-1 {
		w.mu.Unlock()
		return "", nil, fmt.Errorf("%w: el envío solo está disponible en el paso %q", domain.ErrInvalidInput, WizardSteps[len(WizardSteps)-1])
	}
	if missing := missingFields(w.form); len(missing) > 0 {
		w.mu.Unlock()
		return "", nil, fmt.Errorf("%w: %s", domain.ErrWizardIncomplete, strings.Join(missing, ", "))
	}
	form, logo := w.form, w.logo
	w.mu.Unlock()

	req := dto.RegisterBrandRequest{
		Name:         strings.TrimSpace(form.Name),
		Description:  form.Description,
		BusinessInfo: form.BusinessInfo,
		BankDetails:  form.BankDetails,
	}
	brand, err := brands.RegisterBrand(ctx, req, logo)
	if err != nil {
		return "", nil, err
	}
	if refresher != nil {
		refresher.RefreshBrand(ctx)
	}
	return ports.RouteDashboard, brand, nil
}

// Reset vuelve al primer paso con el formulario vacío.
func (w *RegistrationWizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step, w.form, w.logo = 0, WizardForm{}, nil
}
