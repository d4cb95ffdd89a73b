package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendor-portal/internal/application/dto"
	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/application/usecase"
)

// BrandHandler asistente de registro de marca y datos de la marca propia.
type BrandHandler struct {
	auth   *portal.AuthContext
	brands *usecase.BrandUseCase
	wizard *portal.RegistrationWizard
}

// NewBrandHandler construye el handler. El asistente es uno por proceso: el BFF
// sirve a un único vendor.
func NewBrandHandler(auth *portal.AuthContext, brands *usecase.BrandUseCase, wizard *portal.RegistrationWizard) *BrandHandler {
	return &BrandHandler{auth: auth, brands: brands, wizard: wizard}
}

// Wizard godoc
// @Summary      Estado del asistente de registro de marca
// @Tags         brand
// @Produce      json
// @Success      200  {object}  portal.WizardView
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /register-brand [get]
func (h *BrandHandler) Wizard(c *fiber.Ctx) error {
	return c.JSON(h.wizard.View())
}

// SetFields godoc
// @Summary      Completar campos del asistente
// @Description  Claves planas: name, description, legalName, taxId, registrationNumber, businessType, accountName, accountNumber, bankName, iban.
// @Tags         brand
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]string  true  "campo: valor"
// @Success      200   {object}  portal.WizardView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /register-brand [patch]
func (h *BrandHandler) SetFields(c *fiber.Ctx) error {
	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return badBody(c)
	}
	if err := h.wizard.Apply(fields); err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(h.wizard.View())
}

// Next godoc
// @Summary      Avanzar un paso del asistente
// @Description  Sin validación: avanza aunque falten campos.
// @Tags         brand
// @Produce      json
// @Success      200  {object}  portal.WizardView
// @Router       /register-brand/next [post]
func (h *BrandHandler) Next(c *fiber.Ctx) error {
	h.wizard.Next()
	return c.JSON(h.wizard.View())
}

// Back godoc
// @Summary      Retroceder un paso del asistente
// @Tags         brand
// @Produce      json
// @Success      200  {object}  portal.WizardView
// @Router       /register-brand/back [post]
func (h *BrandHandler) Back(c *fiber.Ctx) error {
	h.wizard.Back()
	return c.JSON(h.wizard.View())
}

// Submit godoc
// @Summary      Enviar el registro de marca
// @Description  Acepta multipart con los campos del formulario y una parte opcional "logo",
// @Description  o un cuerpo vacío si los campos ya se enviaron con PATCH.
// @Tags         brand
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  false  "nombre de la marca"
// @Param        description  formData  string  false  "descripción"
// @Param        logo         formData  file    false  "logo (imagen)"
// @Success      201  {object}  BrandSubmitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /register-brand/submit [post]
func (h *BrandHandler) Submit(c *fiber.Ctx) error {
	if form, err := c.MultipartForm(); err == nil {
		if err := h.applyMultipart(form); err != nil {
			return respondError(c, err, "")
		}
	}
	route, brand, err := h.wizard.Submit(c.UserContext(), h.brands, h.auth)
	if err != nil {
		return respondError(c, err, "Registration failed")
	}
	h.wizard.Reset()
	return c.Status(fiber.StatusCreated).JSON(BrandSubmitResponse{
		Brand:    toBrandView(brand),
		Redirect: "/" + route,
	})
}

func (h *BrandHandler) applyMultipart(form *multipart.Form) error {
	fields := make(map[string]string, len(form.Value))
	for k, v := range form.Value {
		if len(v) > 0 {
			fields[k] = v[0]
		}
	}
	if len(fields) > 0 {
		if err := h.wizard.Apply(fields); err != nil {
			return err
		}
	}
	files, err := readAttachments(form.File["logo"])
	if err != nil {
		return err
	}
	if logos, _ := portal.LogoPicker.Pick(files); len(logos) > 0 {
		h.wizard.SetLogo(&logos[0])
	}
	return nil
}

// MyBrand godoc
// @Summary      Marca propia
// @Description  La marca cargada en el contexto de sesión.
// @Tags         brand
// @Produce      json
// @Success      200  {object}  BrandView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /brand [get]
func (h *BrandHandler) MyBrand(c *fiber.Ctx) error {
	b := GetState(c).Brand
	if b == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BRAND", Message: portal.MsgNoBrand})
	}
	return c.JSON(toBrandView(b))
}

// Update godoc
// @Summary      Actualizar la marca propia
// @Description  JSON parcial. Refresca la marca del contexto.
// @Tags         brand
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateBrandRequest  true  "campos a cambiar"
// @Success      200   {object}  BrandView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /brand [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	b := GetState(c).Brand
	if b == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BRAND", Message: portal.MsgNoBrand})
	}
	var in dto.UpdateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	updated, err := h.brands.UpdateBrand(c.UserContext(), b.ID, in)
	if err != nil {
		return respondError(c, err, "Update failed")
	}
	h.auth.RefreshBrand(c.UserContext())
	return c.JSON(toBrandView(updated))
}
