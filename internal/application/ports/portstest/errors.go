package portstest

import (
	"fmt"

	"github.com/jhoicas/vendor-portal/internal/domain"
)

// ErrNotFound lo devuelven los fakes cuando el recurso no existe.
var ErrNotFound = fmt.Errorf("portstest: %w", domain.ErrNotFound)
