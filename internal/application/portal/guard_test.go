package portal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/vendor-portal/internal/application/portal"
	"github.com/jhoicas/vendor-portal/internal/domain/entity"
)

func TestEvaluate(t *testing.T) {
	vendor := &entity.User{ID: "u1", Role: entity.RoleVendor}
	cases := []struct {
		name  string
		state portal.State
		want  portal.Decision
	}{
		{"cargando nunca redirige", portal.State{Loading: true}, portal.DecisionWait},
		{"cargando con usuario espera", portal.State{Loading: true, User: vendor, IsAuthenticated: true}, portal.DecisionWait},
		{"autenticado", portal.State{User: vendor, IsAuthenticated: true}, portal.DecisionAllow},
		{"sin usuario", portal.State{}, portal.DecisionRedirect},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, portal.Evaluate(tc.state))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "wait", portal.DecisionWait.String())
	assert.Equal(t, "allow", portal.DecisionAllow.String())
	assert.Equal(t, "redirect", portal.DecisionRedirect.String())
}
