package dto

import "encoding/json"

// RegisterRequest entrada para crear una cuenta vendor.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // el gateway siempre fuerza "vendor"
}

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario tal como lo devuelve /auth/*.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UnmarshalJSON completa ID desde "_id" cuando el backend no envía "id".
func (u *UserResponse) UnmarshalJSON(b []byte) error {
	type alias UserResponse
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	a.ID = idOf(b)
	*u = UserResponse(a)
	return nil
}

// AuthResponse salida de /auth/register y /auth/login: {user, token}.
// Mientras no pase la verificación de rol son credenciales tentativas.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthResult credenciales ya confirmadas y persistidas en la sesión.
type AuthResult struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
