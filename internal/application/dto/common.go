package dto

// ErrorResponse cuerpo de error HTTP. Success queda siempre en false;
// la SPA lo consulta en las respuestas fallidas de login.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de éxito con solo un mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
