package api

// DeviceAuthRequest представляет запрос на выпуск токена для устройства
type DeviceAuthRequest struct {
	DeviceID string `json:"device_id"` // уникальный идентификатор устройства (UUID)
	UserID   string `json:"user_id"`   // идентификатор владельца устройства
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
