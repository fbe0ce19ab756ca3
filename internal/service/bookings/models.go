package bookings

// Requester описывает пользователя, выполняющего запрос.
// Заполняется хендлером из заголовков аутентификации
type Requester struct {
	UserID  int64
	IsAdmin bool
}

// CanAccess проверяет, может ли пользователь работать с ресурсом владельца ownerID
func (r Requester) CanAccess(ownerID int64) bool {
	return r.IsAdmin || r.UserID == ownerID
}
