package paymentgateway

import "errors"

var (
	// ErrProvider возвращается при ошибке платёжного провайдера
	// Безопасно повторять: на нашей стороне состояние не меняется
	ErrProvider = errors.New("paymentgateway: provider error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")
)
