package get_available_rooms

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CheckInDate.IsZero() {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidInput)
	}

	if req.CheckOutDate.IsZero() {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidInput)
	}

	if req.HotelID != nil && *req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	return nil
}
