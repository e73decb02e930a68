package apply_coupon

// Request модель запроса на проверку купона
type Request struct {
	Code     string  // Код купона (регистр не важен)
	Subtotal float64 // Текущая промежуточная сумма заказа
	VenueID  int64   // Площадка, к которой применяется купон
}

// Response модель ответа с рассчитанной скидкой
// Результат рекомендательный: авторитетная проверка лимита использований
// выполняется повторно внутри транзакции бронирования
type Response struct {
	CouponID      int64   // ID купона для передачи в транзакцию бронирования
	Code          string  // Нормализованный (верхний регистр) код
	DiscountType  string  // percentage | fixed
	DiscountValue float64 // Номинал скидки
	Discount      float64 // Рассчитанная сумма скидки, 0 <= Discount <= Subtotal
}
