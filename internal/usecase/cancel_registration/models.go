package cancel_registration

// Request модель запроса на отмену записи на занятие
type Request struct {
	RegistrationID int64 // ID записи
	MemberID       int64 // ID члена клуба, выполняющего отмену
}
