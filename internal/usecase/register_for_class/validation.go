package register_for_class

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberID must be positive", ErrInvalidInput)
	}

	if req.ClassID <= 0 {
		return fmt.Errorf("%w: classID must be positive", ErrInvalidInput)
	}

	return nil
}

// lockKeys ключи блокировки: член клуба и места занятия
func lockKeys(req *Request) []string {
	return []string{
		domain.MemberRef(req.MemberID).String(),
		"class:" + strconv.FormatInt(req.ClassID, 10),
	}
}
