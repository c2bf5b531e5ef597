package banksim

type ValidationService struct {
	service Service
}

func NewValidationService(service Service) *ValidationService {
	return &ValidationService{service: service}
}

func (v *ValidationService) Credit(credit Credit) error {
	if credit.Amount < 0 {
		return ErrInvalidAmount
	}

	if credit.UniqueID == "" {
		return ErrInvalidEntity
	}

	return v.service.Credit(credit)
}
