package payment

import (
	"context"
	"regexp"
	"time"

	"equiptrack/internal/database"
	"equiptrack/internal/domain"

	"github.com/google/uuid"
)

// subscriptionAmount is the flat subscription price, kept as a string the
// way the audit trail stores it.
const subscriptionAmount = "100"

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// Service validates payment instrument details and, on success, activates
// the payer's subscription entitlement. The flag update and the audit row
// commit in one transaction under the shared store guard.
type Service struct {
	users UserReader
	store PaymentStore
	guard *database.Guard
}

func NewService(users UserReader, store PaymentStore, guard *database.Guard) *Service {
	return &Service{
		users: users,
		store: store,
		guard: guard,
	}
}

// Subscribe charges the flat subscription fee. Only students buy
// subscriptions; an already-entitled payer is rejected before any card
// validation so no duplicate audit row can appear.
func (s *Service) Subscribe(ctx context.Context, payerEmail string, payerRole domain.UserRole, req PaymentRequest) (*domain.PaymentRecord, error) {
	if payerRole != domain.RoleStudent {
		return nil, ErrForbidden
	}

	var out *domain.PaymentRecord
	err := s.guard.Do(func() error {
		user, err := s.users.GetByEmail(ctx, payerEmail)
		if err != nil {
			return err
		}
		if user.SubscriptionActive {
			return ErrAlreadyEntitled
		}

		if err := ValidateCardNumber(req.CardNumber); err != nil {
			return err
		}
		if err := ValidateExpiry(req.Expiry, time.Now()); err != nil {
			return err
		}
		if err := ValidateCVV(req.CVV); err != nil {
			return err
		}

		rec := &domain.PaymentRecord{
			Reference:  uuid.NewString(),
			PayerEmail: user.Email,
			Amount:     subscriptionAmount,
			PaidAt:     time.Now(),
		}
		if err := s.store.RecordEntitlement(ctx, rec); err != nil {
			return err
		}
		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateCardNumber accepts exactly 16 ASCII digits passing the Luhn
// checksum.
func ValidateCardNumber(card string) error {
	if len(card) != 16 {
		return ErrInvalidCard
	}
	for _, ch := range card {
		if ch < '0' || ch > '9' {
			return ErrInvalidCard
		}
	}
	if !luhnValid(card) {
		return ErrInvalidCard
	}
	return nil
}

// luhnValid sums digits at odd positions from the right unmodified and
// doubled digits at even positions with their digit-sum taken; the total
// must be divisible by 10.
func luhnValid(card string) bool {
	sum := 0
	double := false
	for i := len(card) - 1; i >= 0; i-- {
		d := int(card[i] - '0')
		if double {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidateExpiry requires MM/YY with MM in 01-12 and a month not strictly
// before the current one. Years compare as two digits, matching how the
// card carries them.
func ValidateExpiry(expiry string, now time.Time) error {
	if !expiryPattern.MatchString(expiry) {
		return ErrInvalidFormat
	}

	month := int(expiry[0]-'0')*10 + int(expiry[1]-'0')
	year := int(expiry[3]-'0')*10 + int(expiry[4]-'0')

	curYear := now.Year() % 100
	curMonth := int(now.Month())
	if year < curYear || (year == curYear && month < curMonth) {
		return ErrExpiredCard
	}
	return nil
}

// ValidateCVV accepts exactly 3 ASCII digits.
func ValidateCVV(cvv string) error {
	if len(cvv) != 3 {
		return ErrInvalidCvv
	}
	for _, ch := range cvv {
		if ch < '0' || ch > '9' {
			return ErrInvalidCvv
		}
	}
	return nil
}
