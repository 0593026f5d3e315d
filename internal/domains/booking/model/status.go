package model

import "roam/shared/failure"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// statusTransitions is the single authority on legal status moves. Nothing
// leaves cancelled or completed.
var statusTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]

	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0 && s.Valid()
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// A failed payment may be retried back to pending; refunded is final.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed},
	PaymentStatusPaid:     {PaymentStatusRefunded},
	PaymentStatusFailed:   {PaymentStatusPending},
	PaymentStatusRefunded: {},
}

func (p PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[p]

	return ok
}

func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[p] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (p PaymentStatus) IsTerminal() bool {
	return len(paymentTransitions[p]) == 0 && p.Valid()
}

// ApplyStatus moves the booking to next or fails without mutating it.
func (b *Booking) ApplyStatus(next Status) error {
	if !next.Valid() {
		return failure.NewInvalidTransition("status", string(b.Status), string(next))
	}

	if !b.Status.CanTransitionTo(next) {
		return failure.NewInvalidTransition("status", string(b.Status), string(next))
	}

	b.Status = next

	return nil
}

// ApplyPaymentStatus moves the payment machine to next or fails without
// mutating it.
func (b *Booking) ApplyPaymentStatus(next PaymentStatus) error {
	if !next.Valid() {
		return failure.NewInvalidTransition("payment_status", string(b.PaymentStatus), string(next))
	}

	if !b.PaymentStatus.CanTransitionTo(next) {
		return failure.NewInvalidTransition("payment_status", string(b.PaymentStatus), string(next))
	}

	b.PaymentStatus = next

	return nil
}

// Cancel is the compound transition: the booking is cancelled and, when it
// was already paid, the payment moves to refunded in the same step.
func (b *Booking) Cancel() error {
	if err := b.ApplyStatus(StatusCancelled); err != nil {
		return err
	}

	if b.PaymentStatus == PaymentStatusPaid {
		return b.ApplyPaymentStatus(PaymentStatusRefunded)
	}

	return nil
}
