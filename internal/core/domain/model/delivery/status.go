package delivery

import "bloodlink/internal/pkg/errs"

// Status represents the lifecycle tag of a delivery.
//
// The core owns only a small part of the lifecycle:
//
//	Pending ──┬──> AcceptedCenter ──> (operational statuses) ──> Delivered / Failed
//	          │
//	          └──> cancelled (record deleted, inventory released)
//
// Statuses beyond the well-known tags are defined by the surrounding
// operational workflow (drone dispatch, in-flight tracking) and pass through
// this core as opaque values. Status therefore accepts any non-empty string;
// the only closed rule is that cancellation requires Pending.
type Status string

// Well-known lifecycle tags.
const (
	// Pending is the initial status: order placed, awaiting center acceptance.
	Pending Status = "pending"

	// AcceptedCenter means the donation center has accepted the fulfillment.
	AcceptedCenter Status = "accepted_center"

	// Delivered is the terminal success status.
	Delivered Status = "delivered"

	// Failed is the terminal failure status.
	Failed Status = "failed"
)

// NewStatus parses a status from its string representation. Any non-empty
// string is accepted; unknown values are treated as operational pass-through
// statuses.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status carries a value. Empty statuses are the
// only invalid ones; everything else is either a well-known tag or an
// operational pass-through value.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// String returns the status value, e.g. "accepted_center".
func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether the status is one of the well-known lifecycle tags.
func (s Status) IsKnown() bool {
	switch s {
	case Pending, AcceptedCenter, Delivered, Failed:
		return true
	default:
		return false
	}
}

// IsPending reports whether the delivery still awaits center acceptance.
// Only pending deliveries may be cancelled.
func (s Status) IsPending() bool {
	return s == Pending
}

// IsCenterFacing reports whether a transition into this status concerns the
// donation center's staff in addition to the hospital's. Center acceptance
// and failure are the center-facing events.
func (s Status) IsCenterFacing() bool {
	return s == AcceptedCenter || s == Failed
}
