package payments

import "encoding/json"

const (
	EventChargeSuccess = "charge.success"
	EventChargeFailed  = "charge.failed"
)

// Event is the decoded Paystack webhook envelope. Only the charge events
// drive state; everything else is accepted and ignored so the provider
// stops retrying.
type Event struct {
	Type string    `json:"event"`
	Data EventData `json:"data"`
}

type EventData struct {
	ID        json.Number `json:"id"`
	Reference string      `json:"reference"`
	Amount    int         `json:"amount"`
	Status    string      `json:"status"`
}

// Handled reports whether this event type advances transaction state.
func (e Event) Handled() bool {
	return e.Type == EventChargeSuccess || e.Type == EventChargeFailed
}

// Key identifies an event for webhook audit dedupe. Paystack does not
// carry a stable event id in the envelope, so type+reference is used;
// that pair is exactly the unit the reconciler must process once.
func (e Event) Key() string {
	return e.Type + ":" + e.Data.Reference
}

func ParseEvent(rawBody []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(rawBody, &ev); err != nil {
		return Event{}, err
	}
	return ev, nil
}
