package domain

// PaymentFrequency is the cadence at which a payment is made.
type PaymentFrequency string

const (
	FrequencyMonthly             PaymentFrequency = "monthly"
	FrequencyBiweekly            PaymentFrequency = "biweekly"
	FrequencyWeekly              PaymentFrequency = "weekly"
	FrequencyAcceleratedBiweekly PaymentFrequency = "acceleratedBiweekly"
)

// Valid reports whether f is one of the supported cadences.
func (f PaymentFrequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyBiweekly, FrequencyWeekly, FrequencyAcceleratedBiweekly:
		return true
	}
	return false
}
