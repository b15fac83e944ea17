package domain

type SubscriptionFrequency string

const (
	FrequencyDaily   SubscriptionFrequency = "daily"
	FrequencyWeekly  SubscriptionFrequency = "weekly"
	FrequencyMonthly SubscriptionFrequency = "monthly"
)

func ValidSubscriptionFrequency(f SubscriptionFrequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type Subscription struct {
	UserID    uint64
	Frequency SubscriptionFrequency
}
