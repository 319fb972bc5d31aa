package booking

import (
	"math"
	"time"

	"github.com/chrisdemonxxx/godrive/models"
)

// serviceFeeRate is the platform's cut of the base amount.
const serviceFeeRate = 0.20

// ComputePrice derives the full money breakdown for a rental window. All
// amounts are in paise. Billing is day-granular: the ceil'd hour count is
// rounded up to whole days, each charged at the daily rate.
//
//	hours       = ceil(return - pickup)
//	days        = ceil(hours / 24)
//	base        = days * daily_rate
//	service_fee = round(base * 0.20)
//	total       = base + service_fee + deposit
//	host_payout = base - service_fee
func ComputePrice(dailyRate, securityDeposit int64, pickup, ret time.Time) models.PriceBreakdown {
	hours := int(math.Ceil(ret.Sub(pickup).Hours()))
	days := (hours + 23) / 24

	base := int64(days) * dailyRate
	fee := int64(math.Round(float64(base) * serviceFeeRate))

	return models.PriceBreakdown{
		Hours:           hours,
		Days:            days,
		BaseAmount:      base,
		ServiceFee:      fee,
		SecurityDeposit: securityDeposit,
		TotalAmount:     base + fee + securityDeposit,
		HostPayout:      base - fee,
	}
}
