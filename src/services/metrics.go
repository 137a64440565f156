package services

import (
	"math"
	"time"
)

// Pure derived-metric functions. Everything here is arithmetic over values
// the caller already loaded; no I/O.

// HoldingMonths is the number of calendar months between the buy date and
// today, floored to 1 so it can be used as a divisor.
func HoldingMonths(buyDate, today time.Time) int {
	months := (today.Year()-buyDate.Year())*12 + int(today.Month()) - int(buyDate.Month())
	if months < 1 {
		months = 1
	}
	return months
}

// ExpectedPriceByKeyRate is the price at which the position beats holding the
// money at the central bank rate for the given number of months.
func ExpectedPriceByKeyRate(buyPrice, centralBankRate float64, holdingMonths int) float64 {
	return buyPrice + buyPrice*centralBankRate/float64(holdingMonths)
}

// CanSell reports whether the current price strictly beats both the key-rate
// expectation and the user's target.
func CanSell(currentPrice, expectedPriceByKeyRate, targetPrice float64) bool {
	return currentPrice > expectedPriceByKeyRate && currentPrice > targetPrice
}

// IsDanger reports whether the key-rate expectation has strictly outgrown the
// user's target, i.e. the target is no longer worth waiting for.
func IsDanger(expectedPriceByKeyRate, targetPrice float64) bool {
	return expectedPriceByKeyRate > targetPrice
}

// PriceDiff is the unrealized profit or loss of a position.
func PriceDiff(currentPrice, buyPrice float64, count int) float64 {
	return (currentPrice - buyPrice) * float64(count)
}

// CandidateCount sizes a dividend candidate. The first bound caps the
// position at maxPart percent of capital; the second reserves a fixed annual
// tax buffer (21% of capital spread over 12 months) against the dividend.
func CandidateCount(availableCapital, maxPart int, price, dividend float64) int {
	part1 := math.Floor(float64(availableCapital) * float64(maxPart) / 100 / price)
	part2 := math.Floor(float64(availableCapital) * 0.21 / 12 / dividend)
	return int(math.Min(part1, part2))
}

// CandidateCosts is the money spent on the candidate, entry and exit
// commission included.
func CandidateCosts(price float64, count int, brokerCommission float64) float64 {
	return price * float64(count) * (1 + brokerCommission/100*2)
}

// CandidateShare is the candidate's share of available capital, in percent.
func CandidateShare(costs float64, availableCapital int) float64 {
	return costs / float64(availableCapital) * 100
}

// CandidateNetDividend is the dividend income after tax.
func CandidateNetDividend(count int, dividend, dividendTax float64) float64 {
	return float64(count) * dividend * (1 - dividendTax/100)
}
