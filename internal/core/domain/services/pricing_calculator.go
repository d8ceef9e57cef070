package services

import (
	"fmt"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricingCalculator is a domain service that computes the shipping cost of a
// parcel or shipment.
//
// Pricing rules:
//   - Every item pays a flat base fee
//   - Freight is weight in pounds times a per-pound rate; the rate depends on
//     whether the destination is domestic or international
//   - Items with a declared value above the insurance threshold pay an
//     insurance surcharge proportional to the declared value
//   - The total is rounded half-up to cents; an item at the threshold exactly
//     pays no insurance
//
// The same calculator prices both inbound parcels and outbound shipments, so
// re-weighing a pre-alerted parcel and pricing a new shipment can never
// disagree on the tariff.
//
// Example usage:
//
//	calc := NewPricingCalculator()
//	breakdown, err := calc.ComputeCost(decimal.NewFromInt(10), decimal.NewFromInt(150), true)
//	if err != nil {
//	    // weight or declared value was negative
//	    return
//	}
//	// breakdown.Total covers base + freight + insurance
type PricingCalculator struct {
	base               decimal.Decimal
	domesticPerLb      decimal.Decimal
	internationalPerLb decimal.Decimal
	insuranceThreshold decimal.Decimal
	insuranceRate      decimal.Decimal
}

// CostBreakdown itemizes a computed shipping cost. All components are rounded
// to cents and Total is their exact sum.
type CostBreakdown struct {
	Base      kernel.Money
	Freight   kernel.Money
	Insurance kernel.Money
	Total     kernel.Money
}

// NewPricingCalculator creates a calculator with the standard tariff:
// 5.00 base, 2.00/lb domestic, 5.00/lb international, 2% insurance on
// declared values above 100.00.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{
		base:               decimal.NewFromInt(5),
		domesticPerLb:      decimal.NewFromInt(2),
		internationalPerLb: decimal.NewFromInt(5),
		insuranceThreshold: decimal.NewFromInt(100),
		insuranceRate:      decimal.NewFromFloat(0.02),
	}
}

// ComputeCost prices an item. Weight may be zero for pre-alerted parcels that
// have not been weighed yet; negative inputs are invalid.
func (c PricingCalculator) ComputeCost(
	weightLbs decimal.Decimal,
	declaredValue decimal.Decimal,
	domestic bool,
) (CostBreakdown, error) {
	if weightLbs.IsNegative() {
		return CostBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"weightLbs",
			fmt.Errorf("%s is negative", weightLbs.String()),
		)
	}
	if declaredValue.IsNegative() {
		return CostBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"declaredValue",
			fmt.Errorf("%s is negative", declaredValue.String()),
		)
	}

	perLb := c.domesticPerLb
	if !domestic {
		perLb = c.internationalPerLb
	}

	base := c.base
	freight := weightLbs.Mul(perLb)

	insurance := decimal.Zero
	if declaredValue.GreaterThan(c.insuranceThreshold) {
		insurance = declaredValue.Mul(c.insuranceRate)
	}

	baseMoney, err := moneyRounded(base)
	if err != nil {
		return CostBreakdown{}, err
	}
	freightMoney, err := moneyRounded(freight)
	if err != nil {
		return CostBreakdown{}, err
	}
	insuranceMoney, err := moneyRounded(insurance)
	if err != nil {
		return CostBreakdown{}, err
	}

	total := baseMoney.Add(freightMoney).Add(insuranceMoney)

	return CostBreakdown{
		Base:      baseMoney,
		Freight:   freightMoney,
		Insurance: insuranceMoney,
		Total:     total,
	}, nil
}

func moneyRounded(d decimal.Decimal) (kernel.Money, error) {
	m, err := kernel.NewMoney(d)
	if err != nil {
		return kernel.Money{}, err
	}
	return m.Round(), nil
}
