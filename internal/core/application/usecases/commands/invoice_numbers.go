package commands

import "fmt"

// paymentTermDays is the standard payment term applied when an invoice is
// issued.
const paymentTermDays = 15

// shipmentInvoiceNumber renders the number series for shipment invoices,
// e.g. FAC-2026-000042.
func shipmentInvoiceNumber(year int) func(seq int64) string {
	return func(seq int64) string {
		return fmt.Sprintf("FAC-%d-%06d", year, seq)
	}
}

// parcelInvoiceNumber renders the number series for parcel invoices,
// e.g. FCT-PKG-000042.
func parcelInvoiceNumber(seq int64) string {
	return fmt.Sprintf("FCT-PKG-%06d", seq)
}
