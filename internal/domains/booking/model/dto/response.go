package dto

import (
	"fmt"

	"flavours/shared/constant"
)

type SubmitBookingResponse struct {
	Ref           string        `json:"ref"`
	DepositDue    float64       `json:"depositDue"`
	MessageBlocks MessageBlocks `json:"messageBlocks"`
}

// MessageBlocks is the fixed confirmation copy returned with a successful
// submission; only the e-transfer memo varies, carrying the booking reference.
type MessageBlocks struct {
	Confirmation string   `json:"confirmation"`
	ETransfer    string   `json:"eTransfer"`
	Policies     []string `json:"policies"`
}

const (
	confirmationCopy = "Thanks! We’ve got your request. Your $75 non-refundable deposit holds your date while we craft your route. Watch your email for the final balance once menus are set."
	eTransferCopy    = "Send your deposit within 24 hours to [your-etransfer@email]. Use memo: ‘Fistful of Flavours — %s’. The remaining balance (based on actual spend) will be emailed once confirmed."
)

var policiesCopy = []string{
	"• Rescheduling: You may request a reschedule up to 3 days before your crawl. The new date must be at least 3 weeks from the day you request the change. One reschedule per booking.",
	"• Family-style: One dietary restriction applies to all guests.",
	"• Alcohol: Guests must be 19+ for pairings. We’re not responsible if a restaurant declines alcohol service due to intoxication or ID. No refunds for wine pairings or service that is declined for these reasons.",
}

func NewSubmitBookingResponse(ref string) SubmitBookingResponse {
	return SubmitBookingResponse{
		Ref:        ref,
		DepositDue: constant.Deposit,
		MessageBlocks: MessageBlocks{
			Confirmation: confirmationCopy,
			ETransfer:    fmt.Sprintf(eTransferCopy, ref),
			Policies:     policiesCopy,
		},
	}
}
