package models

// PaymentMethod is one of the payment options offered on the form.
type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "Card"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentNetBanking PaymentMethod = "Net Banking"
	PaymentWallet     PaymentMethod = "Wallet"
)

// PaymentMethods lists the accepted payment options in display order.
var PaymentMethods = []PaymentMethod{PaymentCard, PaymentUPI, PaymentNetBanking, PaymentWallet}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}
