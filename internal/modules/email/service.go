package email

import "fmt"

type Service interface {
	SendEmail(to string, toName string, subject string, htmlBody string, textBody string) error
}

// SendPaymentConfirmation sends the transactional confirmation for a
// successful payment. Amount is in the gateway's major unit.
func SendPaymentConfirmation(svc Service, to string, name string, reference string, amount int, paymentType string) error {
	subject := "Payment Successful - TapSync"
	textBody := fmt.Sprintf("Hi %s,\n\nYour %s payment was successful.\nReference: %s\nAmount: %d\n\nThank you for using TapSync!",
		name, paymentType, reference, amount)

	htmlBody := `
<html>
  <body style="font-family: sans-serif;">
    <h2>Payment Successful</h2>
    <p>Hi ` + name + `,</p>
    <p>Your ` + paymentType + ` payment was successful.</p>
    <p><strong>Reference:</strong> ` + reference + `</p>
    <p><strong>Amount:</strong> ` + fmt.Sprintf("%d", amount) + `</p>
    <p>Thank you for using TapSync!</p>
    <p>The TapSync Team</p>
  </body>
</html>
`

	return svc.SendEmail(to, name, subject, htmlBody, textBody)
}

// SendSubscriptionActivated notifies the user that their subscription
// window is open.
func SendSubscriptionActivated(svc Service, to string, name string, months int) error {
	subject := "Subscription Activated - TapSync"
	textBody := fmt.Sprintf("Hi %s,\n\nYour TapSync subscription is now active for %d month(s).", name, months)

	htmlBody := `
<html>
  <body style="font-family: sans-serif;">
    <h2>Subscription Activated</h2>
    <p>Hi ` + name + `,</p>
    <p>Your TapSync subscription is now active for ` + fmt.Sprintf("%d", months) + ` month(s).</p>
    <p>The TapSync Team</p>
  </body>
</html>
`

	return svc.SendEmail(to, name, subject, htmlBody, textBody)
}
