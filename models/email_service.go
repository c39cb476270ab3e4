package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOTPEmail(toEmail, otp string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Recuperá tu contraseña - ESENCIA")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Georgia, serif; background-color: #0f0d0a; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: #1a1712; padding: 30px; border-radius: 10px; color: #e8e2d5; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; letter-spacing: 6px; color: #c9a24b; }
        .otp-box { background-color: #241f17; border: 2px dashed #c9a24b; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .otp-code { font-size: 36px; font-weight: bold; color: #c9a24b; letter-spacing: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #8a8272; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">ESENCIA</div>
        </div>
        <h2>Recuperación de contraseña</h2>
        <p>Hola,</p>
        <p>Recibimos una solicitud para restablecer tu contraseña. Usá el siguiente código para continuar:</p>

        <div class="otp-box">
            <div style="color: #8a8272; font-size: 14px; margin-bottom: 10px;">Tu código</div>
            <div class="otp-code">%s</div>
        </div>

        <p><strong>El código expira en 5 minutos.</strong></p>
        <p>Si no solicitaste este cambio, ignorá este email.</p>

        <div class="footer">
            <p>Este es un email automático. Por favor no respondas.</p>
        </div>
    </div>
</body>
</html>
	`, otp)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderConfirmationEmail(toEmail, orderNumber string, total int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Pedido confirmado #%s - ESENCIA", orderNumber))

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Georgia, serif; background-color: #0f0d0a; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: #1a1712; padding: 30px; border-radius: 10px; color: #e8e2d5; }
        .header { text-align: center; margin-bottom: 30px; }
        .logo { font-size: 24px; font-weight: bold; letter-spacing: 6px; color: #c9a24b; }
        .order-box { background-color: #241f17; padding: 20px; margin: 20px 0; border-radius: 8px; }
        .footer { text-align: center; margin-top: 30px; color: #8a8272; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="logo">ESENCIA</div>
        </div>
        <h2>¡Gracias por tu pedido!</h2>

        <div class="order-box">
            <p><strong>Referencia:</strong> #%s</p>
            <p><strong>Total:</strong> $%s</p>
        </div>

        <p>Recibimos tu pedido y lo estamos preparando. Te contactaremos por WhatsApp para coordinar la entrega.</p>

        <div class="footer">
            <p>ESENCIA — fragancias exclusivas</p>
        </div>
    </div>
</body>
</html>
	`, orderNumber, FormatPrice(total))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// FormatPrice renders a whole-unit amount with dot thousands separators,
// the way the storefront shows prices (45000 -> "45.000").
func FormatPrice(amount int) string {
	str := fmt.Sprintf("%d", amount)
	n := len(str)
	if n <= 3 {
		return str
	}

	result := ""
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result += "."
		}
		result += string(digit)
	}
	return result
}
