package service

import (
	"fmt"
	"strings"

	"atolye/config"
	"atolye/models"

	"gopkg.in/gomail.v2"
)

// EmailService sends transactional store mail (order confirmations, password
// resets) over SMTP.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the email service.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendOrderConfirmation mails the customer their order summary.
func (s *EmailService) SendOrderConfirmation(order *models.Order) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("e-posta servisi devre dışı")
	}
	subject := fmt.Sprintf("Siparişiniz alındı - %s", order.OrderNo)
	return s.sendEmail(order.Email, subject, s.orderEmailBody(order))
}

// SendPasswordResetEmail mails an admin the reset link.
func (s *EmailService) SendPasswordResetEmail(toEmail, username, resetLink string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("e-posta servisi devre dışı")
	}
	subject := "Atölye Çanta - Şifre Sıfırlama"
	return s.sendEmail(toEmail, subject, s.resetEmailBody(username, resetLink))
}

func (s *EmailService) orderEmailBody(order *models.Order) string {
	var lines strings.Builder
	for _, item := range order.Items {
		lines.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px;border-bottom:1px solid #eee;">%s</td><td style="padding:8px;border-bottom:1px solid #eee;text-align:center;">%d</td><td style="padding:8px;border-bottom:1px solid #eee;text-align:right;">%.2f TL</td></tr>`,
			item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background: #faf7f2; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #fff; border-radius: 10px; overflow: hidden;">
    <div style="background: #8b5e3c; color: #fff; padding: 24px; text-align: center;">
      <h1 style="margin:0;font-size:22px;">Atölye Çanta</h1>
    </div>
    <div style="padding: 30px;">
      <p>Merhaba <strong>%s</strong>,</p>
      <p>Siparişiniz alındı. Sipariş numaranız: <strong>%s</strong></p>
      <table style="width:100%%;border-collapse:collapse;margin:16px 0;">
        <tr><th style="text-align:left;padding:8px;">Ürün</th><th style="padding:8px;">Adet</th><th style="text-align:right;padding:8px;">Tutar</th></tr>
        %s
      </table>
      <p>Ürün tutarı: %.2f TL<br>Kargo: %.2f TL<br><strong>Toplam: %.2f TL</strong></p>
      <p>Ödeme yöntemi: kapıda ödeme. Siparişinizin durumunu sipariş numaranız ve telefonunuzla takip edebilirsiniz.</p>
    </div>
    <div style="background: #f8f4ef; padding: 16px; text-align: center; color: #8a8a8a; font-size: 12px;">
      <p>Bu e-posta otomatik gönderilmiştir, lütfen yanıtlamayın.</p>
    </div>
  </div>
</body>
</html>
`, order.CustomerName, order.OrderNo, lines.String(), order.ItemsTotal, order.ShippingFee, order.Total)
}

func (s *EmailService) resetEmailBody(username, resetLink string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background: #faf7f2; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: #fff; border-radius: 10px; overflow: hidden;">
    <div style="background: #8b5e3c; color: #fff; padding: 24px; text-align: center;">
      <h1 style="margin:0;font-size:22px;">Atölye Çanta</h1>
    </div>
    <div style="padding: 30px;">
      <p>Merhaba <strong>%s</strong>,</p>
      <p>Şifre sıfırlama isteğinizi aldık. Aşağıdaki bağlantıya tıklayarak yeni şifrenizi belirleyebilirsiniz:</p>
      <p style="text-align:center;">
        <a href="%s" style="display:inline-block;background:#8b5e3c;color:#fff;text-decoration:none;padding:12px 32px;border-radius:6px;">Şifremi Sıfırla</a>
      </p>
      <p style="color:#856404;background:#fff3cd;padding:12px;border-radius:4px;font-size:14px;">
        Bu bağlantı 30 dakika geçerlidir. İsteği siz yapmadıysanız bu e-postayı yok sayın.
      </p>
      <p style="word-break:break-all;color:#8b5e3c;font-size:12px;">%s</p>
    </div>
    <div style="background: #f8f4ef; padding: 16px; text-align: center; color: #8a8a8a; font-size: 12px;">
      <p>Bu e-posta otomatik gönderilmiştir, lütfen yanıtlamayın.</p>
    </div>
  </div>
</body>
</html>
`, username, resetLink, resetLink)
}

// sendEmail delivers one HTML mail over the configured SMTP server.
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("e-posta gönderilemedi: %w", err)
	}
	return nil
}
