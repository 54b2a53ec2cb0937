package service

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"billtracker/config"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// ErrEmailDisabled 邮件服务未启用
var ErrEmailDisabled = errors.New("邮件服务未启用，请配置 BILLTRACKER_EMAIL_ENABLED=true")

// ReminderItem 提醒邮件中的一笔未付账单
type ReminderItem struct {
	Name       string
	SourceName string
	Amount     decimal.Decimal
}

// EmailService 邮件服务
type EmailService struct {
	cfg  *config.EmailConfig
	send func(to, subject, body string) error
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	s.send = s.sendEmail
	return s
}

// Enabled 是否已启用邮件发送
func (s *EmailService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// SendUnpaidBillsReminder 发送某月未付账单提醒
func (s *EmailService) SendUnpaidBillsReminder(toEmail, username, monthLabel string, items []ReminderItem) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}

	subject := fmt.Sprintf("【账单助手】%s 未付账单提醒", monthLabel)
	body := s.generateReminderEmailBody(username, monthLabel, items)

	return s.send(toEmail, subject, body)
}

// generateReminderEmailBody 生成未付账单提醒邮件内容
func (s *EmailService) generateReminderEmailBody(username, monthLabel string, items []ReminderItem) string {
	var rows strings.Builder
	total := decimal.Zero
	for _, it := range items {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td class=\"amount\">%s</td></tr>\n",
			html.EscapeString(it.Name), html.EscapeString(it.SourceName), it.Amount.StringFixed(2))
		total = total.Add(it.Amount)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 16px; }
        table { width: 100%%; border-collapse: collapse; }
        th, td { padding: 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
        .amount { text-align: right; font-family: 'Courier New', monospace; }
        .total td { font-weight: bold; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 账单助手</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>您在 <strong>%s</strong> 还有 %d 笔账单尚未支付：</p>
            <table>
                <tr><th>账单</th><th>收入来源</th><th class="amount">金额</th></tr>
%s                <tr class="total"><td colspan="2">合计</td><td class="amount">%s</td></tr>
            </table>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(username), monthLabel, len(items), rows.String(), total.StringFixed(2))
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}
