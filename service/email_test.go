package service

import (
	"errors"
	"testing"

	"billtracker/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmailService(enabled bool) *EmailService {
	return NewEmailService(&config.EmailConfig{Enabled: enabled})
}

func TestGenerateReminderEmailBody(t *testing.T) {
	s := newTestEmailService(true)
	body := s.generateReminderEmailBody("张三", "March 2024", []ReminderItem{
		{Name: "Rent", SourceName: "Salary", Amount: decimal.NewFromInt(1200)},
		{Name: "<script>", SourceName: "Side", Amount: decimal.RequireFromString("30.5")},
	})
	assert.Contains(t, body, "张三")
	assert.Contains(t, body, "March 2024")
	assert.Contains(t, body, "2 笔账单")
	assert.Contains(t, body, "1200.00")
	assert.Contains(t, body, "1230.50")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "width: 100%;")
}

func TestSendUnpaidBillsReminder_Disabled(t *testing.T) {
	s := newTestEmailService(false)
	err := s.SendUnpaidBillsReminder("a@b.com", "a", "March 2024", nil)
	assert.ErrorIs(t, err, ErrEmailDisabled)

	var nilCfg EmailService
	assert.False(t, nilCfg.Enabled())
}

func TestSendUnpaidBillsReminder_UsesSender(t *testing.T) {
	s := newTestEmailService(true)
	var gotTo, gotSubject string
	s.send = func(to, subject, body string) error {
		gotTo, gotSubject = to, subject
		return nil
	}

	err := s.SendUnpaidBillsReminder("a@b.com", "a", "March 2024", []ReminderItem{
		{Name: "Rent", SourceName: "Salary", Amount: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", gotTo)
	assert.Equal(t, "【账单助手】March 2024 未付账单提醒", gotSubject)

	s.send = func(string, string, string) error { return errors.New("smtp down") }
	assert.EqualError(t, s.SendUnpaidBillsReminder("a@b.com", "a", "March 2024", nil), "smtp down")
}
