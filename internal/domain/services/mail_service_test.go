package services

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"

	"gongjia-price-service/internal/domain/models"
	"gongjia-price-service/internal/infrastructure/config"
)

// captureSender 捕获外发邮件的测试发送器
type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)
	return nil
}

func mailTestConfig() *config.Config {
	return &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     465,
		SMTPUsername: "noreply@gongjia.example.com",
		SMTPPassword: "secret",
		MailFrom:     "noreply@gongjia.example.com",
		MailTo:       "sales@gongjia.example.com",
	}
}

func validMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    "伟",
		Surname: "王",
		Email:   "wangwei@example.com",
		Message: "请问dn500每节含运费多少？",
	}
}

func TestSendContact(t *testing.T) {
	cfg := mailTestConfig()
	sender := &captureSender{}
	svc := NewMailServiceWithSender(cfg, sender)

	if err := svc.SendContact(validMessage()); err != nil {
		t.Fatalf("转发咨询失败: %v", err)
	}
	if len(sender.messages) != 1 {
		t.Fatalf("发送器应收到1封邮件: got %d", len(sender.messages))
	}

	m := sender.messages[0]
	if got := m.GetHeader("To"); len(got) != 1 || got[0] != cfg.MailTo {
		t.Errorf("收件地址错误: %v", got)
	}
	if got := m.GetHeader("Reply-To"); len(got) != 1 || got[0] != "wangwei@example.com" {
		t.Errorf("Reply-To应为提交者邮箱: %v", got)
	}
	if got := m.GetHeader("From"); len(got) != 1 || got[0] != cfg.MailFrom {
		t.Errorf("发件地址错误: %v", got)
	}
}

func TestSendContactMissingField(t *testing.T) {
	sender := &captureSender{}
	svc := NewMailServiceWithSender(mailTestConfig(), sender)

	msg := validMessage()
	msg.Message = "   "
	if err := svc.SendContact(msg); !errors.Is(err, ErrContactIncomplete) {
		t.Errorf("空白留言应被拒绝: got %v", err)
	}
	if len(sender.messages) != 0 {
		t.Error("校验失败时不应调用发送器")
	}
}

func TestSendContactNotConfigured(t *testing.T) {
	// SMTP未配置时服务停用
	svc := NewMailService(&config.Config{})
	if svc.Enabled() {
		t.Error("未配置SMTP时服务不应可用")
	}
	if err := svc.SendContact(validMessage()); !errors.Is(err, ErrMailNotConfigured) {
		t.Errorf("未配置SMTP时发送应被拒绝: got %v", err)
	}
}

func TestSendContactDeliveryError(t *testing.T) {
	sender := &captureSender{err: errors.New("connection refused")}
	svc := NewMailServiceWithSender(mailTestConfig(), sender)

	if err := svc.SendContact(validMessage()); err == nil {
		t.Error("投递失败应向调用方返回错误")
	}
}

func TestRenderContactBodyEscapesMarkup(t *testing.T) {
	msg := validMessage()
	msg.Name = "<script>alert(1)</script>"
	msg.Message = "<img src=x onerror=alert(1)>"

	body, err := RenderContactBody(msg)
	if err != nil {
		t.Fatalf("渲染邮件正文失败: %v", err)
	}
	if strings.Contains(body, "<script>") || strings.Contains(body, "<img") {
		t.Errorf("表单内容中的标记未被转义: %s", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("期望出现转义后的标记: %s", body)
	}
	if !strings.Contains(body, "wangwei@example.com") {
		t.Errorf("正文应包含提交者邮箱: %s", body)
	}
}
