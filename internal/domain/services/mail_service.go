package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"gongjia-price-service/internal/domain/models"
	"gongjia-price-service/internal/infrastructure/config"
)

// 邮件中继错误
var (
	// ErrContactIncomplete 联系表单四个字段必须全部填写
	ErrContactIncomplete = errors.New("姓名、邮箱和留言内容均不能为空")
	// ErrMailNotConfigured SMTP未配置，联系表单转发功能停用
	ErrMailNotConfigured = errors.New("邮件服务未配置")
)

// contactTemplate 咨询邮件正文模板。
// html/template 的上下文转义保证表单内容中的标记字符不会被当作HTML执行。
var contactTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: sans-serif">
  <h2>官网新咨询</h2>
  <p><strong>姓名：</strong>{{.Surname}}{{.Name}}</p>
  <p><strong>邮箱：</strong>{{.Email}}</p>
  <p><strong>留言：</strong></p>
  <blockquote>{{.Message}}</blockquote>
</div>`))

// MailSender 发送接口，只覆盖实际用到的投递动作
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// InterfaceMailService 邮件中继服务接口
type InterfaceMailService interface {
	Enabled() bool
	SendContact(msg *models.ContactMessage) error
}

// MailService 将联系表单消息渲染为HTML邮件并经SMTP转发到固定收件地址
type MailService struct {
	Config *config.Config
	sender MailSender
}

// NewMailService 创建邮件中继服务。
// SMTP配置不完整时服务停用，启动阶段据此打印告警，不在每次请求时重查。
func NewMailService(cfg *config.Config) InterfaceMailService {
	s := &MailService{Config: cfg}
	if cfg.MailConfigured() {
		s.sender = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return s
}

// NewMailServiceWithSender 使用指定的发送器创建邮件中继服务
func NewMailServiceWithSender(cfg *config.Config, sender MailSender) InterfaceMailService {
	return &MailService{Config: cfg, sender: sender}
}

// Enabled 邮件中继是否可用
func (s *MailService) Enabled() bool {
	return s.sender != nil
}

// ValidateContact 检查四个字段是否全部填写，纯空白按缺失处理
func ValidateContact(msg *models.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Surname) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return ErrContactIncomplete
	}
	return nil
}

// RenderContactBody 渲染咨询邮件的HTML正文
func RenderContactBody(msg *models.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactTemplate.Execute(&buf, msg); err != nil {
		return "", fmt.Errorf("渲染邮件正文失败: %w", err)
	}
	return buf.String(), nil
}

// SendContact 校验并转发一条咨询。发送失败不入队不重试，由调用方记录日志。
func (s *MailService) SendContact(msg *models.ContactMessage) error {
	if err := ValidateContact(msg); err != nil {
		return err
	}
	if s.sender == nil {
		return ErrMailNotConfigured
	}

	body, err := RenderContactBody(msg)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.Config.MailFrom)
	m.SetHeader("To", s.Config.MailTo)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", fmt.Sprintf("官网新咨询 - %s%s", msg.Surname, msg.Name))
	m.SetBody("text/html", body)

	return s.sender.DialAndSend(m)
}
