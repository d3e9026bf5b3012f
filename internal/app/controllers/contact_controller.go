package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gongjia-price-service/internal/domain/models"
	"gongjia-price-service/internal/domain/services"
	"gongjia-price-service/internal/domain/services/container"
	"gongjia-price-service/internal/error/code"
	"gongjia-price-service/internal/error/response"
	"gongjia-price-service/pkg/logger"
)

// InterfaceContactController 定义联系表单控制器接口
type InterfaceContactController interface {
	Submit()
}

// ContactController 处理联系表单请求
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController 创建一个新的联系表单控制器
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// ContactRequest 表示联系表单提交
type ContactRequest struct {
	Name    string `json:"name" example:"伟"`
	Surname string `json:"surname" example:"王"`
	Email   string `json:"email" example:"wangwei@example.com"`
	Message string `json:"message" example:"请问dn500每节含运费多少？"`
}

// ContactResponse 表示联系表单提交结果
type ContactResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"咨询已发送"`
}

// HandleContactFunc 返回一个处理联系表单请求的Gin处理函数
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "submit":
			controller.Submit()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法")
		}
	}
}

// Submit 提交一条咨询并经邮件转发
// @Summary      提交咨询
// @Description  校验四个字段后将咨询渲染为HTML邮件转发到固定收件地址，不入队不重试
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body ContactRequest true "咨询内容"
// @Success      200  {object}  ContactResponse  "发送结果"
// @Failure      400  {object}  response.ErrorBody  "字段缺失"
// @Failure      503  {object}  response.ErrorBody  "邮件服务未配置"
// @Failure      500  {object}  response.ErrorBody  "邮件发送失败"
// @Router       /contact [post]
func (c *ContactController) Submit() {
	var req ContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数")
		return
	}

	mailService := c.Container.GetService("mail").(services.InterfaceMailService)

	msg := &models.ContactMessage{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := mailService.SendContact(msg); err != nil {
		switch {
		case errors.Is(err, services.ErrContactIncomplete):
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
		case errors.Is(err, services.ErrMailNotConfigured):
			response.Fail(c.Ctx, code.ErrMailNotConfigured)
		default:
			logger.Error("转发咨询邮件失败: %v", err)
			response.Fail(c.Ctx, code.ErrMailDelivery)
		}
		return
	}

	response.Success(c.Ctx, ContactResponse{
		Success: true,
		Message: "咨询已发送，我们会尽快与您联系",
	})
}
