package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gongjia-price-service/internal/domain/services"
	"gongjia-price-service/internal/domain/services/container"
	"gongjia-price-service/internal/error/code"
	"gongjia-price-service/internal/error/response"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
}

// JWTController 处理身份验证请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginUser 登录响应中的用户信息
type LoginUser struct {
	Username string `json:"username" example:"admin"`
	Role     string `json:"role" example:"admin"`
}

// LoginResponse 表示登录成功后返回的数据
type LoginResponse struct {
	Token string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  LoginUser `json:"user"`
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法")
		}
	}
}

// Login 处理管理员登录
// @Summary      管理员登录
// @Description  校验用户名和密码，成功时签发24小时有效的JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录请求参数"
// @Success      200  {object}  LoginResponse  "令牌与用户信息"
// @Failure      400  {object}  response.ErrorBody  "请求参数错误"
// @Failure      401  {object}  response.ErrorBody  "用户名或密码错误"
// @Failure      500  {object}  response.ErrorBody  "凭证数据读取失败"
// @Router       /login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数")
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	admin, err := adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrPasswordIncorrect)
			return
		}
		response.Fail(c.Ctx, code.ErrStore)
		return
	}

	token, err := jwtService.GenerateToken(admin.Username, admin.Role)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败")
		return
	}

	response.Success(c.Ctx, LoginResponse{
		Token: token,
		User: LoginUser{
			Username: admin.Username,
			Role:     admin.Role,
		},
	})
}
