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

// InterfacePriceController 定义价格表控制器接口
type InterfacePriceController interface {
	GetPrices()
	UpdatePrices()
}

// PriceController 处理价格表请求
type PriceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPriceController 创建一个新的价格表控制器
func NewPriceController(ctx *gin.Context, container *container.ServiceContainer) *PriceController {
	return &PriceController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdatePricesRequest 表示价格表更新请求，两个字段必须同时提供
type UpdatePricesRequest struct {
	BasePrices map[string]float64 `json:"basePrices"`
	Districts  []models.District  `json:"districts"`
}

// HandlePriceFunc 返回一个处理价格表请求的Gin处理函数
func HandlePriceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPriceController(ctx, container)

		switch method {
		case "getPrices":
			controller.GetPrices()
		case "updatePrices":
			controller.UpdatePrices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法")
		}
	}
}

// GetPrices 获取当前价格表
// @Summary      获取价格表
// @Description  返回各管径基础价与各区送货加价
// @Tags         Prices
// @Produce      json
// @Success      200  {object}  models.PriceCatalog  "当前价格表"
// @Failure      500  {object}  response.ErrorBody  "价格数据读取失败"
// @Router       /prices [get]
func (c *PriceController) GetPrices() {
	priceService := c.Container.GetService("price").(services.InterfacePriceService)

	catalog, err := priceService.Get()
	if err != nil {
		logger.Error("读取价格表失败: %v", err)
		response.Fail(c.Ctx, code.ErrStore)
		return
	}

	response.Success(c.Ctx, catalog)
}

// UpdatePrices 整体覆盖价格表
// @Summary      更新价格表
// @Description  管理员整体覆盖价格表，basePrices 与 districts 必须同时提供
// @Tags         Prices
// @Accept       json
// @Produce      json
// @Param        request body UpdatePricesRequest true "新的价格表内容"
// @Success      200  {object}  models.PriceCatalog  "更新后的价格表"
// @Failure      400  {object}  response.ErrorBody  "字段缺失"
// @Failure      401  {object}  response.ErrorBody  "令牌缺失或无效"
// @Failure      403  {object}  response.ErrorBody  "权限不足"
// @Failure      500  {object}  response.ErrorBody  "价格数据写入失败"
// @Security     BearerAuth
// @Router       /prices [put]
func (c *PriceController) UpdatePrices() {
	var req UpdatePricesRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数")
		return
	}

	priceService := c.Container.GetService("price").(services.InterfacePriceService)

	catalog, err := priceService.Replace(req.BasePrices, req.Districts)
	if err != nil {
		if errors.Is(err, services.ErrCatalogIncomplete) {
			response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error())
			return
		}
		logger.Error("写入价格表失败: %v", err)
		response.Fail(c.Ctx, code.ErrStore)
		return
	}

	logger.Info("管理员 %v 更新了价格表", c.Ctx.GetString("username"))
	response.Success(c.Ctx, catalog)
}
