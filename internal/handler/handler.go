package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kwamkid/joolz-factory-sub003/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Product   *ProductHandler
	Recipe    *RecipeHandler
	Inventory *InventoryHandler
	Order     *OrderHandler
	Customer  *CustomerHandler
	Payment   *PaymentHandler
	Planning  *PlanningHandler
	Upload    *UploadHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(svc.Auth),
		User:      NewUserHandler(svc.User),
		Product:   NewProductHandler(svc.Product),
		Recipe:    NewRecipeHandler(svc.Recipe),
		Inventory: NewInventoryHandler(svc.Inventory),
		Order:     NewOrderHandler(svc.Order),
		Customer:  NewCustomerHandler(svc.Customer),
		Payment:   NewPaymentHandler(svc.Payment),
		Planning:  NewPlanningHandler(svc.Planning),
		Upload:    NewUploadHandler(svc.Upload),
	}
}

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error 错误响应，业务码前三位即HTTP状态码
func Error(c *gin.Context, code int, message string) {
	ErrorData(c, code, message, nil)
}

// ErrorData 带数据的错误响应（如行级错误明细）
func ErrorData(c *gin.Context, code int, message string, data interface{}) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// ParsePageParams 解析分页参数
func ParsePageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 200 {
		size = 20
	}
	return page, size
}
