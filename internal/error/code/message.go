package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高，请稍后再试",

	// 认证相关错误码
	ErrPasswordIncorrect: "用户名或密码错误",

	// 价格表相关错误码
	ErrStore: "价格数据暂时不可用",

	// 联系表单相关错误码
	ErrMailNotConfigured: "咨询服务暂未开通，请直接致电联系我们",
	ErrMailDelivery:      "咨询发送失败，请稍后再试",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 认证相关错误码
	ErrPasswordIncorrect: StatusUnauthorized,

	// 价格表相关错误码
	ErrStore: StatusInternalServerError,

	// 联系表单相关错误码
	ErrMailNotConfigured: StatusServiceUnavailable,
	ErrMailDelivery:      StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
