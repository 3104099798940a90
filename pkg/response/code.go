package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 会员模块错误 100xx
	ErrMemberExists     = 10001
	ErrMemberNotFound   = 10002
	ErrAuthFailed       = 10003
	ErrTokenInvalid     = 10004
	ErrNoPermission     = 10005
	ErrInvalidProfile   = 10006
	ErrPasswordTooShort = 10007

	// 内容模块错误 200xx
	ErrContentNotFound = 20001
	ErrInvalidContent  = 20002

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
